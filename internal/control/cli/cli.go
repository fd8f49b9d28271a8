// Package cli provides the command-line interface for timeaftertime.
package cli

import (
	"errors"
	"fmt"
	"os"

	"timeaftertime/internal/config"
	"timeaftertime/internal/control"
	"timeaftertime/internal/model"
	"timeaftertime/internal/storage"
	"timeaftertime/internal/storage/providers"
)

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	NewCommand     NewCommand     `command:"new" subcommands-optional:"true"`
	AddCommand     AddCommand     `command:"add" subcommands-optional:"true"`
	EditCommand    EditCommand    `command:"edit" subcommands-optional:"true"`
	RemoveCommand  RemoveCommand  `command:"remove" subcommands-optional:"true"`
	RateCommand    RateCommand    `command:"rate" subcommands-optional:"true"`
	ListCommand    ListCommand    `command:"list" subcommands-optional:"true"`
	SheetsCommand  SheetsCommand  `command:"sheets" subcommands-optional:"true"`
	ExportCommand  ExportCommand  `command:"export" subcommands-optional:"true"`
	ImportCommand  ImportCommand  `command:"import" subcommands-optional:"true"`
	DeleteCommand  DeleteCommand  `command:"delete" subcommands-optional:"true"`
	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// commandClock is the time source commands resolve partial dates against.
var commandClock model.Clock = model.SystemClock{}

// prepareDataProvider resolves the base directory from the environment and
// sets up flat-file storage beneath it.
func prepareDataProvider() (control.EnvData, storage.DataProvider, error) {
	envData := control.NewEnvData()

	var provider storage.DataProvider
	provider, err := providers.NewFilesDataProvider(envData.BaseDirPath)
	if err != nil {
		return envData, nil, fmt.Errorf("could not set up storage under '%s' (%w)", envData.BaseDirPath, err)
	}

	return envData, provider, nil
}

// loadConfig reads the config file, falling back to the defaults for the
// given theme if there is none.
func loadConfig(theme config.ColorschemeType, envData control.EnvData) (config.Config, error) {
	yamlData, err := os.ReadFile(envData.ConfigFilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default(theme), nil
		}
		return config.Config{}, fmt.Errorf("can't read config file: '%s'", err)
	}

	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config data: '%s'", err)
	}
	return configData, nil
}

// resolveSheetName maps an optional --sheet flag value to the sheet to work
// on, falling back to the last-opened sheet.
func resolveSheetName(provider storage.DataProvider, flagValue string) (string, error) {
	if flagValue != "" {
		return providers.SanitizeSheetName(flagValue), nil
	}
	if last := provider.LastOpened(); last != "" {
		return last, nil
	}
	return "", fmt.Errorf("no timesheet given and none remembered; create one with 'new' or pass --sheet")
}

// openSheet loads the sheet to work on and remembers it as last opened.
func openSheet(provider storage.DataProvider, flagValue string) (*model.Timesheet, error) {
	name, err := resolveSheetName(provider, flagValue)
	if err != nil {
		return nil, err
	}
	sheet, err := provider.Load(name)
	if err != nil {
		return nil, err
	}
	if err := provider.SetLastOpened(name); err != nil {
		return nil, fmt.Errorf("could not remember '%s' as last opened (%w)", name, err)
	}
	return sheet, nil
}
