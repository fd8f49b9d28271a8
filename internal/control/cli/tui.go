package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"timeaftertime/internal/config"
	"timeaftertime/internal/styling"
	"timeaftertime/internal/tui"
)

// TuiCommand contains flags for the `tui` command line command, for
// `go-flags` to parse command line args into.
type TuiCommand struct {
	Sheet         string `short:"s" long:"sheet" description:"the timesheet to view (last opened if omitted)" value-name:"<name>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command
// line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// once the TUI owns the terminal, logs either go to a file or nowhere
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			logWriter = zerolog.ConsoleWriter{Out: file}
		} else {
			logWriter = file
		}
	} else {
		logWriter = io.Discard
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	case "dark":
		theme = config.Dark
	default:
		theme = config.Dark
	}

	envData, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}

	configData, err := loadConfig(theme, envData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't get config data")
	}

	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	controller := tui.NewController(sheet, stylesheet)

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
