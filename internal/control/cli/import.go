package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"timeaftertime/internal/config"
	"timeaftertime/internal/model"
	"timeaftertime/internal/storage/providers"
)

// ImportCommand contains flags for the `import` command line command, for
// `go-flags` to parse command line args into.
//
// It reads entry rows in the exported CSV format and creates a new sheet
// from them.
type ImportCommand struct {
	Name  string `short:"n" long:"name" description:"the name for the new timesheet" value-name:"<name>" required:"true"`
	Input string `short:"i" long:"input" description:"the file to read from (stdin if omitted)" value-name:"<file>"`

	Rate     string `short:"r" long:"rate" description:"the sheet's default rate of pay" value-name:"<rate>"`
	Currency string `short:"c" long:"currency" description:"the sheet's currency symbol" value-name:"<currency>"`
	TimeBase string `short:"b" long:"time-base" description:"whether durations are counted in hours or days" value-name:"<base>" choice:"hour" choice:"day"`
}

// Execute executes the import command.
// (This gets called by `go-flags` when `import` is provided on the command
// line)
func (command *ImportCommand) Execute(args []string) error {
	envData, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	configData, err := loadConfig(config.Light, envData)
	if err != nil {
		return err
	}

	in := os.Stdin
	if command.Input != "" {
		in, err = os.Open(command.Input)
		if err != nil {
			return fmt.Errorf("cannot read '%s' (%s)", command.Input, err.Error())
		}
		defer in.Close()
	}

	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return fmt.Errorf("malformed CSV input (%s)", err.Error())
	}
	entries, err := providers.EntriesFromRecords(records)
	if err != nil {
		return err
	}

	sheet := &model.Timesheet{
		Name:     providers.SanitizeSheetName(command.Name),
		Currency: configData.Defaults.Currency,
		Rate:     configData.Defaults.Rate,
		Entries:  entries,
	}
	sheet.TimeBase, err = model.TimeBaseFromString(configData.Defaults.TimeBase)
	if err != nil {
		return err
	}

	if command.Rate != "" {
		rate, err := strconv.ParseFloat(command.Rate, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("rate '%s' is not a non-negative number", command.Rate)
		}
		sheet.Rate = rate
	}
	if command.Currency != "" {
		sheet.Currency = command.Currency
	}
	if command.TimeBase != "" {
		sheet.TimeBase, err = model.TimeBaseFromString(command.TimeBase)
		if err != nil {
			return err
		}
	}

	if err := provider.Create(sheet); err != nil {
		return err
	}
	if err := provider.SetLastOpened(sheet.Name); err != nil {
		return err
	}

	fmt.Printf("imported %d entries into '%s'\n", len(sheet.Entries), sheet.Name)

	return nil
}
