package cli

import (
	"fmt"
	"strconv"

	"timeaftertime/internal/config"
	"timeaftertime/internal/model"
	"timeaftertime/internal/storage/providers"
)

// NewCommand contains flags for the `new` command line command, for
// `go-flags` to parse command line args into.
type NewCommand struct {
	Name     string `short:"n" long:"name" description:"the name of the new timesheet" value-name:"<name>" required:"true"`
	Rate     string `short:"r" long:"rate" description:"the default rate of pay per hour/day (config default if omitted)" value-name:"<rate>"`
	Currency string `short:"c" long:"currency" description:"the currency symbol (config default if omitted)" value-name:"<currency>"`
	TimeBase string `short:"b" long:"time-base" description:"the unit durations are given in" choice:"hour" choice:"day"`
}

// Execute executes the new command.
// (This gets called by `go-flags` when `new` is provided on the command line)
func (command *NewCommand) Execute(args []string) error {
	envData, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	configData, err := loadConfig(config.Light, envData)
	if err != nil {
		return err
	}

	rate := configData.Defaults.Rate
	if command.Rate != "" {
		rate, err = strconv.ParseFloat(command.Rate, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("rate '%s' is not a non-negative number", command.Rate)
		}
	}

	currency := configData.Defaults.Currency
	if command.Currency != "" {
		currency = command.Currency
	}

	timeBaseString := configData.Defaults.TimeBase
	if command.TimeBase != "" {
		timeBaseString = command.TimeBase
	}
	timeBase, err := model.TimeBaseFromString(timeBaseString)
	if err != nil {
		return err
	}

	sheet := &model.Timesheet{
		Name:     providers.SanitizeSheetName(command.Name),
		Currency: currency,
		Rate:     rate,
		TimeBase: timeBase,
	}
	if sheet.Name == "" {
		return fmt.Errorf("timesheet name must not be empty")
	}

	if err := provider.Create(sheet); err != nil {
		return err
	}
	if err := provider.SetLastOpened(sheet.Name); err != nil {
		return err
	}

	fmt.Printf("created timesheet '%s' (%s%s per %s)\n", sheet.Name, sheet.Currency, strconv.FormatFloat(sheet.Rate, 'f', -1, 64), sheet.TimeBase)

	return nil
}
