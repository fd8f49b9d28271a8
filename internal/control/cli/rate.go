package cli

import (
	"fmt"
	"strconv"
)

// RateCommand contains flags for the `rate` command line command, for
// `go-flags` to parse command line args into.
//
// It changes a sheet's default pay parameters; existing entries keep the
// rate they were added at.
type RateCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to change (last opened if omitted)" value-name:"<name>"`

	Rate     string `short:"r" long:"rate" description:"the new default rate of pay" value-name:"<rate>"`
	Currency string `short:"c" long:"currency" description:"the new currency symbol" value-name:"<currency>"`
}

// Execute executes the rate command.
// (This gets called by `go-flags` when `rate` is provided on the command
// line)
func (command *RateCommand) Execute(args []string) error {
	if command.Rate == "" && command.Currency == "" {
		return fmt.Errorf("nothing to change; pass --rate and/or --currency")
	}

	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
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

	if err := provider.Store(sheet); err != nil {
		return err
	}

	fmt.Printf("'%s' now pays %s%s per %s\n", sheet.Name, sheet.Currency, strconv.FormatFloat(sheet.Rate, 'f', -1, 64), sheet.TimeBase)

	return nil
}
