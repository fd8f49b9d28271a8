package cli

import (
	"fmt"
	"strconv"

	"timeaftertime/internal/model"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into.
//
// The date may be partial (day, day+month, or day+month+year, most
// significant parts filled in from today); the duration may be "H:MM" on
// hour-based sheets or a plain number. Nothing is committed to the sheet if
// either fails to parse.
type AddCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to add to (last opened if omitted)" value-name:"<name>"`

	Date     string `short:"d" long:"date" description:"the date worked; may be partial, today if omitted" value-name:"<dd[-mm[-yyyy]]>"`
	Duration string `short:"t" long:"time" description:"the time worked, e.g. '2:30', '7' or '1.25'" value-name:"<duration>" required:"true"`
	Activity string `short:"a" long:"activity" description:"what the time was spent on" value-name:"<activity>" required:"true"`
	Rate     string `short:"r" long:"rate" description:"rate of pay for this entry (the sheet's default rate if omitted)" value-name:"<rate>"`
}

// Execute executes the add command.
// (This gets called by `go-flags` when `add` is provided on the command line)
func (command *AddCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	today := model.DateFromGotime(commandClock.Now())

	date, err := model.ParseRelaxedDate(command.Date, today)
	if err != nil {
		return err
	}
	duration, err := model.ParseDuration(command.Duration, sheet.TimeBase)
	if err != nil {
		return err
	}
	rate := sheet.Rate
	if command.Rate != "" {
		rate, err = strconv.ParseFloat(command.Rate, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("rate '%s' is not a non-negative number", command.Rate)
		}
	}

	sheet.AddEntry(model.Entry{
		Date:     date,
		Duration: duration,
		Activity: command.Activity,
		Rate:     rate,
	})

	if err := provider.Store(sheet); err != nil {
		return err
	}

	fmt.Printf("added to '%s': %s, %s %ss, %s\n", sheet.Name, date.String(), duration.String(), sheet.TimeBase, command.Activity)

	return nil
}
