package cli

import (
	"fmt"
	"strconv"

	"timeaftertime/internal/model"
)

// EditCommand contains flags for the `edit` command line command, for
// `go-flags` to parse command line args into.
//
// Only the fields given are changed; the entry index is as shown by `list`.
type EditCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to edit (last opened if omitted)" value-name:"<name>"`

	Index    int     `short:"i" long:"index" description:"the index of the entry to edit, as shown by 'list'" value-name:"<index>" required:"true"`
	Date     *string `short:"d" long:"date" description:"new date (may be partial)" value-name:"<dd[-mm[-yyyy]]>"`
	Duration *string `short:"t" long:"time" description:"new time worked" value-name:"<duration>"`
	Activity *string `short:"a" long:"activity" description:"new activity" value-name:"<activity>"`
	Rate     *string `short:"r" long:"rate" description:"new rate of pay" value-name:"<rate>"`
}

// Execute executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command
// line)
func (command *EditCommand) Execute(args []string) error {
	if command.Date == nil && command.Duration == nil && command.Activity == nil && command.Rate == nil {
		return fmt.Errorf("nothing to change; pass at least one of --date/--time/--activity/--rate")
	}

	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	if command.Index < 0 || command.Index >= len(sheet.Entries) {
		return fmt.Errorf("no entry with index %d (have %d entries)", command.Index, len(sheet.Entries))
	}
	entry := sheet.Entries[command.Index]

	if command.Date != nil {
		today := model.DateFromGotime(commandClock.Now())
		entry.Date, err = model.ParseRelaxedDate(*command.Date, today)
		if err != nil {
			return err
		}
	}
	if command.Duration != nil {
		entry.Duration, err = model.ParseDuration(*command.Duration, sheet.TimeBase)
		if err != nil {
			return err
		}
	}
	if command.Activity != nil {
		entry.Activity = *command.Activity
	}
	if command.Rate != nil {
		rate, err := strconv.ParseFloat(*command.Rate, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("rate '%s' is not a non-negative number", *command.Rate)
		}
		entry.Rate = rate
	}

	if err := sheet.EditEntry(command.Index, entry); err != nil {
		return err
	}
	if err := provider.Store(sheet); err != nil {
		return err
	}

	fmt.Printf("changed entry %d of '%s'\n", command.Index, sheet.Name)

	return nil
}
