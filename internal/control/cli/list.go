package cli

import (
	"fmt"

	"timeaftertime/internal/util"
)

// ListCommand contains flags for the `list` command line command, for
// `go-flags` to parse command line args into.
type ListCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to list (last opened if omitted)" value-name:"<name>"`
}

// Execute executes the list command.
// (This gets called by `go-flags` when `list` is provided on the command
// line)
func (command *ListCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	if len(sheet.Entries) == 0 {
		fmt.Printf("'%s' has no entries\n", sheet.Name)
		return nil
	}

	for _, group := range sheet.MonthGroups() {
		fmt.Printf("%s\n", group.Month.String())
		for i, entry := range group.Entries {
			fmt.Printf(
				"  [%3d]  %s  %6s  %-24s  %s%.2f\n",
				group.Indices[i],
				entry.Date.String(),
				entry.Duration.String(),
				util.TruncateAt(entry.Activity, 24),
				sheet.Currency, entry.Pay(),
			)
		}
		fmt.Printf(
			"  total: %s %ss, %s%.2f\n\n",
			group.TotalDuration.String(), sheet.TimeBase,
			sheet.Currency, group.TotalPay,
		)
	}

	fmt.Printf(
		"%d entries, %s %ss, %s%.2f\n",
		len(sheet.Entries),
		sheet.TotalDuration().String(), sheet.TimeBase,
		sheet.Currency, sheet.TotalPay(),
	)

	return nil
}
