package cli

import (
	"fmt"
)

// RemoveCommand contains flags for the `remove` command line command, for
// `go-flags` to parse command line args into.
type RemoveCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to remove from (last opened if omitted)" value-name:"<name>"`

	Indices []int `short:"i" long:"index" description:"index of an entry to remove, as shown by 'list'; may be given multiple times" value-name:"<index>" required:"true"`
}

// Execute executes the remove command.
// (This gets called by `go-flags` when `remove` is provided on the command
// line)
func (command *RemoveCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	if err := sheet.RemoveEntries(command.Indices); err != nil {
		return err
	}
	if err := provider.Store(sheet); err != nil {
		return err
	}

	fmt.Printf("removed %d entr(y/ies) from '%s'\n", len(command.Indices), sheet.Name)

	return nil
}
