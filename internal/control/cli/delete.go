package cli

import (
	"fmt"

	"timeaftertime/internal/storage/providers"
)

// DeleteCommand contains flags for the `delete` command line command, for
// `go-flags` to parse command line args into.
//
// Deletion always names its sheet explicitly; it never falls back to the
// last-opened one.
type DeleteCommand struct {
	Sheet string `short:"s" long:"sheet" description:"the timesheet to delete" value-name:"<name>" required:"true"`
}

// Execute executes the delete command.
// (This gets called by `go-flags` when `delete` is provided on the command
// line)
func (command *DeleteCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}

	name := providers.SanitizeSheetName(command.Sheet)
	if err := provider.Delete(name); err != nil {
		return err
	}

	fmt.Printf("deleted '%s'\n", name)

	return nil
}
