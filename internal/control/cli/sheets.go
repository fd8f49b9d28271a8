package cli

import (
	"fmt"
)

// SheetsCommand contains flags for the `sheets` command line command, for
// `go-flags` to parse command line args into.
type SheetsCommand struct {
}

// Execute executes the sheets command.
// (This gets called by `go-flags` when `sheets` is provided on the command
// line)
func (command *SheetsCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}

	names, err := provider.List()
	if err != nil {
		return err
	}
	last := provider.LastOpened()

	for _, name := range names {
		marker := " "
		if name == last {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}

	return nil
}
