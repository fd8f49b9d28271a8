package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"timeaftertime/internal/model"
	"timeaftertime/internal/util"
)

// ExportCommand contains flags for the `export` command line command, for
// `go-flags` to parse command line args into.
//
// With default flags the output is the same CSV the sheet is stored as, one
// row per entry under a header row, so it can be fed back to `import`
// unchanged.
type ExportCommand struct {
	Sheet  string `short:"s" long:"sheet" description:"the timesheet to export (last opened if omitted)" value-name:"<name>"`
	Output string `short:"o" long:"output" description:"the file to write to (stdout if omitted)" value-name:"<file>"`

	DateFormat     string `long:"date-format" value-name:"<format>" description:"specify the date format (see <https://pkg.go.dev/time#pkg-constants>)" default:"2006-01-02"`
	Enquote        bool   `long:"enquote" description:"add quotes around field values"`
	FieldSeparator string `long:"field-separator" value-name:"<CSV separator (default ',')>" default:","`
}

// Execute executes the export command.
// (This gets called by `go-flags` when `export` is provided on the command
// line)
func (command *ExportCommand) Execute(args []string) error {
	_, provider, err := prepareDataProvider()
	if err != nil {
		return err
	}
	sheet, err := openSheet(provider, command.Sheet)
	if err != nil {
		return err
	}

	out := os.Stdout
	if command.Output != "" {
		out, err = os.Create(command.Output)
		if err != nil {
			return fmt.Errorf("cannot write to '%s' (%s)", command.Output, err.Error())
		}
		defer out.Close()
	}

	maybeEnquote := func(s string) string {
		return csvField(s, command.FieldSeparator, command.Enquote)
	}

	fmt.Fprintln(out, strings.Join(
		[]string{
			maybeEnquote("Date"),
			maybeEnquote("Duration"),
			maybeEnquote("Activity"),
			maybeEnquote("Rate"),
		},
		command.FieldSeparator,
	))
	for _, entry := range sheet.Entries {
		fmt.Fprintln(out, entryAsCSVString(entry, maybeEnquote, command.DateFormat, command.FieldSeparator))
	}

	return nil
}

// csvField prepares a field value for a CSV row: quoted on request, and
// always quoted when it contains the separator, a quote, or a newline, as
// the row would otherwise not survive CSV parsing.
func csvField(s, separator string, forceQuote bool) string {
	if forceQuote || strings.Contains(s, separator) || strings.ContainsAny(s, "\"\n") {
		return util.Enquote(s)
	}
	return s
}

// entryAsCSVString returns this entry as a CSV row.
func entryAsCSVString(e model.Entry, processFieldString func(string) string, dateFormat string, separator string) string {
	return strings.Join(
		[]string{
			processFieldString(e.Date.ToGotime().Format(dateFormat)),
			processFieldString(e.Duration.String()),
			processFieldString(e.Activity),
			processFieldString(strconv.FormatFloat(e.Rate, 'f', -1, 64)),
		},
		separator,
	)
}
