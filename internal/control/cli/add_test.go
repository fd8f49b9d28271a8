package cli

import (
	"testing"
	"time"

	"timeaftertime/internal/model"
)

func TestPartialDatesResolveAgainstTheClock(t *testing.T) {
	t.Setenv("TIMEAFTERTIME_HOME", t.TempDir())

	previousClock := commandClock
	commandClock = model.FixedClock{FixedNow: time.Date(2021, 11, 13, 12, 0, 0, 0, time.Local)}
	defer func() { commandClock = previousClock }()

	newCmd := NewCommand{Name: "Tutoring", Rate: "10"}
	if err := newCmd.Execute(nil); err != nil {
		t.Fatalf("could not create sheet: %s", err)
	}

	loadSheet := func() *model.Timesheet {
		_, provider, err := prepareDataProvider()
		if err != nil {
			t.Fatalf("could not set up provider: %s", err)
		}
		sheet, err := provider.Load("Tutoring")
		if err != nil {
			t.Fatalf("could not load sheet back: %s", err)
		}
		return sheet
	}

	{
		testcase := "add with a day-only date takes the clock's month and year"

		addCmd := AddCommand{Date: "2", Duration: "2:30", Activity: "maths"}
		if err := addCmd.Execute(nil); err != nil {
			t.Fatalf("testcase '%s': could not add entry: %s", testcase, err)
		}

		entry := loadSheet().Entries[0]
		expected := model.Date{Year: 2021, Month: 11, Day: 2}
		if entry.Date != expected {
			t.Fatalf("testcase '%s': entry dated %s instead of %s", testcase, entry.Date.String(), expected.String())
		}
		if entry.Duration != 2.5 || entry.Rate != 10 {
			t.Fatalf("testcase '%s': entry was %+v", testcase, entry)
		}
	}
	{
		testcase := "edit with a day-and-month date takes the clock's year"

		newDate := "14 3"
		editCmd := EditCommand{Index: 0, Date: &newDate}
		if err := editCmd.Execute(nil); err != nil {
			t.Fatalf("testcase '%s': could not edit entry: %s", testcase, err)
		}

		entry := loadSheet().Entries[0]
		expected := model.Date{Year: 2021, Month: 3, Day: 14}
		if entry.Date != expected {
			t.Fatalf("testcase '%s': entry dated %s instead of %s", testcase, entry.Date.String(), expected.String())
		}
	}
}
