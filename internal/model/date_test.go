package model_test

import (
	"errors"
	"testing"

	"timeaftertime/internal/model"
)

var today = model.Date{Year: 2021, Month: 11, Day: 13}

func TestParseRelaxedDateComplete(t *testing.T) {
	{
		testcase := "complete dashed date"

		result, err := model.ParseRelaxedDate("14-03-2021", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		expected := model.Date{Year: 2021, Month: 3, Day: 14}
		if result != expected {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), expected.String())
		}
	}
	{
		testcase := "complete date with month name"

		result, err := model.ParseRelaxedDate("14 Mar 2019", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		expected := model.Date{Year: 2019, Month: 3, Day: 14}
		if result != expected {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), expected.String())
		}
	}
	{
		testcase := "complete date with full month name and slashes"

		result, err := model.ParseRelaxedDate("1/January/2020", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		expected := model.Date{Year: 2020, Month: 1, Day: 1}
		if result != expected {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), expected.String())
		}
	}
}

func TestParseRelaxedDateFillsMissingFields(t *testing.T) {
	{
		testcase := "empty string is today"

		result, err := model.ParseRelaxedDate("", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		if result != today {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), today.String())
		}
	}
	{
		testcase := "day only takes current month and year"

		result, err := model.ParseRelaxedDate("2", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		expected := model.Date{Year: 2021, Month: 11, Day: 2}
		if result != expected {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), expected.String())
		}
	}
	{
		testcase := "day and month take current year"

		result, err := model.ParseRelaxedDate("14 3", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		expected := model.Date{Year: 2021, Month: 3, Day: 14}
		if result != expected {
			t.Fatalf("testcase '%s': got %s instead of %s", testcase, result.String(), expected.String())
		}
	}
}

func TestParseRelaxedDateTwoDigitYears(t *testing.T) {
	{
		testcase := "two-digit year in current century"

		result, err := model.ParseRelaxedDate("14 3 19", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		if result.Year != 2019 {
			t.Fatalf("testcase '%s': year %d instead of 2019", testcase, result.Year)
		}
	}
	{
		testcase := "two-digit year resolving to the previous century"

		// 2099 would be 78 years out; 1999 is only 22 back
		result, err := model.ParseRelaxedDate("14 3 99", today)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		if result.Year != 1999 {
			t.Fatalf("testcase '%s': year %d instead of 1999", testcase, result.Year)
		}
	}
	{
		testcase := "two-digit year resolving to the next century"

		// for a 'today' late in a century the low two-digit years flip forward
		lateToday := model.Date{Year: 2098, Month: 6, Day: 1}
		result, err := model.ParseRelaxedDate("14 3 02", lateToday)
		if err != nil {
			t.Fatalf("testcase '%s' failed with error: %s", testcase, err)
		}
		if result.Year != 2102 {
			t.Fatalf("testcase '%s': year %d instead of 2102", testcase, result.Year)
		}
	}
}

func TestParseRelaxedDateRejectsOutOfRange(t *testing.T) {
	for _, input := range []string{
		"32",         // no month has a 32nd
		"0",          // days start at 1
		"31 11",      // November has 30 days
		"29 2 2021",  // not a leap year
		"14 13 2021", // month 13
		"14 0 2021",  // month 0
	} {
		_, err := model.ParseRelaxedDate(input, today)
		if !errors.Is(err, model.ErrInvalidDateFormat) {
			t.Fatalf("'%s' should fail date validation, got error %v", input, err)
		}
	}

	// leap day in an actual leap year is fine
	if _, err := model.ParseRelaxedDate("29 2 2020", today); err != nil {
		t.Fatalf("'29 2 2020' should parse, got error %v", err)
	}
}

func TestParseRelaxedDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"foo",
		"14 notamonth",
		"14 3 123",
		"1 2 3 4",
	} {
		_, err := model.ParseRelaxedDate(input, today)
		if !errors.Is(err, model.ErrInvalidDateFormat) {
			t.Fatalf("'%s' should fail date parsing, got error %v", input, err)
		}
	}
}

func TestFromString(t *testing.T) {
	{
		result, err := model.FromString("2021-03-14")
		if err != nil {
			t.Fatalf("'2021-03-14' should parse, got error %v", err)
		}
		expected := model.Date{Year: 2021, Month: 3, Day: 14}
		if result != expected {
			t.Fatalf("got %s instead of %s", result.String(), expected.String())
		}
	}
	{
		for _, input := range []string{"14-03-2021", "2021-3-14", "2021-13-01", "2021-02-30", ""} {
			_, err := model.FromString(input)
			if !errors.Is(err, model.ErrInvalidDateFormat) {
				t.Fatalf("'%s' should fail strict date parsing, got error %v", input, err)
			}
		}
	}
}
