package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Date struct {
	Year  int
	Month int
	Day   int
}

// DateFromGotime converts a time.Time to its calendar date.
func DateFromGotime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Valid() bool {
	// verify month
	if d.Month < 1 ||
		d.Month > 12 {
		return false
	}

	if d.Day < 1 ||
		d.Day > d.lastOfMonth() {
		return false
	}

	return true
}

// FromString parses a date in the strict YYYY-MM-DD format, as written to
// timesheet files.
func FromString(s string) (Date, error) {
	var result Date

	regex := regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	parsed := regex.FindStringSubmatch(s)
	if parsed == nil {
		return result, fmt.Errorf("%w: '%s' does not fit YYYY-MM-DD", ErrInvalidDateFormat, s)
	}

	year, _ := strconv.Atoi(parsed[1])
	month, _ := strconv.Atoi(parsed[2])
	day, _ := strconv.Atoi(parsed[3])

	result = Date{year, month, day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("%w: %s (from '%s') is not a real date", ErrInvalidDateFormat, result.String(), s)
	}
	return result, nil
}

var monthsByName = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var dateFieldSeparators = regexp.MustCompile(`[\s./-]+`)

// ParseRelaxedDate parses a user-supplied, possibly incomplete date string
// with fields in day-month-year order, filling missing fields from today.
//
//	""           -> today
//	"14"         -> the 14th of today's month and year
//	"14 3"       -> the 14th of March of today's year
//	"14 Mar 21"  -> complete (two-digit years land within 50 years of today)
//	"14-03-2021" -> complete
//
// Fields may be separated by spaces, '-', '/', or '.'; the month may be given
// numerically or by English name or three-letter abbreviation.
func ParseRelaxedDate(s string, today Date) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return today, nil
	}

	fields := dateFieldSeparators.Split(s, -1)
	if len(fields) > 3 {
		return Date{}, fmt.Errorf("%w: too many fields in '%s'", ErrInvalidDateFormat, s)
	}

	result := today

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: day '%s' is not a number", ErrInvalidDateFormat, fields[0])
	}
	result.Day = day

	if len(fields) >= 2 {
		month, err := parseMonthField(fields[1])
		if err != nil {
			return Date{}, err
		}
		result.Month = month
	}

	if len(fields) == 3 {
		year, err := parseYearField(fields[2], today.Year)
		if err != nil {
			return Date{}, err
		}
		result.Year = year
	}

	if !result.Valid() {
		return Date{}, fmt.Errorf("%w: %s (from '%s') is not a real date", ErrInvalidDateFormat, result.String(), s)
	}

	return result, nil
}

func parseMonthField(field string) (int, error) {
	if month, ok := monthsByName[strings.ToLower(field)]; ok {
		return month, nil
	}
	month, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%w: month '%s' is neither a number nor a month name", ErrInvalidDateFormat, field)
	}
	return month, nil
}

// parseYearField parses a 4-digit year as given and resolves a 2-digit year
// YY to the unique year ending in YY within [currentYear-50, currentYear+49].
func parseYearField(field string, currentYear int) (int, error) {
	year, err := strconv.Atoi(field)
	if err != nil || year < 0 {
		return 0, fmt.Errorf("%w: year '%s' is not a number", ErrInvalidDateFormat, field)
	}

	switch len(field) {
	case 4:
		return year, nil
	case 1, 2:
		resolved := currentYear - currentYear%100 + year
		if resolved < currentYear-50 {
			resolved += 100
		} else if resolved > currentYear+49 {
			resolved -= 100
		}
		return resolved, nil
	default:
		return 0, fmt.Errorf("%w: year '%s' must have two or four digits", ErrInvalidDateFormat, field)
	}
}

func (d Date) lastOfMonth() int {
	switch {
	case d.Month == 2 && d.isLeapYear():
		return 29
	default:
		return lastDaysOfMonth()[d.Month]
	}
}

func lastDaysOfMonth() map[int]int {
	return map[int]int{
		1:  31,
		2:  28,
		3:  31,
		4:  30,
		5:  31,
		6:  30,
		7:  31,
		8:  31,
		9:  30,
		10: 31,
		11: 30,
		12: 31,
	}
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

// Whether a date A is after a date B.
func (a Date) IsAfter(b Date) bool {
	switch {
	case a.Year != b.Year:
		return a.Year > b.Year
	case a.Month != b.Month:
		return a.Month > b.Month
	default:
		return a.Day > b.Day
	}
}

// Whether a date A is before a date B.
func (a Date) IsBefore(b Date) bool {
	return b.IsAfter(a) && a != b
}

func (d Date) ToGotime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// YearMonth returns the month key this date falls in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}
