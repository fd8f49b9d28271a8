package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeBase is the unit in which a timesheet's durations and pay rate are
// denominated.
type TimeBase string

const (
	TimeBaseHour TimeBase = "hour"
	TimeBaseDay  TimeBase = "day"
)

// TimeBaseFromString parses a time base identifier (as found in config and
// timesheet metadata files).
func TimeBaseFromString(s string) (TimeBase, error) {
	switch TimeBase(s) {
	case TimeBaseHour:
		return TimeBaseHour, nil
	case TimeBaseDay:
		return TimeBaseDay, nil
	default:
		return "", fmt.Errorf("unknown time base '%s' (must be 'hour' or 'day')", s)
	}
}

// A Duration is a span of worked time denominated in a timesheet's time base,
// e.g. 2.5 hours or 0.5 days.
type Duration float64

var (
	plainNumber  = regexp.MustCompile(`^\d+(\.\d+)?$`)
	hoursAndMins = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
)

// ParseDuration parses a user-supplied duration string for the given time
// base.
//
// Integers and decimals (period separator) are accepted for either base;
// the colon-delimited H:MM form is hours-and-minutes and thus only accepted
// for the hour base, where it converts to fractional hours ("2:30" -> 2.5).
// Negative durations are rejected.
func ParseDuration(s string, base TimeBase) (Duration, error) {
	if plainNumber.MatchString(s) {
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: '%s'", ErrInvalidDurationFormat, s)
		}
		return Duration(value), nil
	}

	if match := hoursAndMins.FindStringSubmatch(s); match != nil {
		if base != TimeBaseHour {
			return 0, fmt.Errorf("%w: '%s' is hours and minutes but the time base is '%s'", ErrInvalidDurationFormat, s, base)
		}
		hours, _ := strconv.Atoi(match[1])
		minutes, _ := strconv.Atoi(match[2])
		if minutes > 59 {
			return 0, fmt.Errorf("%w: minutes in '%s' exceed 59", ErrInvalidDurationFormat, s)
		}
		return Duration(float64(hours) + float64(minutes)/60.0), nil
	}

	return 0, fmt.Errorf("%w: '%s'", ErrInvalidDurationFormat, s)
}

// String renders the duration in its canonical decimal form, as written to
// timesheet files ("2.5", "7", "1.25").
func (d Duration) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}
