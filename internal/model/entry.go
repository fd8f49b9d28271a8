package model

// An Entry is a single line of a timesheet: on this date, this much time was
// worked on this activity, at this rate of pay.
//
// The rate is kept per entry (it defaults to the sheet's rate when the entry
// is made) so that old entries keep paying out at the rate they were worked
// at when the sheet's default rate changes.
type Entry struct {
	Date     Date
	Duration Duration
	Activity string
	Rate     float64
}

// Pay returns the pay earned by this entry.
func (e *Entry) Pay() float64 {
	return float64(e.Duration) * e.Rate
}
