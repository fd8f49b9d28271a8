package model

import (
	"fmt"
	"sort"
	"time"
)

// A Timesheet holds an ordered sequence of entries together with the pay
// metadata they are denominated in.
//
// All entry durations are in units of TimeBase. Entries keep their insertion
// order; grouping and ordering for display is derived on demand via
// MonthGroups.
type Timesheet struct {
	Name     string
	Currency string
	Rate     float64
	TimeBase TimeBase

	Entries []Entry
}

// AddEntry appends an entry to the sheet.
func (ts *Timesheet) AddEntry(e Entry) {
	ts.Entries = append(ts.Entries, e)
}

// EditEntry replaces the entry at the given index.
func (ts *Timesheet) EditEntry(index int, e Entry) error {
	if index < 0 || index >= len(ts.Entries) {
		return fmt.Errorf("no entry with index %d (have %d entries)", index, len(ts.Entries))
	}
	ts.Entries[index] = e
	return nil
}

// RemoveEntries removes the entries at the given indices.
func (ts *Timesheet) RemoveEntries(indices []int) error {
	for _, index := range indices {
		if index < 0 || index >= len(ts.Entries) {
			return fmt.Errorf("no entry with index %d (have %d entries)", index, len(ts.Entries))
		}
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	prev := -1
	for _, index := range sorted {
		if index == prev {
			continue
		}
		ts.Entries = append(ts.Entries[:index], ts.Entries[index+1:]...)
		prev = index
	}
	return nil
}

// TotalDuration returns the summed duration over all entries.
func (ts *Timesheet) TotalDuration() Duration {
	var total Duration
	for i := range ts.Entries {
		total += ts.Entries[i].Duration
	}
	return total
}

// TotalPay returns the summed pay over all entries.
func (ts *Timesheet) TotalPay() float64 {
	var total float64
	for i := range ts.Entries {
		total += ts.Entries[i].Pay()
	}
	return total
}

// A YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// IsAfter reports whether month A is later than month B.
func (a YearMonth) IsAfter(b YearMonth) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return a.Month > b.Month
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month).String(), m.Year)
}

// A MonthGroup is the derived per-month view of a timesheet: the entries
// whose dates fall in the month, in display order, with summed duration and
// pay. It is recomputed from the entry sequence on demand and never stored.
// Indices[i] is the position Entries[i] holds in the sheet's entry sequence,
// which is what entry-editing operations address entries by.
type MonthGroup struct {
	Month         YearMonth
	Entries       []Entry
	Indices       []int
	TotalDuration Duration
	TotalPay      float64
}

// MonthGroups groups the sheet's entries by calendar month.
//
// Groups are ordered most-recent-month first. Within a group entries are
// ordered by date, entries sharing a date staying in insertion order.
// An empty sheet yields an empty (nil-free) slice.
func (ts *Timesheet) MonthGroups() []MonthGroup {
	byMonth := make(map[YearMonth][]int)
	months := make([]YearMonth, 0)
	for i := range ts.Entries {
		key := ts.Entries[i].Date.YearMonth()
		if _, seen := byMonth[key]; !seen {
			months = append(months, key)
		}
		byMonth[key] = append(byMonth[key], i)
	}

	sort.Slice(months, func(i, j int) bool { return months[i].IsAfter(months[j]) })

	groups := make([]MonthGroup, 0, len(months))
	for _, month := range months {
		indices := byMonth[month]
		sort.SliceStable(indices, func(i, j int) bool {
			return ts.Entries[indices[i]].Date.IsBefore(ts.Entries[indices[j]].Date)
		})

		group := MonthGroup{Month: month, Indices: indices}
		for _, index := range indices {
			entry := ts.Entries[index]
			group.Entries = append(group.Entries, entry)
			group.TotalDuration += entry.Duration
			group.TotalPay += entry.Pay()
		}
		groups = append(groups, group)
	}

	return groups
}
