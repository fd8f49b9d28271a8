package model_test

import (
	"reflect"
	"testing"

	"timeaftertime/internal/model"
)

func threeMonthSheet() *model.Timesheet {
	return &model.Timesheet{
		Name:     "Tutoring",
		Currency: "£",
		Rate:     10,
		TimeBase: model.TimeBaseHour,
		Entries: []model.Entry{
			{Date: model.Date{2021, 9, 14}, Duration: 2, Activity: "maths", Rate: 10},
			{Date: model.Date{2021, 11, 2}, Duration: 1.5, Activity: "physics", Rate: 12},
			{Date: model.Date{2021, 10, 1}, Duration: 3, Activity: "maths", Rate: 10},
			{Date: model.Date{2021, 11, 2}, Duration: 0.5, Activity: "admin", Rate: 12},
			{Date: model.Date{2021, 11, 1}, Duration: 2.5, Activity: "maths", Rate: 10},
		},
	}
}

func TestMonthGroups(t *testing.T) {
	sheet := threeMonthSheet()
	groups := sheet.MonthGroups()

	if len(groups) != 3 {
		t.Fatalf("expected 3 month groups, got %d", len(groups))
	}

	{
		testcase := "months ordered most-recent-first"

		expected := []model.YearMonth{{2021, 11}, {2021, 10}, {2021, 9}}
		for i := range groups {
			if groups[i].Month != expected[i] {
				t.Fatalf("testcase '%s': group %d is %s instead of %s", testcase, i, groups[i].Month.String(), expected[i].String())
			}
		}
	}
	{
		testcase := "per-month totals"

		if groups[0].TotalDuration != 4.5 {
			t.Fatalf("testcase '%s': november duration %v instead of 4.5", testcase, groups[0].TotalDuration)
		}
		if groups[0].TotalPay != 1.5*12+0.5*12+2.5*10 {
			t.Fatalf("testcase '%s': november pay %v", testcase, groups[0].TotalPay)
		}
		if groups[1].TotalDuration != 3 || groups[2].TotalDuration != 2 {
			t.Fatalf("testcase '%s': older month durations %v / %v", testcase, groups[1].TotalDuration, groups[2].TotalDuration)
		}
	}
	{
		testcase := "entries within a month ordered by date, insertion order breaking ties"

		november := groups[0].Entries
		if len(november) != 3 {
			t.Fatalf("testcase '%s': november has %d entries instead of 3", testcase, len(november))
		}
		if november[0].Activity != "maths" || november[1].Activity != "physics" || november[2].Activity != "admin" {
			t.Fatalf("testcase '%s': order was %s, %s, %s", testcase, november[0].Activity, november[1].Activity, november[2].Activity)
		}
	}
	{
		testcase := "group indices point back into the entry sequence"

		for _, group := range groups {
			for i := range group.Entries {
				if sheet.Entries[group.Indices[i]] != group.Entries[i] {
					t.Fatalf("testcase '%s': index %d of %s does not point at its entry", testcase, i, group.Month.String())
				}
			}
		}
		if !reflect.DeepEqual(groups[0].Indices, []int{4, 1, 3}) {
			t.Fatalf("testcase '%s': november indices were %v", testcase, groups[0].Indices)
		}
	}
}

func TestMonthGroupsIdempotent(t *testing.T) {
	sheet := threeMonthSheet()

	first := sheet.MonthGroups()
	second := sheet.MonthGroups()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated aggregation over an unchanged sheet differed:\n%v\n%v", first, second)
	}
}

func TestMonthGroupsEmptySheet(t *testing.T) {
	sheet := &model.Timesheet{Name: "Empty", TimeBase: model.TimeBaseHour}
	groups := sheet.MonthGroups()
	if len(groups) != 0 {
		t.Fatalf("empty sheet should aggregate to no groups, got %d", len(groups))
	}
}

func TestSheetTotals(t *testing.T) {
	sheet := threeMonthSheet()
	if sheet.TotalDuration() != 9.5 {
		t.Fatalf("total duration %v instead of 9.5", sheet.TotalDuration())
	}
	expectedPay := 2*10 + 1.5*12 + 3*10 + 0.5*12 + 2.5*10
	if sheet.TotalPay() != float64(expectedPay) {
		t.Fatalf("total pay %v instead of %v", sheet.TotalPay(), expectedPay)
	}
}

func TestEditEntry(t *testing.T) {
	sheet := threeMonthSheet()

	replacement := model.Entry{Date: model.Date{2021, 9, 15}, Duration: 4, Activity: "maths", Rate: 11}
	if err := sheet.EditEntry(0, replacement); err != nil {
		t.Fatalf("editing entry 0 failed: %s", err)
	}
	if sheet.Entries[0] != replacement {
		t.Fatalf("entry 0 is %v after edit", sheet.Entries[0])
	}

	if err := sheet.EditEntry(5, replacement); err == nil {
		t.Fatalf("editing out-of-range index should fail")
	}
	if err := sheet.EditEntry(-1, replacement); err == nil {
		t.Fatalf("editing negative index should fail")
	}
}

func TestRemoveEntries(t *testing.T) {
	{
		testcase := "removing two entries, given in ascending order"

		sheet := threeMonthSheet()
		if err := sheet.RemoveEntries([]int{1, 3}); err != nil {
			t.Fatalf("testcase '%s' failed: %s", testcase, err)
		}
		if len(sheet.Entries) != 3 {
			t.Fatalf("testcase '%s': %d entries left instead of 3", testcase, len(sheet.Entries))
		}
		for _, e := range sheet.Entries {
			if e.Activity == "physics" || e.Activity == "admin" {
				t.Fatalf("testcase '%s': entry '%s' should have been removed", testcase, e.Activity)
			}
		}
	}
	{
		testcase := "out-of-range index removes nothing"

		sheet := threeMonthSheet()
		if err := sheet.RemoveEntries([]int{0, 17}); err == nil {
			t.Fatalf("testcase '%s': expected an error", testcase)
		}
		if len(sheet.Entries) != 5 {
			t.Fatalf("testcase '%s': sheet was modified on failed removal", testcase)
		}
	}
	{
		testcase := "duplicate indices only remove once"

		sheet := threeMonthSheet()
		if err := sheet.RemoveEntries([]int{2, 2}); err != nil {
			t.Fatalf("testcase '%s' failed: %s", testcase, err)
		}
		if len(sheet.Entries) != 4 {
			t.Fatalf("testcase '%s': %d entries left instead of 4", testcase, len(sheet.Entries))
		}
	}
}
