package tui

import (
	"fmt"

	"timeaftertime/internal/model"
	"timeaftertime/internal/styling"
	"timeaftertime/internal/util"
)

// A tableRow is one prerendered line of the month-grouped timesheet table.
type tableRow struct {
	text  string
	style styling.DrawStyling
}

// TableView renders a timesheet as a read-only table grouped by month, most
// recent month first, with a totals line per month and a status bar at the
// bottom.
type TableView struct {
	sheet      *model.Timesheet
	stylesheet *styling.Stylesheet

	rows []tableRow
}

// NewTableView constructs the view for the given sheet and computes its rows.
func NewTableView(sheet *model.Timesheet, stylesheet *styling.Stylesheet) *TableView {
	v := &TableView{sheet: sheet, stylesheet: stylesheet}
	v.refresh()
	return v
}

const (
	dateColWidth     = 12
	durationColWidth = 10
	activityColWidth = 24
	payColWidth      = 12
)

func tableLine(date, duration, activity, pay string) string {
	return fmt.Sprintf(
		"%-*s%-*s%-*s%*s",
		dateColWidth, date,
		durationColWidth, duration,
		activityColWidth, activity,
		payColWidth, pay,
	)
}

func (v *TableView) formatPay(pay float64) string {
	return fmt.Sprintf("%s%.2f", v.sheet.Currency, pay)
}

// refresh rebuilds the row list from the sheet's month groups.
func (v *TableView) refresh() {
	v.rows = v.rows[:0]

	for _, group := range v.sheet.MonthGroups() {
		v.rows = append(v.rows,
			tableRow{text: group.Month.String(), style: v.stylesheet.MonthHeader},
			tableRow{text: tableLine("Date", "Time", "Activity", "Pay"), style: v.stylesheet.ColumnHeader},
		)

		for i := range group.Entries {
			e := &group.Entries[i]
			style := v.stylesheet.Normal
			if i%2 == 1 {
				style = v.stylesheet.NormalEmphasized
			}
			v.rows = append(v.rows, tableRow{
				text:  tableLine(e.Date.String(), e.Duration.String(), util.TruncateAt(e.Activity, activityColWidth-1), v.formatPay(e.Pay())),
				style: style,
			})
		}

		v.rows = append(v.rows,
			tableRow{
				text:  tableLine("", group.TotalDuration.String(), "", v.formatPay(group.TotalPay)),
				style: v.stylesheet.MonthTotal,
			},
			tableRow{text: "", style: v.stylesheet.Normal},
		)
	}
}

// RowCount returns the number of table rows (excluding the status bar).
func (v *TableView) RowCount() int {
	return len(v.rows)
}

// Draw renders the table with the given scroll offset plus the status bar.
func (v *TableView) Draw(screen *ScreenHandler, scrollOffset int) {
	screen.Clear()

	w, h := screen.Dimensions()
	tableHeight := h - 1

	for row := 0; row < tableHeight; row++ {
		index := scrollOffset + row
		if index >= len(v.rows) {
			break
		}
		screen.DrawBox(0, row, w, 1, v.rows[index].style)
		screen.DrawText(0, row, w, 1, v.rows[index].style, v.rows[index].text)
	}

	status := fmt.Sprintf(
		" %s | %d entries | total %s %ss | %s ",
		v.sheet.Name,
		len(v.sheet.Entries),
		v.sheet.TotalDuration().String(),
		string(v.sheet.TimeBase),
		v.formatPay(v.sheet.TotalPay()),
	)
	screen.DrawBox(0, h-1, w, 1, v.stylesheet.Status)
	screen.DrawText(0, h-1, w, 1, v.stylesheet.Status, status)

	screen.Show()
}
