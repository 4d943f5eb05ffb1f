package series

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           models.Day `json:"date"`
	HasEntry       bool       `json:"hasEntry"`
	IsCurrentMonth bool       `json:"isCurrentMonth"`
}

// Calendar is a Monday-first grid of whole weeks covering one month.
type Calendar struct {
	MonthName string          `json:"monthName"`
	Weeks     [][]CalendarDay `json:"weeks"`
}

// MonthCalendar lays out the month containing now, padded with days of the
// neighbouring months to whole weeks. Only days up to today can be marked as
// having an entry.
func MonthCalendar(entries []models.JournalEntry, now time.Time) Calendar {
	loc := now.Location()
	written := make(map[models.Day]bool, len(entries))
	for _, e := range entries {
		written[models.DayOf(e.Date.In(loc))] = true
	}
	today := models.DayOf(now)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -mondayOffset(first))
	end := last.AddDate(0, 0, 6-mondayOffset(last))

	cal := Calendar{MonthName: now.Format("January 2006")}
	for week := start; !week.After(end); week = week.AddDate(0, 0, 7) {
		days := make([]CalendarDay, 7)
		for i := range days {
			t := week.AddDate(0, 0, i)
			d := models.DayOf(t)
			days[i] = CalendarDay{
				Date:           d,
				HasEntry:       d <= today && written[d],
				IsCurrentMonth: t.Month() == now.Month(),
			}
		}
		cal.Weeks = append(cal.Weeks, days)
	}
	return cal
}

// mondayOffset is the number of days since the preceding Monday.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
