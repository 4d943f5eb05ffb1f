package series

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// WeekdayShort formats t as "Mon".
func WeekdayShort(t time.Time) string {
	return t.Format("Mon")
}

// MonthDay formats t as "Jan 2".
func MonthDay(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatHour renders an hour of the day on a 12-hour clock, e.g. "1:00 PM".
func FormatHour(hour int) string {
	hour = ((hour % 24) + 24) % 24
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, suffix)
}

// RelativeDay describes t relative to now by calendar day.
func RelativeDay(t, now time.Time) string {
	t = t.In(now.Location())
	today := models.DayOf(now)
	day := models.DayOf(t)

	switch day {
	case today:
		return "Today"
	case today.Add(-1):
		return "Yesterday"
	}
	for n := 2; n < 7; n++ {
		if day == today.Add(-n) {
			return fmt.Sprintf("%d days ago", n)
		}
	}
	return t.Format("Jan 2, 2006")
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(string(r)) + s[size:]
}
