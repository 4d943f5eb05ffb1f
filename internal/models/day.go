package models

import (
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
)

// Day is a calendar day identifier in YYYY-MM-DD form.
type Day string

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(constants.DateFormat))
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", err
	}
	return Day(s), nil
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, string(d))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// Add returns the day n calendar days after d (n may be negative).
// An unparseable day is returned unchanged.
func (d Day) Add(n int) Day {
	t, err := d.Time(time.UTC)
	if err != nil {
		return d
	}
	return DayOf(t.AddDate(0, 0, n))
}

func (d Day) Valid() bool {
	_, err := time.Parse(constants.DateFormat, string(d))
	return err == nil
}

func (d Day) String() string {
	return string(d)
}
