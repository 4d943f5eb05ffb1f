package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ResolveDay turns user input into a day identifier relative to now.
// Accepts "today", "yesterday", "tomorrow", "+N"/"-N" day offsets and YYYY-MM-DD.
func ResolveDay(input string, now time.Time) (models.Day, error) {
	today := models.DayOf(now)
	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.Add(-1), nil
	case "tomorrow":
		return today.Add(1), nil
	}

	if input[0] == '+' || input[0] == '-' {
		if n, err := strconv.Atoi(input); err == nil {
			return today.Add(n), nil
		}
	}

	d, err := models.ParseDay(input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD, today, yesterday or +N/-N", input)
	}
	return d, nil
}
