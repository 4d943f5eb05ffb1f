package models

import "github.com/AadarshCanCode/Wellnest/internal/constants"

// Data is the full persisted snapshot. It is stored as a single JSON blob.
type Data struct {
	Version int            `json:"version"`
	Habits  []Habit        `json:"habits"`
	Goals   []Goal         `json:"goals"`
	Entries []JournalEntry `json:"entries"`
}

// NewData returns an empty snapshot at the current data version.
func NewData() Data {
	return Data{
		Version: constants.DataVersion,
		Habits:  []Habit{},
		Goals:   []Goal{},
		Entries: []JournalEntry{},
	}
}

// Normalize fills absent collections and fields with their documented
// defaults so sparse records never trip up the analytics.
func (d *Data) Normalize() {
	if d.Version == 0 {
		d.Version = constants.DataVersion
	}
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.Entries == nil {
		d.Entries = []JournalEntry{}
	}
	for i := range d.Habits {
		d.Habits[i].normalize()
	}
	for i := range d.Entries {
		if !d.Entries[i].Sentiment.Known() {
			d.Entries[i].Sentiment = ""
		}
	}
}
