package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateID        ConflictType = "duplicate_id"
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictMissingField       ConflictType = "missing_field"
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictDuplicateDay       ConflictType = "duplicate_completed_day"
	ConflictUnknownValue       ConflictType = "unknown_value"
)

// Conflict represents a problem detected in stored records
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Names or titles of the records involved
	IDs         []string // IDs of the records involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of the given type.
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks a data snapshot for records the analytics would
// silently tolerate but that indicate a damaged or hand-edited store.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateData runs every check over a snapshot. It should be given the
// snapshot as stored, before normalization.
func (v *Validator) ValidateData(data models.Data) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	result.Conflicts = append(result.Conflicts, v.validateIDs(data)...)
	result.Conflicts = append(result.Conflicts, v.ValidateHabits(data.Habits).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateEntries(data.Entries).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateGoals(data.Goals).Conflicts...)
	return result
}

func (v *Validator) validateIDs(data models.Data) []Conflict {
	seen := make(map[string][]string)
	add := func(id, name string) {
		if id == "" {
			return
		}
		seen[id] = append(seen[id], name)
	}
	for _, h := range data.Habits {
		add(h.ID, h.Name)
	}
	for _, g := range data.Goals {
		add(g.ID, g.Title)
	}
	for _, e := range data.Entries {
		add(e.ID, e.Date.Format("2006-01-02 15:04"))
	}

	var conflicts []Conflict
	for _, id := range sortedKeys(seen) {
		if names := seen[id]; len(names) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("ID %s is used by %d records: %v", id, len(names), names),
				Items:       names,
				IDs:         []string{id},
			})
		}
	}
	return conflicts
}

// ValidateHabits checks habits for missing fields, duplicate names,
// bad completion days and unrecognized categories.
func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	nameIDs := make(map[string][]string)
	for _, h := range habits {
		if strings.TrimSpace(h.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingField,
				Description: fmt.Sprintf("Habit %s has no name", h.ID),
				IDs:         []string{h.ID},
			})
			continue
		}
		key := strings.ToLower(strings.TrimSpace(h.Name))
		nameIDs[key] = append(nameIDs[key], h.ID)
	}
	for _, name := range sortedKeys(nameIDs) {
		if ids := nameIDs[name]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
				IDs:         ids,
			})
		}
	}

	for _, h := range habits {
		if h.Category != "" && !h.Category.Known() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownValue,
				Description: fmt.Sprintf("Habit %q has unrecognized category %q", h.Name, h.Category),
				Items:       []string{h.Name},
				IDs:         []string{h.ID},
			})
		}

		seen := make(map[models.Day]bool, len(h.CompletedDates))
		for _, d := range h.CompletedDates {
			if !d.Valid() {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("Habit %q has invalid completion day %q", h.Name, d),
					Items:       []string{h.Name},
					IDs:         []string{h.ID},
				})
				continue
			}
			if seen[d] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateDay,
					Description: fmt.Sprintf("Habit %q is completed twice on %s", h.Name, d),
					Items:       []string{h.Name},
					IDs:         []string{h.ID},
				})
			}
			seen[d] = true
		}
	}

	return result
}

// ValidateEntries checks journal entries for empty content, missing dates
// and unrecognized moods or sentiments.
func (v *Validator) ValidateEntries(entries []models.JournalEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, e := range entries {
		label := e.ID
		if strings.TrimSpace(e.Content) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingField,
				Description: fmt.Sprintf("Journal entry %s has no content", label),
				IDs:         []string{e.ID},
			})
		}
		if e.Date.IsZero() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Journal entry %s has no date", label),
				IDs:         []string{e.ID},
			})
		}
		if e.Mood != "" && !e.Mood.Known() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownValue,
				Description: fmt.Sprintf("Journal entry %s has unrecognized mood %q", label, e.Mood),
				IDs:         []string{e.ID},
			})
		}
		if e.Sentiment != "" && !e.Sentiment.Known() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownValue,
				Description: fmt.Sprintf("Journal entry %s has unrecognized sentiment %q", label, e.Sentiment),
				IDs:         []string{e.ID},
			})
		}
	}

	return result
}

// ValidateGoals checks goals for missing titles and unparseable deadlines.
func (v *Validator) ValidateGoals(goals []models.Goal) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, g := range goals {
		if strings.TrimSpace(g.Title) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingField,
				Description: fmt.Sprintf("Goal %s has no title", g.ID),
				IDs:         []string{g.ID},
			})
		}
		if !g.Deadline.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Goal %q has invalid deadline %q", g.Title, g.Deadline),
				Items:       []string{g.Title},
				IDs:         []string{g.ID},
			})
		}
		if g.Completed != (g.CompletedAt != nil) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingField,
				Description: fmt.Sprintf("Goal %q completion flag and timestamp disagree", g.Title),
				Items:       []string{g.Title},
				IDs:         []string{g.ID},
			})
		}
	}

	return result
}

// AutoFixDuplicateHabits keeps the first habit of each duplicated name and
// deletes the rest through deleteFunc.
func AutoFixDuplicateHabits(conflicts []Conflict, deleteFunc func(id string) error) []FixAction {
	var actions []FixAction
	for _, c := range conflicts {
		if c.Type != ConflictDuplicateHabitName || len(c.IDs) < 2 {
			continue
		}
		for _, id := range c.IDs[1:] {
			if err := deleteFunc(id); err != nil {
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Failed to delete duplicate habit %s: %v", id, err),
					SourceConflict: c,
				})
				continue
			}
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Deleted duplicate habit %q (ID: %s)", c.Items[0], id),
				SourceConflict: c,
			})
		}
	}
	return actions
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
