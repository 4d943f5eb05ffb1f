package app

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// minPrefix is the shortest ID prefix accepted as a reference.
const minPrefix = 4

// resolve finds the record a user reference points at: an exact ID, a
// unique ID prefix, or a case-insensitive name. On a miss the closest
// names are offered as suggestions.
func resolve(kind, ref string, ids, names []string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: empty %s reference", ErrInvalidInput, kind)
	}

	for i, id := range ids {
		if id == ref {
			return i, nil
		}
	}

	var byName []int
	for i, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), ref) {
			byName = append(byName, i)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		return -1, fmt.Errorf("%w: %d %ss are named %q, use the ID", ErrAmbiguous, len(byName), kind, ref)
	}

	if len(ref) >= minPrefix {
		var byPrefix []int
		for i, id := range ids {
			if strings.HasPrefix(id, ref) {
				byPrefix = append(byPrefix, i)
			}
		}
		if len(byPrefix) == 1 {
			return byPrefix[0], nil
		}
		if len(byPrefix) > 1 {
			return -1, fmt.Errorf("%w: %q matches %d %ss", ErrAmbiguous, ref, len(byPrefix), kind)
		}
	}

	if suggestion := Suggest(ref, names); suggestion != "" {
		return -1, fmt.Errorf("%s %q %w (did you mean %q?)", kind, ref, ErrNotFound, suggestion)
	}
	return -1, fmt.Errorf("%s %q %w", kind, ref, ErrNotFound)
}

// Suggest returns the candidate that best fuzzy-matches pattern, or "".
func Suggest(pattern string, candidates []string) string {
	matches := fuzzy.Find(strings.ToLower(pattern), lowerAll(candidates))
	if len(matches) == 0 {
		return ""
	}
	return candidates[matches[0].Index]
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

func (s *Service) findHabit(ref string) (int, error) {
	ids := make([]string, len(s.data.Habits))
	names := make([]string, len(s.data.Habits))
	for i, h := range s.data.Habits {
		ids[i], names[i] = h.ID, h.Name
	}
	return resolve("habit", ref, ids, names)
}

func (s *Service) findGoal(ref string) (int, error) {
	ids := make([]string, len(s.data.Goals))
	names := make([]string, len(s.data.Goals))
	for i, g := range s.data.Goals {
		ids[i], names[i] = g.ID, g.Title
	}
	return resolve("goal", ref, ids, names)
}

// findEntry matches entries by ID or ID prefix only.
func (s *Service) findEntry(ref string) (int, error) {
	ids := make([]string, len(s.data.Entries))
	for i, e := range s.data.Entries {
		ids[i] = e.ID
	}
	return resolve("entry", ref, ids, make([]string, len(ids)))
}
