// Package app owns the in-memory snapshot and applies user actions to it.
// Every mutation is persisted before it becomes visible; a failed save
// leaves the snapshot unchanged.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AadarshCanCode/Wellnest/internal/analytics"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/sentiment"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAmbiguous    = errors.New("ambiguous reference")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("already exists")
)

type Service struct {
	store      storage.Provider
	classifier sentiment.Classifier
	now        func() time.Time
	data       models.Data
}

// New creates a service over an already loaded provider. A nil classifier
// uses keyword matching; a nil clock uses time.Now.
func New(store storage.Provider, classifier sentiment.Classifier, now func() time.Time) *Service {
	if classifier == nil {
		classifier = sentiment.NewKeyword()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:      store,
		classifier: classifier,
		now:        now,
		data:       models.NewData(),
	}
}

// Load reads the snapshot from the provider.
func (s *Service) Load() error {
	data, err := storage.LoadData(s.store)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Data returns a copy of the current snapshot.
func (s *Service) Data() models.Data {
	return cloneData(s.data)
}

func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) Today() models.Day {
	return models.DayOf(s.now())
}

// Stats computes the dashboard figures for the current snapshot.
func (s *Service) Stats() analytics.Stats {
	return analytics.Dashboard(s.data, s.now())
}

// commit persists next and, on success, makes it the current snapshot.
func (s *Service) commit(next models.Data) error {
	if err := storage.SaveData(s.store, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Service) AddHabit(name string, category models.Category) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, fmt.Errorf("%w: habit name cannot be empty", ErrInvalidInput)
	}
	if category == "" {
		category = models.CategoryHealth
	}
	for _, h := range s.data.Habits {
		if strings.EqualFold(h.Name, name) {
			return models.Habit{}, fmt.Errorf("habit %q %w", name, ErrDuplicate)
		}
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Name:           name,
		Category:       category,
		CreatedAt:      s.now(),
		CompletedDates: []models.Day{},
	}

	next := cloneData(s.data)
	next.Habits = append(next.Habits, habit)
	if err := s.commit(next); err != nil {
		return models.Habit{}, err
	}
	logger.Debug("Added habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// ToggleHabit flips the habit's completion on day and reports the new state.
func (s *Service) ToggleHabit(ref string, day models.Day) (models.Habit, bool, error) {
	if !day.Valid() {
		return models.Habit{}, false, fmt.Errorf("%w: invalid day %q", ErrInvalidInput, day)
	}
	i, err := s.findHabit(ref)
	if err != nil {
		return models.Habit{}, false, err
	}

	next := cloneData(s.data)
	done := next.Habits[i].Toggle(day)
	if err := s.commit(next); err != nil {
		return models.Habit{}, false, err
	}
	return next.Habits[i], done, nil
}

func (s *Service) DeleteHabit(ref string) (models.Habit, error) {
	i, err := s.findHabit(ref)
	if err != nil {
		return models.Habit{}, err
	}

	next := cloneData(s.data)
	habit := next.Habits[i]
	next.Habits = append(next.Habits[:i], next.Habits[i+1:]...)
	if err := s.commit(next); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Service) Habit(ref string) (models.Habit, error) {
	i, err := s.findHabit(ref)
	if err != nil {
		return models.Habit{}, err
	}
	return cloneHabit(s.data.Habits[i]), nil
}

func (s *Service) AddGoal(title, description string, deadline models.Day) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Goal{}, fmt.Errorf("%w: goal title cannot be empty", ErrInvalidInput)
	}
	if deadline == "" {
		return models.Goal{}, fmt.Errorf("%w: goal deadline is required", ErrInvalidInput)
	}
	if !deadline.Valid() {
		return models.Goal{}, fmt.Errorf("%w: invalid deadline %q (expected YYYY-MM-DD)", ErrInvalidInput, deadline)
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Deadline:    deadline,
		CreatedAt:   s.now(),
	}

	next := cloneData(s.data)
	next.Goals = append(next.Goals, goal)
	if err := s.commit(next); err != nil {
		return models.Goal{}, err
	}
	logger.Debug("Added goal", "id", goal.ID, "title", goal.Title)
	return goal, nil
}

func (s *Service) ToggleGoal(ref string) (models.Goal, error) {
	i, err := s.findGoal(ref)
	if err != nil {
		return models.Goal{}, err
	}

	next := cloneData(s.data)
	next.Goals[i].Toggle(s.now())
	if err := s.commit(next); err != nil {
		return models.Goal{}, err
	}
	return next.Goals[i], nil
}

func (s *Service) Goal(ref string) (models.Goal, error) {
	i, err := s.findGoal(ref)
	if err != nil {
		return models.Goal{}, err
	}
	return s.data.Goals[i], nil
}

func (s *Service) DeleteGoal(ref string) (models.Goal, error) {
	i, err := s.findGoal(ref)
	if err != nil {
		return models.Goal{}, err
	}

	next := cloneData(s.data)
	goal := next.Goals[i]
	next.Goals = append(next.Goals[:i], next.Goals[i+1:]...)
	if err := s.commit(next); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// AddEntry records a journal entry. Its sentiment is classified once, here,
// and the entry is placed first so the list stays newest first.
func (s *Service) AddEntry(content string, mood models.Mood, prompt string) (models.JournalEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.JournalEntry{}, fmt.Errorf("%w: journal entry cannot be empty", ErrInvalidInput)
	}
	if mood != "" && !mood.Known() {
		return models.JournalEntry{}, fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, mood)
	}
	if _, ok := models.Prompts[prompt]; prompt != "" && !ok {
		return models.JournalEntry{}, fmt.Errorf("%w: unknown prompt %q", ErrInvalidInput, prompt)
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Content:   content,
		Mood:      mood,
		Prompt:    prompt,
		Date:      s.now(),
		Sentiment: s.classifier.Classify(content),
	}

	next := cloneData(s.data)
	next.Entries = append([]models.JournalEntry{entry}, next.Entries...)
	if err := s.commit(next); err != nil {
		return models.JournalEntry{}, err
	}
	logger.Debug("Added journal entry", "id", entry.ID, "sentiment", entry.Sentiment)
	return entry, nil
}

func (s *Service) Entry(ref string) (models.JournalEntry, error) {
	i, err := s.findEntry(ref)
	if err != nil {
		return models.JournalEntry{}, err
	}
	return s.data.Entries[i], nil
}

func (s *Service) DeleteEntry(ref string) (models.JournalEntry, error) {
	i, err := s.findEntry(ref)
	if err != nil {
		return models.JournalEntry{}, err
	}

	next := cloneData(s.data)
	entry := next.Entries[i]
	next.Entries = append(next.Entries[:i], next.Entries[i+1:]...)
	if err := s.commit(next); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func cloneHabit(h models.Habit) models.Habit {
	h.CompletedDates = append([]models.Day{}, h.CompletedDates...)
	return h
}

func cloneData(d models.Data) models.Data {
	out := models.Data{
		Version: d.Version,
		Habits:  make([]models.Habit, len(d.Habits)),
		Goals:   make([]models.Goal, len(d.Goals)),
		Entries: append([]models.JournalEntry{}, d.Entries...),
	}
	for i, h := range d.Habits {
		out.Habits[i] = cloneHabit(h)
	}
	for i, g := range d.Goals {
		if g.CompletedAt != nil {
			t := *g.CompletedAt
			g.CompletedAt = &t
		}
		out.Goals[i] = g
	}
	return out
}
