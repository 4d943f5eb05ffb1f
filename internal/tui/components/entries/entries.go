package entries

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
)

type WriteEntryMsg struct{}

type DeleteEntryMsg struct {
	ID string
}

type Item struct {
	Entry models.JournalEntry
	When  string
}

func (i Item) Title() string {
	tags := []string{i.When}
	if i.Entry.HasMood() {
		tags = append(tags, i.Entry.Mood.Emoji()+" "+series.Capitalize(string(i.Entry.Mood)))
	}
	if i.Entry.Sentiment != "" {
		tags = append(tags, i.Entry.Sentiment.Emoji()+" "+series.Capitalize(string(i.Entry.Sentiment)))
	}
	return strings.Join(tags, "  ")
}

func (i Item) Description() string {
	content := strings.Join(strings.Fields(i.Entry.Content), " ")
	if i.Entry.Prompt != "" {
		return fmt.Sprintf("#%s %s", i.Entry.Prompt, content)
	}
	return content
}

func (i Item) FilterValue() string { return i.Entry.Content }

type KeyMap struct {
	Write  key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Write: key.NewBinding(
			key.WithKeys("a", "w"),
			key.WithHelp("a/w", "write"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Write, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Write, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

// SetEntries keeps the stored order, newest first.
func (m *Model) SetEntries(entries []models.JournalEntry, now time.Time) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		when := fmt.Sprintf("%s %s", series.RelativeDay(e.Date, now), e.Date.In(now.Location()).Format("3:04 PM"))
		items[i] = Item{Entry: e, When: when}
	}
	m.list.SetItems(items)
}

func (m Model) Items() []list.Item {
	return m.list.Items()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Write):
			return m, func() tea.Msg { return WriteEntryMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
