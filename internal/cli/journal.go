package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
)

type JournalCmd struct {
	List     JournalListCmd     `cmd:"" help:"List recent journal entries." default:"1"`
	Write    JournalWriteCmd    `cmd:"" help:"Write a journal entry."`
	Delete   JournalDeleteCmd   `cmd:"" help:"Delete a journal entry."`
	Prompts  JournalPromptsCmd  `cmd:"" help:"List writing prompts."`
	Calendar JournalCalendarCmd `cmd:"" help:"Show this month's journaling calendar."`
}

type JournalWriteCmd struct {
	Content []string `arg:"" optional:"" help:"Entry text. Read from stdin when omitted."`
	Mood    string   `short:"m" help:"Mood (amazing, good, neutral, sad, anxious)."`
	Prompt  string   `short:"p" help:"Writing prompt tag (see 'wellnest journal prompts')."`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	content := strings.Join(c.Content, " ")
	if strings.TrimSpace(content) == "" {
		if text, ok := models.Prompts[c.Prompt]; ok {
			ctx.Println(mutedStyle.Render(text))
		}
		raw, err := io.ReadAll(ctx.in())
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		content = string(raw)
	}

	entry, err := svc.AddEntry(content, models.Mood(c.Mood), c.Prompt)
	if err != nil {
		return err
	}
	ctx.Printf("Entry saved successfully! 💚 %s %s (%s)\n",
		entry.Sentiment.Emoji(), series.Capitalize(string(entry.Sentiment)), shortID(entry.ID))
	return nil
}

type JournalListCmd struct {
	Limit int  `short:"n" help:"Number of entries to show (0 for all)." default:"10"`
	JSON  bool `help:"Output as JSON."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	entries := svc.Data().Entries
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	if c.JSON {
		return ctx.printJSON(entries)
	}

	if len(entries) == 0 {
		ctx.Println("No entries yet. Write one with 'wellnest journal write'.")
		return nil
	}

	now := svc.Now()
	for _, e := range entries {
		header := fmt.Sprintf("%s %s", series.RelativeDay(e.Date, now), e.Date.In(now.Location()).Format("3:04 PM"))
		tags := []string{}
		if e.HasMood() {
			tags = append(tags, e.Mood.Emoji()+" "+series.Capitalize(string(e.Mood)))
		}
		if e.Sentiment != "" {
			tags = append(tags, e.Sentiment.Emoji()+" "+series.Capitalize(string(e.Sentiment)))
		}
		if e.Prompt != "" {
			tags = append(tags, "#"+e.Prompt)
		}
		ctx.Printf("%s  %s  %s\n", titleStyle.Render(header), strings.Join(tags, "  "), mutedStyle.Render(shortID(e.ID)))
		ctx.Printf("  %s\n\n", excerpt(e.Content, 160))
	}
	return nil
}

func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

type JournalDeleteCmd struct {
	Entry string `arg:"" help:"Entry ID or ID prefix."`
	Yes   bool   `short:"y" help:"Skip confirmation."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := ctx.confirm("Delete this entry? This action cannot be undone.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Cancelled.")
			return nil
		}
	}
	if _, err := svc.DeleteEntry(c.Entry); err != nil {
		return err
	}
	ctx.Println("Entry deleted")
	return nil
}

type JournalPromptsCmd struct{}

func (c *JournalPromptsCmd) Run(ctx *Context) error {
	tags := make([]string, 0, len(models.Prompts))
	for tag := range models.Prompts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		ctx.Printf("%s\n  %s\n", titleStyle.Render(tag), models.Prompts[tag])
	}
	return nil
}

type JournalCalendarCmd struct {
	JSON bool `help:"Output as JSON."`
}

func (c *JournalCalendarCmd) Run(ctx *Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	now := svc.Now()
	cal := series.MonthCalendar(svc.Data().Entries, now)
	if c.JSON {
		return ctx.printJSON(cal)
	}

	ctx.Println(titleStyle.Render(cal.MonthName))
	ctx.Println(" Mo Tu We Th Fr Sa Su")
	today := models.DayOf(now)
	written := 0
	for _, week := range cal.Weeks {
		var b strings.Builder
		for _, d := range week {
			cell := fmt.Sprintf("%3s", strings.TrimLeft(string(d.Date[8:]), "0"))
			switch {
			case !d.IsCurrentMonth:
				cell = mutedStyle.Render(cell)
			case d.HasEntry:
				cell = okStyle.Render(cell)
				written++
			case d.Date == today:
				cell = titleStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		ctx.Println(b.String())
	}
	ctx.Printf("\n%s this month\n", plural(written, "day"))
	return nil
}
