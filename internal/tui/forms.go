package tui

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/series"
	"github.com/AadarshCanCode/Wellnest/internal/utils"
)

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(what + " cannot be empty")
		}
		return nil
	}
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	options := make([]huh.Option[models.Category], len(models.Categories))
	for i, c := range models.Categories {
		options[i] = huh.NewOption(c.Emoji()+" "+series.Capitalize(string(c)), c)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(required("name")),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(options...).
				Value(&fm.Category),
		),
	)
}

func newEntryForm(fm *EntryFormModel) *huh.Form {
	tags := make([]string, 0, len(models.Prompts))
	for tag := range models.Prompts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	prompts := []huh.Option[string]{huh.NewOption("Free writing", "")}
	for _, tag := range tags {
		prompts = append(prompts, huh.NewOption(series.Capitalize(tag), tag))
	}

	moods := []huh.Option[models.Mood]{huh.NewOption("No mood", models.Mood(""))}
	for _, md := range models.Moods {
		moods = append(moods, huh.NewOption(md.Emoji()+" "+series.Capitalize(string(md)), md))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Prompt").
				Options(prompts...).
				Value(&fm.Prompt),
			huh.NewSelect[models.Mood]().
				Title("How are you feeling?").
				Options(moods...).
				Value(&fm.Mood),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Entry").
				DescriptionFunc(func() string { return models.Prompts[fm.Prompt] }, &fm.Prompt).
				Value(&fm.Content).
				Validate(required("entry")),
		),
	)
}

func newGoalForm(fm *GoalFormModel, now time.Time) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(required("title")),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD, tomorrow or +N days").
				Value(&fm.Deadline).
				Validate(func(s string) error {
					_, err := utils.ResolveDay(strings.TrimSpace(s), now)
					return err
				}),
		),
	)
}

func defaultDeadline() string {
	return "+" + strconv.Itoa(constants.DefaultGoalLeadDays)
}
