package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/models"
	"github.com/AadarshCanCode/Wellnest/internal/storage"
	"github.com/AadarshCanCode/Wellnest/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Remove duplicate habits, keeping the first of each name."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	data, err := rawData(ctx.Store)
	if err != nil {
		return err
	}

	ctx.Println("Validating habits, journal entries and goals...")
	result := validation.New().ValidateData(data)

	ctx.Println()
	ctx.Println(result.FormatReport())

	if !cmd.Fix || result.Count(validation.ConflictDuplicateHabitName) == 0 {
		return nil
	}

	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	actions := validation.AutoFixDuplicateHabits(result.Conflicts, func(id string) error {
		_, err := svc.DeleteHabit(id)
		return err
	})
	ctx.Println("Applied fixes:")
	for _, a := range actions {
		ctx.Printf("- %s\n", a.Action)
	}
	return nil
}

// rawData reads the stored snapshot without normalizing it, so problems
// that loading would paper over stay visible.
func rawData(store storage.Provider) (models.Data, error) {
	raw, err := store.Get(constants.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.NewData(), nil
		}
		return models.Data{}, fmt.Errorf("failed to read %s: %w", constants.StorageKey, err)
	}
	var data models.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.Data{}, fmt.Errorf("stored data is not valid JSON: %w", err)
	}
	return data, nil
}
