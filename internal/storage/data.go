package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AadarshCanCode/Wellnest/internal/constants"
	"github.com/AadarshCanCode/Wellnest/internal/logger"
	"github.com/AadarshCanCode/Wellnest/internal/models"
)

// LoadData reads the snapshot stored under the storage key. A missing or
// unreadable blob yields an empty snapshot; only provider failures are
// returned as errors.
func LoadData(p Provider) (models.Data, error) {
	raw, err := p.Get(constants.StorageKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.NewData(), nil
		}
		return models.Data{}, fmt.Errorf("failed to read %s: %w", constants.StorageKey, err)
	}

	data := models.NewData()
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Error("Stored data is corrupt, starting from defaults", "key", constants.StorageKey, "error", err)
		return models.NewData(), nil
	}
	data.Normalize()
	return data, nil
}

// SaveData writes the snapshot under the storage key.
func SaveData(p Provider, data models.Data) error {
	data.Normalize()
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}
	if err := p.Put(constants.StorageKey, raw); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}
