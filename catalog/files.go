package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tooldex/tooldex/catalog/models"
	"github.com/tooldex/tooldex/utils"
)

// SaveJSON writes v to path as indented JSON, atomically. It reports whether
// the file content changed.
func SaveJSON(path string, v any) (bool, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return utils.WriteOutput(path, data)
}

// LoadHistories reads the persisted full-history map.
func LoadHistories(path string) (map[string]models.PageHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	histories := make(map[string]models.PageHistory)
	if err := json.Unmarshal(data, &histories); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return histories, nil
}

// LoadTools reads the persisted tool catalog.
func LoadTools(path string) ([]models.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tools []models.Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return tools, nil
}
