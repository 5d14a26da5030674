package store

import (
	"encoding/json"
	"fmt"

	"dira-storefront/models"
)

func encode(snapshot *models.OrderSnapshot) ([]byte, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot failed: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*models.OrderSnapshot, error) {
	var snapshot models.OrderSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return &snapshot, nil
}
