// Package seed ships the sample advocate dataset served by `advocates serve`.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"advocates/internal/domain"
)

//go:embed advocates.json
var raw []byte

// Advocates decodes the embedded dataset
func Advocates() ([]domain.Advocate, error) {
	var envelope struct {
		Data []domain.Advocate `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode seed dataset: %w", err)
	}
	return envelope.Data, nil
}
