package ratehistory

import (
	"encoding/json"
	"fmt"
	"os"

	"PolicyTone/internal/domain/models"
)

// Built-in Bank of Korea base-rate decision table, keyed by meeting date.
// Ground-truth reference data: the system labels meetings from this
// table and never infers an action. Versioned alongside the code so a
// tone-index change and a label change never ship separately.
var defaultHistory = []models.RateDecision{
	{DocumentID: "2021-08-26", RateLevel: 0.75, Action: models.ActionHike},
	{DocumentID: "2021-10-12", RateLevel: 0.75, Action: models.ActionHold},
	{DocumentID: "2021-11-25", RateLevel: 1.00, Action: models.ActionHike},
	{DocumentID: "2022-01-14", RateLevel: 1.25, Action: models.ActionHike},
	{DocumentID: "2022-02-24", RateLevel: 1.25, Action: models.ActionHold},
	{DocumentID: "2022-04-14", RateLevel: 1.50, Action: models.ActionHike},
	{DocumentID: "2022-05-26", RateLevel: 1.75, Action: models.ActionHike},
	{DocumentID: "2022-07-13", RateLevel: 2.25, Action: models.ActionHike},
	{DocumentID: "2022-08-25", RateLevel: 2.50, Action: models.ActionHike},
	{DocumentID: "2022-10-12", RateLevel: 3.00, Action: models.ActionHike},
	{DocumentID: "2022-11-24", RateLevel: 3.25, Action: models.ActionHike},
	{DocumentID: "2023-01-13", RateLevel: 3.50, Action: models.ActionHike},
	{DocumentID: "2023-02-23", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-04-11", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-05-25", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-07-13", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-08-24", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-10-19", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2023-11-30", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-01-11", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-02-22", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-04-12", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-05-23", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-07-11", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-08-22", RateLevel: 3.50, Action: models.ActionHold},
	{DocumentID: "2024-10-11", RateLevel: 3.25, Action: models.ActionCut},
	{DocumentID: "2024-11-28", RateLevel: 3.00, Action: models.ActionCut},
	{DocumentID: "2025-01-16", RateLevel: 3.00, Action: models.ActionHold},
	{DocumentID: "2025-02-25", RateLevel: 2.75, Action: models.ActionCut},
	{DocumentID: "2025-04-17", RateLevel: 2.75, Action: models.ActionHold},
	{DocumentID: "2025-05-29", RateLevel: 2.50, Action: models.ActionCut},
	{DocumentID: "2025-07-10", RateLevel: 2.50, Action: models.ActionHold},
	{DocumentID: "2025-08-28", RateLevel: 2.50, Action: models.ActionHold},
}

// Default returns a copy of the built-in decision table.
func Default() []models.RateDecision {
	out := make([]models.RateDecision, len(defaultHistory))
	copy(out, defaultHistory)
	return out
}

// Load reads a decision table override from a JSON array file.
func Load(path string) ([]models.RateDecision, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate history: %w", err)
	}
	var decisions []models.RateDecision
	if err := json.Unmarshal(b, &decisions); err != nil {
		return nil, fmt.Errorf("parse rate history: %w", err)
	}
	for _, d := range decisions {
		switch d.Action {
		case models.ActionHike, models.ActionHold, models.ActionCut:
		default:
			return nil, fmt.Errorf("rate history %s: unknown action %q", d.DocumentID, d.Action)
		}
	}
	return decisions, nil
}

// LoadOrDefault loads an override table when path is set and present,
// otherwise returns the built-in table.
func LoadOrDefault(path string) ([]models.RateDecision, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
