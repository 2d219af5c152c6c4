package dataset

import (
	"errors"
	"testing"

	"PolicyTone/internal/domain/models"
)

func rec(id string, tone float64) models.ToneRecord {
	return models.ToneRecord{DocumentID: id, ToneIndex: tone}
}

func dec(id string, action models.RateAction) models.RateDecision {
	return models.RateDecision{DocumentID: id, Action: action}
}

func TestBuildOrdersByDate(t *testing.T) {
	records := []models.ToneRecord{
		rec("2023-01-13", 0.4),
		rec("2021-11-25", 0.2),
		rec("2022-05-26", 0.3),
	}
	decisions := []models.RateDecision{
		dec("2023-01-13", models.ActionHike),
		dec("2021-11-25", models.ActionHike),
		dec("2022-05-26", models.ActionHike),
	}

	examples, err := NewBuilder().Build(records, decisions)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(examples) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(examples))
	}
	want := []string{"2021-11-25", "2022-05-26", "2023-01-13"}
	for i, id := range want {
		if examples[i].DocumentID != id {
			t.Fatalf("position %d: got %s, want %s", i, examples[i].DocumentID, id)
		}
	}
}

func TestBuildDropsUnlabeled(t *testing.T) {
	records := []models.ToneRecord{
		rec("2024-01-11", 0.1),
		rec("2024-02-22", -0.2),
	}
	decisions := []models.RateDecision{dec("2024-01-11", models.ActionHold)}

	examples, err := NewBuilder().Build(records, decisions)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(examples) != 1 || examples[0].DocumentID != "2024-01-11" {
		t.Fatalf("expected only the labeled record, got %+v", examples)
	}
}

func TestBuildFailsOnUnparseableLabeledID(t *testing.T) {
	records := []models.ToneRecord{rec("meeting-42", 0.1)}
	decisions := []models.RateDecision{dec("meeting-42", models.ActionHold)}

	_, err := NewBuilder().Build(records, decisions)
	if !errors.Is(err, ErrDateParse) {
		t.Fatalf("expected ErrDateParse, got %v", err)
	}
}

func TestBuildUnparseableUnlabeledIsDropped(t *testing.T) {
	records := []models.ToneRecord{
		rec("meeting-42", 0.1),
		rec("2024-01-11", 0.2),
	}
	decisions := []models.RateDecision{dec("2024-01-11", models.ActionHold)}

	examples, err := NewBuilder().Build(records, decisions)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(examples))
	}
}

func TestBuildDefaultFeature(t *testing.T) {
	records := []models.ToneRecord{rec("2024-01-11", 0.25)}
	decisions := []models.RateDecision{dec("2024-01-11", models.ActionHold)}

	examples, err := NewBuilder().Build(records, decisions)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(examples[0].Features) != 1 || examples[0].Features[0] != 0.25 {
		t.Fatalf("unexpected features %v", examples[0].Features)
	}
}

func TestBuildCustomFeatures(t *testing.T) {
	f := func(r models.ToneRecord) []float64 {
		return []float64{r.ToneIndex, r.HawkishScore, r.DovishScore}
	}
	records := []models.ToneRecord{{DocumentID: "2024-01-11", ToneIndex: 0.5, HawkishScore: 3, DovishScore: 1}}
	decisions := []models.RateDecision{dec("2024-01-11", models.ActionHike)}

	examples, err := NewBuilderWithFeatures(f).Build(records, decisions)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(examples[0].Features) != 3 || examples[0].Features[1] != 3 {
		t.Fatalf("unexpected features %v", examples[0].Features)
	}
}
