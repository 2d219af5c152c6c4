package ratehistory

import (
	"os"
	"path/filepath"
	"testing"

	"PolicyTone/internal/domain/models"
)

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	if len(a) == 0 {
		t.Fatalf("built-in decision table is empty")
	}
	original := defaultHistory[0].Action
	a[0].Action = models.ActionCut

	if defaultHistory[0].Action != original {
		t.Fatalf("built-in table was mutated")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	body := `[
		{"document_id":"2024-10-11","rate_level":3.25,"action":"cut"},
		{"document_id":"2024-11-28","rate_level":3.00,"action":"cut"}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	decisions, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(decisions) != 2 || decisions[0].Action != models.ActionCut {
		t.Fatalf("unexpected decisions %+v", decisions)
	}
}

func TestLoadRejectsUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	body := `[{"document_id":"2024-10-11","rate_level":3.25,"action":"pause"}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected unknown action error")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	decisions, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(decisions) != len(defaultHistory) {
		t.Fatalf("expected the built-in table, got %d rows", len(decisions))
	}
}
