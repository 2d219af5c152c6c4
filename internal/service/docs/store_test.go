package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrdersAndFilters(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"2023-01-13.txt": "물가상승 압력",
		"2021-11-25.txt": "기준금리 인상",
		"2022-05-26.txt": "경기둔화 우려",
		"readme.txt":     "not a transcript",
		"2022-05-26.pdf": "%PDF",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "2024-01-11.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	docs, order, err := NewFileStore(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"2021-11-25", "2022-05-26", "2023-01-13"}
	if len(order) != len(want) {
		t.Fatalf("expected %d documents, got %d: %v", len(want), len(order), order)
	}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("position %d: got %s, want %s", i, order[i], id)
		}
	}
	if docs["2021-11-25"] != "기준금리 인상" {
		t.Fatalf("unexpected transcript body: %q", docs["2021-11-25"])
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, _, err := NewFileStore(filepath.Join(t.TempDir(), "absent")).Load()
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "texts")
	store := NewFileStore(dir)

	if err := store.Save("2024-10-11", "금리인하 결정"); err != nil {
		t.Fatalf("save: %v", err)
	}

	docs, order, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(order) != 1 || order[0] != "2024-10-11" {
		t.Fatalf("unexpected order %v", order)
	}
	if docs["2024-10-11"] != "금리인하 결정" {
		t.Fatalf("unexpected body %q", docs["2024-10-11"])
	}
}
