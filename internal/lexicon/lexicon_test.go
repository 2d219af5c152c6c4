package lexicon

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"PolicyTone/internal/domain/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestAddTermRejectsInvalid(t *testing.T) {
	l := New()
	if err := l.AddTerm("", models.Hawkish, 1.0, "", ""); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for empty term, got %v", err)
	}
	if err := l.AddTerm("  ", models.Hawkish, 1.0, "", ""); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for blank term, got %v", err)
	}
	if err := l.AddTerm("金利", models.Hawkish, 0, "", ""); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for zero weight, got %v", err)
	}
	if err := l.AddTerm("金利", models.Polarity("neutral"), 1.0, "", ""); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected ErrInvalidEntry for unknown polarity, got %v", err)
	}
}

func TestAddTermMovesBetweenPolarities(t *testing.T) {
	l := New()
	if err := l.AddTerm("긴축", models.Hawkish, 2.0, "policy", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := l.AddTerm("긴축", models.Dovish, 1.0, "policy", ""); err != nil {
		t.Fatalf("move: %v", err)
	}

	h, d := l.Len()
	if h != 0 || d != 1 {
		t.Fatalf("expected term in dovish only, got hawkish=%d dovish=%d", h, d)
	}
	e, ok := l.Entry("긴축")
	if !ok || e.Polarity != models.Dovish || e.Weight != 1.0 {
		t.Fatalf("unexpected entry %+v ok=%v", e, ok)
	}
}

func TestMatchCountsOccurrences(t *testing.T) {
	l := New()
	if err := l.AddTerm("인상", models.Hawkish, 1.5, "policy", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := l.AddTerm("인하", models.Dovish, 1.5, "policy", ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	m := l.Match("기준금리 인상 그리고 추가 인상 논의, 인하 언급 없음")
	if len(m.Hawkish) != 1 || len(m.Dovish) != 1 {
		t.Fatalf("unexpected match counts: %d hawkish, %d dovish", len(m.Hawkish), len(m.Dovish))
	}
	if got := m.Hawkish[0].Contribution; math.Abs(got-3.0) > 1e-12 {
		t.Fatalf("expected contribution 3.0 (1.5 x 2), got %g", got)
	}
	if got := m.Dovish[0].Contribution; math.Abs(got-1.5) > 1e-12 {
		t.Fatalf("expected contribution 1.5, got %g", got)
	}
}

func TestMatchEmptyText(t *testing.T) {
	l := Default()
	m := l.Match("")
	if len(m.Hawkish) != 0 || len(m.Dovish) != 0 {
		t.Fatalf("expected no matches on empty text")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")

	src := New()
	if err := src.AddTerm("물가상승", models.Hawkish, 1.8, "inflation", "price rise"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := src.AddTerm("불확실성", models.Dovish, 1.5, "risk", "uncertainty"); err != nil {
		t.Fatalf("add: %v", err)
	}
	src.AddNgram(models.Hawkish, "물가", "상승")
	if err := src.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	dst := New()
	if err := dst.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	h, d := dst.Len()
	if h != 1 || d != 1 {
		t.Fatalf("unexpected sizes after load: hawkish=%d dovish=%d", h, d)
	}
	e, ok := dst.Entry("물가상승")
	if !ok || e.Weight != 1.8 || e.Category != "inflation" {
		t.Fatalf("unexpected entry %+v ok=%v", e, ok)
	}
	if n := dst.Ngrams(models.Hawkish); len(n) != 1 || n[0][0] != "물가" {
		t.Fatalf("unexpected ngrams %v", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := New()
	err := l.Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadKeepsReceiverOnBadSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	writeFile(t, path, `{"hawkish":[{"term":"","weight":1}]}`)

	l := New()
	if err := l.AddTerm("긴축", models.Hawkish, 2.0, "policy", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := l.Load(path); err == nil {
		t.Fatalf("expected load failure")
	}

	// the previous entry set survives a failed load
	if _, ok := l.Entry("긴축"); !ok {
		t.Fatalf("existing entries were lost")
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	l, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, d := l.Len()
	if h == 0 || d == 0 {
		t.Fatalf("default lexicon is empty: hawkish=%d dovish=%d", h, d)
	}
	if e, ok := l.Entry("물가상승"); !ok || e.Weight != 1.8 {
		t.Fatalf("expected built-in 물가상승 with weight 1.8, got %+v ok=%v", e, ok)
	}
	if e, ok := l.Entry("불확실성"); !ok || e.Weight != 1.5 {
		t.Fatalf("expected built-in 불확실성 with weight 1.5, got %+v ok=%v", e, ok)
	}
}
