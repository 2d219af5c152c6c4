package tone

import (
	"math"
	"testing"

	"PolicyTone/internal/domain/models"
	"PolicyTone/internal/lexicon"
)

func TestAnalyzeTermFreeText(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())
	rec := a.Analyze("2024-01-11", "the quick brown fox")
	if rec.ToneIndex != 0 {
		t.Fatalf("expected zero tone, got %g", rec.ToneIndex)
	}
	if rec.MatchedTerms == nil || len(rec.MatchedTerms) != 0 {
		t.Fatalf("expected empty (non-nil) matched terms, got %v", rec.MatchedTerms)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())
	rec := a.Analyze("2024-01-11", "")
	if rec.ToneIndex != 0 || rec.HawkishScore != 0 || rec.DovishScore != 0 {
		t.Fatalf("expected zero record, got %+v", rec)
	}
}

func TestAnalyzeMixedTone(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())
	// 물가상승 weighs 1.8 hawkish, 동결 weighs 1.2 dovish:
	// tone = (1.8 - 1.2) / 3.0
	rec := a.Analyze("2022-07-13", "물가상승 고려한 동결")
	want := (1.8 - 1.2) / (1.8 + 1.2)
	if math.Abs(rec.ToneIndex-want) > 1e-12 {
		t.Fatalf("tone = %g, want %g", rec.ToneIndex, want)
	}
	if rec.HawkishScore < rec.DovishScore {
		t.Fatalf("expected hawkish score above dovish: %+v", rec)
	}
}

func TestAnalyzeTwoTermLexicon(t *testing.T) {
	lex := lexicon.New()
	if err := lex.AddTerm("물가상승", models.Hawkish, 1.8, "inflation", ""); err != nil {
		t.Fatalf("add term: %v", err)
	}
	if err := lex.AddTerm("불확실성", models.Dovish, 1.5, "uncertainty", ""); err != nil {
		t.Fatalf("add term: %v", err)
	}

	a := NewAnalyzer(lex)
	rec := a.Analyze("2022-07-13", "물가상승 압력이 크나 불확실성 또한 높다")
	want := (1.8 - 1.5) / (1.8 + 1.5) // 0.0909...
	if math.Abs(rec.ToneIndex-want) > 1e-12 {
		t.Fatalf("tone = %g, want %g", rec.ToneIndex, want)
	}
	if rec.HawkishScore != 1.8 || rec.DovishScore != 1.5 {
		t.Fatalf("scores = %g/%g, want 1.8/1.5", rec.HawkishScore, rec.DovishScore)
	}
}

func TestAnalyzeBounds(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())
	onesided := a.Analyze("x", "금리인상 금리인상 물가상승")
	if onesided.ToneIndex != 1 {
		t.Fatalf("purely hawkish text should score 1, got %g", onesided.ToneIndex)
	}
	dovish := a.Analyze("y", "금리인하 경기둔화")
	if dovish.ToneIndex != -1 {
		t.Fatalf("purely dovish text should score -1, got %g", dovish.ToneIndex)
	}
}

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())
	docs := map[string]string{
		"2024-01-11": "물가상승",
		"2024-02-22": "불확실성",
	}
	recs := a.AnalyzeAll(docs, []string{"2024-01-11", "2024-02-22"})
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].DocumentID != "2024-01-11" || recs[1].DocumentID != "2024-02-22" {
		t.Fatalf("order not preserved: %s, %s", recs[0].DocumentID, recs[1].DocumentID)
	}
	if recs[0].ToneIndex <= 0 || recs[1].ToneIndex >= 0 {
		t.Fatalf("unexpected tones: %g, %g", recs[0].ToneIndex, recs[1].ToneIndex)
	}
}
