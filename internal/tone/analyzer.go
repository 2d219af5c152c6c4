package tone

import (
	"PolicyTone/internal/domain/models"
	"PolicyTone/internal/lexicon"
)

// Analyzer scores documents against a shared read-only lexicon.
// It holds no per-document state and is safe to reuse across a corpus.
type Analyzer struct {
	lex *lexicon.Lexicon
}

// NewAnalyzer wraps the given lexicon. The lexicon must not be mutated
// while the analyzer is in use.
func NewAnalyzer(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze scores one document and returns its tone record. It never
// fails: empty or term-free text is a valid degenerate input and yields
// a zero tone index with no matched terms.
//
// The tone index is (hawkish - dovish) / (hawkish + dovish). Normalizing
// by total matched weight makes scores comparable across documents of
// different length and keyword density.
func (a *Analyzer) Analyze(documentID, text string) models.ToneRecord {
	rec := models.ToneRecord{
		DocumentID:   documentID,
		MatchedTerms: []models.TermMatch{},
	}

	m := a.lex.Match(text)
	for _, tm := range m.Hawkish {
		rec.HawkishScore += tm.Contribution
		rec.MatchedTerms = append(rec.MatchedTerms, tm)
	}
	for _, tm := range m.Dovish {
		rec.DovishScore += tm.Contribution
		rec.MatchedTerms = append(rec.MatchedTerms, tm)
	}

	total := rec.HawkishScore + rec.DovishScore
	if total > 0 {
		rec.ToneIndex = (rec.HawkishScore - rec.DovishScore) / total
	}
	return rec
}

// AnalyzeAll scores a corpus in input order.
func (a *Analyzer) AnalyzeAll(docs map[string]string, order []string) []models.ToneRecord {
	out := make([]models.ToneRecord, 0, len(order))
	for _, id := range order {
		out = append(out, a.Analyze(id, docs[id]))
	}
	return out
}
