package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"PolicyTone/internal/domain/models"
)

var (
	// ErrInvalidEntry reports a malformed entry (empty term, non-positive weight).
	ErrInvalidEntry = errors.New("invalid lexicon entry")
	// ErrNotFound reports a missing snapshot file.
	ErrNotFound = errors.New("lexicon snapshot not found")
)

// Matches groups matched terms by polarity, in lexicon insertion order.
type Matches struct {
	Hawkish []models.TermMatch
	Dovish  []models.TermMatch
}

// Lexicon maps terms to weighted hawkish/dovish entries. A term lives in
// at most one polarity map. Read-only during an analysis run; extend it
// before handing it to an analyzer.
//
// Matching is plain substring containment with non-overlapping occurrence
// counts. A short term matching inside a longer lexicon term is counted
// for both entries; this multi-granularity accumulation is intentional
// and part of the scoring contract, not a bug.
type Lexicon struct {
	hawkish map[string]models.LexiconEntry
	dovish  map[string]models.LexiconEntry
	order   []string // insertion order across both polarities

	hawkishNgrams [][]string
	dovishNgrams  [][]string
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		hawkish: make(map[string]models.LexiconEntry),
		dovish:  make(map[string]models.LexiconEntry),
	}
}

// AddTerm inserts or overwrites an entry. Moving a term between
// polarities removes it from the other map so the disjointness
// invariant holds.
func (l *Lexicon) AddTerm(term string, polarity models.Polarity, weight float64, category, description string) error {
	if strings.TrimSpace(term) == "" {
		return fmt.Errorf("%w: empty term", ErrInvalidEntry)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g (term %q)", ErrInvalidEntry, weight, term)
	}
	if polarity != models.Hawkish && polarity != models.Dovish {
		return fmt.Errorf("%w: unknown polarity %q (term %q)", ErrInvalidEntry, polarity, term)
	}

	entry := models.LexiconEntry{
		Term:        term,
		Polarity:    polarity,
		Weight:      weight,
		Category:    category,
		Description: description,
	}

	_, knownHawkish := l.hawkish[term]
	_, knownDovish := l.dovish[term]
	if !knownHawkish && !knownDovish {
		l.order = append(l.order, term)
	}

	switch polarity {
	case models.Hawkish:
		delete(l.dovish, term)
		l.hawkish[term] = entry
	case models.Dovish:
		delete(l.hawkish, term)
		l.dovish[term] = entry
	}
	return nil
}

// AddNgram appends a multi-token pattern for the polarity. Patterns keep
// their registration order.
func (l *Lexicon) AddNgram(polarity models.Polarity, tokens ...string) {
	if len(tokens) < 2 {
		return
	}
	pattern := make([]string, len(tokens))
	copy(pattern, tokens)
	switch polarity {
	case models.Hawkish:
		l.hawkishNgrams = append(l.hawkishNgrams, pattern)
	case models.Dovish:
		l.dovishNgrams = append(l.dovishNgrams, pattern)
	}
}

// Ngrams returns the ordered pattern list for the polarity.
func (l *Lexicon) Ngrams(polarity models.Polarity) [][]string {
	if polarity == models.Hawkish {
		return l.hawkishNgrams
	}
	return l.dovishNgrams
}

// Entry looks up a term in either polarity map.
func (l *Lexicon) Entry(term string) (models.LexiconEntry, bool) {
	if e, ok := l.hawkish[term]; ok {
		return e, true
	}
	if e, ok := l.dovish[term]; ok {
		return e, true
	}
	return models.LexiconEntry{}, false
}

// Len returns (hawkish, dovish) entry counts.
func (l *Lexicon) Len() (int, int) {
	return len(l.hawkish), len(l.dovish)
}

// Match scans text for every lexicon term. Contribution is
// weight x occurrence count; results follow lexicon insertion order,
// not match position. Text without any term yields empty slices.
func (l *Lexicon) Match(text string) Matches {
	var m Matches
	if text == "" {
		return m
	}
	for _, term := range l.order {
		count := strings.Count(text, term)
		if count == 0 {
			continue
		}
		if e, ok := l.hawkish[term]; ok {
			m.Hawkish = append(m.Hawkish, models.TermMatch{
				Term:         term,
				Polarity:     models.Hawkish,
				Contribution: e.Weight * float64(count),
			})
			continue
		}
		if e, ok := l.dovish[term]; ok {
			m.Dovish = append(m.Dovish, models.TermMatch{
				Term:         term,
				Polarity:     models.Dovish,
				Contribution: e.Weight * float64(count),
			})
		}
	}
	return m
}

// Stats reports term counts grouped by category for each polarity.
type Stats struct {
	TotalHawkish      int                 `json:"total_hawkish"`
	TotalDovish       int                 `json:"total_dovish"`
	HawkishByCategory map[string][]string `json:"hawkish_by_category"`
	DovishByCategory  map[string][]string `json:"dovish_by_category"`
}

// Statistics summarizes the current entry sets.
func (l *Lexicon) Statistics() Stats {
	s := Stats{
		TotalHawkish:      len(l.hawkish),
		TotalDovish:       len(l.dovish),
		HawkishByCategory: make(map[string][]string),
		DovishByCategory:  make(map[string][]string),
	}
	for _, term := range l.order {
		if e, ok := l.hawkish[term]; ok {
			cat := e.Category
			if cat == "" {
				cat = "uncategorized"
			}
			s.HawkishByCategory[cat] = append(s.HawkishByCategory[cat], term)
		} else if e, ok := l.dovish[term]; ok {
			cat := e.Category
			if cat == "" {
				cat = "uncategorized"
			}
			s.DovishByCategory[cat] = append(s.DovishByCategory[cat], term)
		}
	}
	return s
}

// snapshot is the JSON layout of a persisted lexicon.
type snapshot struct {
	Hawkish       []models.LexiconEntry `json:"hawkish"`
	Dovish        []models.LexiconEntry `json:"dovish"`
	HawkishNgrams [][]string            `json:"hawkish_ngrams,omitempty"`
	DovishNgrams  [][]string            `json:"dovish_ngrams,omitempty"`
}

// Save writes the full entry set to path as a JSON snapshot.
func (l *Lexicon) Save(path string) error {
	snap := snapshot{
		Hawkish:       make([]models.LexiconEntry, 0, len(l.hawkish)),
		Dovish:        make([]models.LexiconEntry, 0, len(l.dovish)),
		HawkishNgrams: l.hawkishNgrams,
		DovishNgrams:  l.dovishNgrams,
	}
	for _, term := range l.order {
		if e, ok := l.hawkish[term]; ok {
			snap.Hawkish = append(snap.Hawkish, e)
		} else if e, ok := l.dovish[term]; ok {
			snap.Dovish = append(snap.Dovish, e)
		}
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lexicon: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write lexicon: %w", err)
	}
	return nil
}

// Load replaces the entry sets from a snapshot at path. The swap is
// atomic: a malformed snapshot leaves the receiver unchanged.
func (l *Lexicon) Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("read lexicon: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return fmt.Errorf("parse lexicon: %w", err)
	}

	fresh := New()
	for _, e := range snap.Hawkish {
		if err := fresh.AddTerm(e.Term, models.Hawkish, e.Weight, e.Category, e.Description); err != nil {
			return fmt.Errorf("snapshot entry %q: %w", e.Term, err)
		}
	}
	for _, e := range snap.Dovish {
		if err := fresh.AddTerm(e.Term, models.Dovish, e.Weight, e.Category, e.Description); err != nil {
			return fmt.Errorf("snapshot entry %q: %w", e.Term, err)
		}
	}
	for _, p := range snap.HawkishNgrams {
		fresh.AddNgram(models.Hawkish, p...)
	}
	for _, p := range snap.DovishNgrams {
		fresh.AddNgram(models.Dovish, p...)
	}

	*l = *fresh
	return nil
}

// LoadOrDefault loads the snapshot at path, falling back to the built-in
// dictionary when the snapshot is absent.
func LoadOrDefault(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	l := New()
	err := l.Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
