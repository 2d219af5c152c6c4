package dataset

import (
	"errors"
	"fmt"
	"sort"

	"PolicyTone/internal/domain/models"
	"PolicyTone/pkg/util"
)

// ErrDateParse reports a labeled document id that cannot be ordered
// chronologically. The build fails rather than dropping the example
// silently.
var ErrDateParse = errors.New("document id is not a parseable date")

// FeatureFunc derives a fixed-width numeric vector from a tone record.
// All records in one build must produce the same width.
type FeatureFunc func(models.ToneRecord) []float64

// ToneIndexFeature is the default single-feature vector: [tone_index].
func ToneIndexFeature(rec models.ToneRecord) []float64 {
	return []float64{rec.ToneIndex}
}

// Builder joins tone records with historical rate decisions into
// date-ordered training examples.
type Builder struct {
	features FeatureFunc
}

// NewBuilder returns a builder using the default tone-index feature.
func NewBuilder() *Builder {
	return &Builder{features: ToneIndexFeature}
}

// NewBuilderWithFeatures returns a builder with a custom feature vector.
// Widening the vector requires no downstream interface changes.
func NewBuilderWithFeatures(f FeatureFunc) *Builder {
	if f == nil {
		f = ToneIndexFeature
	}
	return &Builder{features: f}
}

// Build joins records with decisions on document id and returns examples
// sorted ascending by meeting date. Records without a matching decision
// are unlabeled and excluded. A labeled record whose document id cannot
// be parsed as a date fails the whole build with ErrDateParse.
func (b *Builder) Build(records []models.ToneRecord, decisions []models.RateDecision) ([]models.TrainingExample, error) {
	byID := make(map[string]models.RateDecision, len(decisions))
	for _, d := range decisions {
		byID[d.DocumentID] = d
	}

	examples := make([]models.TrainingExample, 0, len(records))
	for _, rec := range records {
		dec, labeled := byID[rec.DocumentID]
		if !labeled {
			continue
		}
		date, ok := util.ParseMeetingDate(rec.DocumentID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrDateParse, rec.DocumentID)
		}
		examples = append(examples, models.TrainingExample{
			DocumentID: rec.DocumentID,
			Date:       date,
			Features:   b.features(rec),
			Label:      dec.Action,
		})
	}

	sort.Slice(examples, func(i, j int) bool {
		if examples[i].Date.Equal(examples[j].Date) {
			return examples[i].DocumentID < examples[j].DocumentID
		}
		return examples[i].Date.Before(examples[j].Date)
	})
	return examples, nil
}
