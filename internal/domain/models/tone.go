package models

import "time"

// Polarity classifies a lexicon term as tightening- or easing-leaning.
type Polarity string

const (
	Hawkish Polarity = "hawkish"
	Dovish  Polarity = "dovish"
)

// RateAction is a policy-rate decision outcome.
type RateAction string

const (
	ActionHike RateAction = "hike"
	ActionHold RateAction = "hold"
	ActionCut  RateAction = "cut"
)

// LexiconEntry is a single dictionary term. Immutable once constructed.
type LexiconEntry struct {
	Term        string   `json:"term"`
	Polarity    Polarity `json:"polarity"`
	Weight      float64  `json:"weight"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
}

// TermMatch is one matched lexicon term with its accumulated contribution
// (weight times occurrence count) in a document.
type TermMatch struct {
	Term         string   `json:"term"`
	Polarity     Polarity `json:"polarity"`
	Contribution float64  `json:"contribution"`
}

// ToneRecord is the scored tone of one meeting document.
// ToneIndex is (hawkish - dovish) / (hawkish + dovish), in [-1, 1],
// or 0 when no terms matched. MatchedTerms may be empty, never absent.
type ToneRecord struct {
	DocumentID   string      `json:"document_id"`
	ToneIndex    float64     `json:"tone_index"`
	HawkishScore float64     `json:"hawkish_score"`
	DovishScore  float64     `json:"dovish_score"`
	MatchedTerms []TermMatch `json:"matched_terms"`
}

// RateDecision is a ground-truth historical rate outcome keyed by the
// meeting document id. Reference data, never inferred.
type RateDecision struct {
	DocumentID string     `json:"document_id"`
	RateLevel  float64    `json:"rate_level"`
	Action     RateAction `json:"action"`
}

// TrainingExample joins a tone record with its labeled decision.
// Features is a fixed-width numeric vector, currently [tone_index].
type TrainingExample struct {
	DocumentID string
	Date       time.Time
	Features   []float64
	Label      RateAction
}

// PredictionResult holds class probabilities for one predict call.
// Probabilities sum to 1; Confidence is the max class probability.
type PredictionResult struct {
	PredictedAction RateAction `json:"predicted_action"`
	Confidence      float64    `json:"confidence"`
	ProbHike        float64    `json:"prob_hike"`
	ProbHold        float64    `json:"prob_hold"`
	ProbCut         float64    `json:"prob_cut"`
}
