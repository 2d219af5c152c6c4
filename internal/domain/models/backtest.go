package models

// BacktestRecord is the outcome of a single walk-forward step.
// Read-only after creation.
type BacktestRecord struct {
	Date       string     `json:"date"`
	Actual     RateAction `json:"actual"`
	Predicted  RateAction `json:"predicted"`
	IsCorrect  bool       `json:"is_correct"`
	Confidence float64    `json:"confidence"`
	ToneIndex  float64    `json:"tone_index"`
	Probs      []float64  `json:"probs"` // [hike, hold, cut]
}

// ChunkAccuracy summarizes one fixed-size contiguous window of records.
// The final chunk may be smaller than the configured size.
type ChunkAccuracy struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Size      int     `json:"size"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// BacktestReport aggregates a completed walk-forward run.
type BacktestReport struct {
	Total              int             `json:"total"`
	Correct            int             `json:"correct"`
	Accuracy           float64         `json:"accuracy"`
	CumulativeAccuracy []float64       `json:"cumulative_accuracy"`
	Chunks             []ChunkAccuracy `json:"chunks"`
	Records            []BacktestRecord `json:"records"`
}
