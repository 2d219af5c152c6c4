package service

import (
	"context"

	"PolicyTone/internal/domain/models"
)

// ToneScorer scores documents against the hawkish/dovish lexicon.
type ToneScorer interface {
	Analyze(documentID, text string) models.ToneRecord
	AnalyzeAll(docs map[string]string, order []string) []models.ToneRecord
}

// RatePredictor classifies the upcoming rate action from feature vectors.
type RatePredictor interface {
	Train(examples []models.TrainingExample) error
	Predict(features []float64) (models.PredictionResult, error)
	Trained() bool
}

// MinutesSource lists and downloads central-bank meeting minutes.
type MinutesSource interface {
	ListMinutes(ctx context.Context, years []int) ([]models.MinutesRef, error)
	DownloadPDF(ctx context.Context, ref models.MinutesRef, destPath string) error
}

// TextExtractor recovers plain text from a downloaded PDF.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}
