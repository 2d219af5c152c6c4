package repository

import (
	"context"
	"time"

	"PolicyTone/internal/domain/models"
)

type Publisher interface {
	Publish(ctx context.Context, rec *models.ToneRecord) error
	PublishBatch(ctx context.Context, recs []*models.ToneRecord) error
	Close() error
}

type Storage interface {
	Init(ctx context.Context) error // ensure tables exist
	Store(ctx context.Context, rec *models.ToneRecord) error
	StoreBatch(ctx context.Context, recs []*models.ToneRecord) error
	Query(ctx context.Context, from, to time.Time, limit int) ([]*models.ToneRecord, error)
	StoreBacktest(ctx context.Context, runID string, recs []models.BacktestRecord) error
	Health(ctx context.Context) error // ping
	Close() error
}

type Metrics interface {
	RecordDocumentAnalyzed(source string)
	RecordRecordSent(backend string)
	RecordError(kind string)
	RecordToneIndex(documentID string, tone float64)
	RecordBacktestAccuracy(accuracy float64)
	RecordLatency(op string, seconds float64)
}
