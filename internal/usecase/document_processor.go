package usecase

import (
	"context"
	"fmt"
	"time"

	"PolicyTone/internal/domain/models"
	drepo "PolicyTone/internal/domain/repository"
)

// DocumentProcessor routes scored tone records to the configured backend.
type DocumentProcessor struct {
	pub     drepo.Publisher
	store   drepo.Storage
	metrics drepo.Metrics
	backend string
}

// NewDocumentProcessor creates a new DocumentProcessor instance.
func NewDocumentProcessor(
	pub drepo.Publisher,
	store drepo.Storage,
	metrics drepo.Metrics,
	backend string,
) *DocumentProcessor {
	return &DocumentProcessor{
		pub:     pub,
		store:   store,
		metrics: metrics,
		backend: backend,
	}
}

// Process routes a single tone record to the configured backend.
func (p *DocumentProcessor) Process(ctx context.Context, rec *models.ToneRecord) error {
	if rec == nil {
		return fmt.Errorf("tone record is nil")
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.Publish(ctx, rec)
	case "clickhouse":
		err = p.store.Store(ctx, rec)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process")
		return fmt.Errorf("process tone record: %w", err)
	}

	p.metrics.RecordRecordSent(p.backend)
	p.metrics.RecordLatency("process", time.Since(start).Seconds())

	return nil
}

// ProcessBatch routes multiple tone records in a batch.
func (p *DocumentProcessor) ProcessBatch(ctx context.Context, recs []*models.ToneRecord) error {
	if len(recs) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, recs)
	case "clickhouse":
		err = p.store.StoreBatch(ctx, recs)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	for range recs {
		p.metrics.RecordRecordSent(p.backend)
	}
	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())

	return nil
}

// Storage exposes the backing store for callers that persist run results.
func (p *DocumentProcessor) Storage() drepo.Storage { return p.store }

// Backend reports the configured backend name.
func (p *DocumentProcessor) Backend() string { return p.backend }

// Close closes underlying resources if available.
func (p *DocumentProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
	if p.store != nil {
		_ = p.store.Close()
	}
}
