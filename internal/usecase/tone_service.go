package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PolicyTone/internal/backtest"
	"PolicyTone/internal/domain/models"
	drepo "PolicyTone/internal/domain/repository"
	dservice "PolicyTone/internal/domain/service"
	"PolicyTone/internal/lexicon"
	"PolicyTone/pkg/cache"
	applogger "PolicyTone/pkg/logger"
)

// ErrDocumentNotFound reports a document id absent from the corpus.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore supplies the transcript corpus in chronological order.
type DocumentStore interface {
	Load() (map[string]string, []string, error)
}

// ToneService scores documents, evaluates walk-forward accuracy, and
// routes results through the configured backend.
type ToneService struct {
	analyzer   dservice.ToneScorer
	lex        *lexicon.Lexicon
	docs       DocumentStore
	history    []models.RateDecision
	proc       *DocumentProcessor
	cache      cache.Service
	metrics    drepo.Metrics
	cacheTTL   time.Duration
	startIndex int
	chunkSize  int
	l          *applogger.Logger
}

// NewToneService creates a new ToneService instance.
func NewToneService(
	analyzer dservice.ToneScorer,
	lex *lexicon.Lexicon,
	docs DocumentStore,
	history []models.RateDecision,
	proc *DocumentProcessor,
	cacheSvc cache.Service,
	metrics drepo.Metrics,
	cacheTTL time.Duration,
	startIndex int,
	chunkSize int,
	l *applogger.Logger,
) *ToneService {
	return &ToneService{
		analyzer:   analyzer,
		lex:        lex,
		docs:       docs,
		history:    history,
		proc:       proc,
		cache:      cacheSvc,
		metrics:    metrics,
		cacheTTL:   cacheTTL,
		startIndex: startIndex,
		chunkSize:  chunkSize,
		l:          l,
	}
}

// Analyze scores one document. When text is empty the transcript is
// looked up in the corpus and the result is memoized per document id;
// caller-supplied text always computes fresh.
func (s *ToneService) Analyze(ctx context.Context, documentID, text string) (models.ToneRecord, error) {
	key := "tone:" + documentID

	fromCorpus := text == ""
	if fromCorpus {
		var cached models.ToneRecord
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}

		docs, _, err := s.docs.Load()
		if err != nil {
			return models.ToneRecord{}, fmt.Errorf("load corpus: %w", err)
		}
		var ok bool
		text, ok = docs[documentID]
		if !ok {
			return models.ToneRecord{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, documentID)
		}
	}

	rec := s.analyzer.Analyze(documentID, text)
	s.metrics.RecordDocumentAnalyzed("api")
	s.metrics.RecordToneIndex(documentID, rec.ToneIndex)

	if err := s.proc.Process(ctx, &rec); err != nil {
		return models.ToneRecord{}, err
	}

	if fromCorpus {
		if err := s.cache.Set(ctx, key, rec, s.cacheTTL); err != nil && s.l != nil {
			s.l.Warn("cache set failed", applogger.String("key", key), applogger.Error(err))
		}
	}
	return rec, nil
}

// Backtest scores the whole corpus, runs a walk-forward evaluation
// against the rate-decision table, and delivers the scored records to
// the backend. startIndex and chunkSize fall back to the service
// defaults when zero.
func (s *ToneService) Backtest(ctx context.Context, startIndex, chunkSize int) (models.BacktestReport, error) {
	if startIndex <= 0 {
		startIndex = s.startIndex
	}
	if chunkSize <= 0 {
		chunkSize = s.chunkSize
	}

	start := time.Now()
	docs, order, err := s.docs.Load()
	if err != nil {
		return models.BacktestReport{}, fmt.Errorf("load corpus: %w", err)
	}
	records := s.analyzer.AnalyzeAll(docs, order)
	for range records {
		s.metrics.RecordDocumentAnalyzed("corpus")
	}

	bt, err := backtest.New(startIndex, backtest.WithChunkSize(chunkSize), backtest.WithLogger(s.l))
	if err != nil {
		return models.BacktestReport{}, err
	}
	if err := bt.Load(records, s.history); err != nil {
		return models.BacktestReport{}, err
	}
	if err := bt.Run(); err != nil {
		return models.BacktestReport{}, err
	}
	report, err := bt.Report()
	if err != nil {
		return models.BacktestReport{}, err
	}

	s.metrics.RecordBacktestAccuracy(report.Accuracy)
	s.metrics.RecordLatency("backtest", time.Since(start).Seconds())

	// Delivery is best-effort: the report stands on its own even when
	// the backend is unavailable.
	batch := make([]*models.ToneRecord, len(records))
	for i := range records {
		batch[i] = &records[i]
	}
	if err := s.proc.ProcessBatch(ctx, batch); err != nil && s.l != nil {
		s.l.Warn("tone record delivery failed", applogger.Error(err))
	}
	if s.proc.Backend() == "clickhouse" && s.proc.Storage() != nil {
		runID := start.UTC().Format("20060102T150405Z")
		if err := s.proc.Storage().StoreBacktest(ctx, runID, report.Records); err != nil && s.l != nil {
			s.l.Warn("backtest persistence failed", applogger.String("run_id", runID), applogger.Error(err))
		}
	}

	return report, nil
}

// LexiconStats summarizes the active lexicon, optionally filtered to
// one polarity.
func (s *ToneService) LexiconStats(polarity string) lexicon.Stats {
	stats := s.lex.Statistics()
	switch polarity {
	case "hawkish":
		stats.TotalDovish = 0
		stats.DovishByCategory = map[string][]string{}
	case "dovish":
		stats.TotalHawkish = 0
		stats.HawkishByCategory = map[string][]string{}
	}
	return stats
}
