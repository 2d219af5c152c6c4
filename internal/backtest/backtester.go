package backtest

import (
	"errors"
	"fmt"

	"PolicyTone/internal/dataset"
	"PolicyTone/internal/domain/models"
	dservice "PolicyTone/internal/domain/service"
	"PolicyTone/internal/predictor"
	applogger "PolicyTone/pkg/logger"
)

// ErrInsufficientHistory reports too few labeled examples to begin a
// walk-forward run at the requested start index.
var ErrInsufficientHistory = errors.New("insufficient labeled history")

// State tracks the backtester lifecycle: Idle -> Loaded -> Running -> Reported.
type State string

const (
	StateIdle     State = "idle"
	StateLoaded   State = "loaded"
	StateRunning  State = "running"
	StateReported State = "reported"
)

// Backtester drives chronological walk-forward evaluation. At step i a
// fresh predictor is trained on examples [0, i) only and asked to
// predict example i; the model never observes example i or anything
// after it. Steps are strictly sequential: each training window depends
// on all prior outcomes being finalized.
type Backtester struct {
	builder      *dataset.Builder
	newPredictor func() dservice.RatePredictor
	startIndex   int
	chunkSize    int
	l            *applogger.Logger

	state    State
	examples []models.TrainingExample
	tones    map[string]float64
	records  []models.BacktestRecord
}

// Option configures a Backtester.
type Option func(*Backtester)

// WithChunkSize sets the chunked-accuracy window size (default 5).
func WithChunkSize(n int) Option {
	return func(b *Backtester) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}

// WithBuilder overrides the feature/label builder.
func WithBuilder(builder *dataset.Builder) Option {
	return func(b *Backtester) {
		if builder != nil {
			b.builder = builder
		}
	}
}

// WithLogger injects a structured logger for per-step progress.
func WithLogger(l *applogger.Logger) Option {
	return func(b *Backtester) { b.l = l }
}

// WithPredictorFactory overrides how per-step predictors are built.
// Each step still gets a fresh instance from the factory.
func WithPredictorFactory(f func() dservice.RatePredictor) Option {
	return func(b *Backtester) {
		if f != nil {
			b.newPredictor = f
		}
	}
}

// New creates an idle backtester that starts predicting at startIndex,
// i.e. the first startIndex labeled meetings are training-only.
func New(startIndex int, opts ...Option) (*Backtester, error) {
	if startIndex < 1 {
		return nil, fmt.Errorf("start index must be >= 1, got %d", startIndex)
	}
	b := &Backtester{
		builder:      dataset.NewBuilder(),
		newPredictor: func() dservice.RatePredictor { return predictor.New() },
		startIndex:   startIndex,
		chunkSize:    defaultChunkSize,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// State returns the current lifecycle state.
func (b *Backtester) State() State { return b.state }

// Load builds the ordered training examples from tone records and
// rate decisions. Fails with ErrInsufficientHistory when fewer than
// startIndex+1 labeled examples exist.
func (b *Backtester) Load(records []models.ToneRecord, decisions []models.RateDecision) error {
	if b.state != StateIdle {
		return fmt.Errorf("load: backtester is %s, want %s", b.state, StateIdle)
	}

	examples, err := b.builder.Build(records, decisions)
	if err != nil {
		return fmt.Errorf("build examples: %w", err)
	}
	if len(examples) < b.startIndex+1 {
		return fmt.Errorf("%w: %d labeled example(s), need at least %d", ErrInsufficientHistory, len(examples), b.startIndex+1)
	}

	tones := make(map[string]float64, len(records))
	for _, rec := range records {
		tones[rec.DocumentID] = rec.ToneIndex
	}

	b.examples = examples
	b.tones = tones
	b.state = StateLoaded
	return nil
}

// Run walks forward over the loaded examples. Each step constructs a
// fresh predictor: the re-fit-from-scratch design is what structurally
// enforces the no-lookahead invariant. A step whose training prefix is
// unusable (for example, only one class present) fails the run; a
// silent zero-accuracy result would be misleading.
func (b *Backtester) Run() error {
	if b.state != StateLoaded {
		return fmt.Errorf("run: backtester is %s, want %s", b.state, StateLoaded)
	}
	b.state = StateRunning

	b.records = make([]models.BacktestRecord, 0, len(b.examples)-b.startIndex)
	for i := b.startIndex; i < len(b.examples); i++ {
		target := b.examples[i]

		p := b.newPredictor()
		if err := p.Train(b.examples[:i]); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, target.DocumentID, err)
		}
		pred, err := p.Predict(target.Features)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, target.DocumentID, err)
		}

		rec := models.BacktestRecord{
			Date:       target.DocumentID,
			Actual:     target.Label,
			Predicted:  pred.PredictedAction,
			IsCorrect:  pred.PredictedAction == target.Label,
			Confidence: pred.Confidence,
			ToneIndex:  b.tones[target.DocumentID],
			Probs:      []float64{pred.ProbHike, pred.ProbHold, pred.ProbCut},
		}
		b.records = append(b.records, rec)

		if b.l != nil {
			b.l.Debug("backtest step",
				applogger.String("date", rec.Date),
				applogger.String("actual", string(rec.Actual)),
				applogger.String("predicted", string(rec.Predicted)),
				applogger.Bool("correct", rec.IsCorrect),
			)
		}
	}
	return nil
}

// Records returns the accumulated per-step records.
func (b *Backtester) Records() []models.BacktestRecord { return b.records }

// Report aggregates the completed run.
func (b *Backtester) Report() (models.BacktestReport, error) {
	if b.state != StateRunning {
		return models.BacktestReport{}, fmt.Errorf("report: backtester is %s, want %s", b.state, StateRunning)
	}
	b.state = StateReported
	return BuildReport(b.records, b.chunkSize), nil
}
