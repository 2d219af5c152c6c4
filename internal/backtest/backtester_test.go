package backtest

import (
	"errors"
	"testing"
	"time"

	"PolicyTone/internal/domain/models"
	dservice "PolicyTone/internal/domain/service"
)

// corpus builds n labeled meetings whose tone tracks the action:
// hike/hold/cut cycling with tones 0.8, 0.0, -0.8.
func corpus(n int) ([]models.ToneRecord, []models.RateDecision) {
	actions := []models.RateAction{models.ActionHike, models.ActionHold, models.ActionCut}
	tones := []float64{0.8, 0.0, -0.8}

	records := make([]models.ToneRecord, 0, n)
	decisions := make([]models.RateDecision, 0, n)
	for i := 0; i < n; i++ {
		id := time.Date(2021, time.Month(1+i), 15, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		records = append(records, models.ToneRecord{DocumentID: id, ToneIndex: tones[i%3]})
		decisions = append(decisions, models.RateDecision{DocumentID: id, Action: actions[i%3]})
	}
	return records, decisions
}

// holdAlways counts Train calls and predicts hold unconditionally.
type holdAlways struct {
	trains *int
}

func (s holdAlways) Train(examples []models.TrainingExample) error {
	*s.trains++
	return nil
}

func (s holdAlways) Predict(features []float64) (models.PredictionResult, error) {
	return models.PredictionResult{PredictedAction: models.ActionHold, Confidence: 1, ProbHold: 1}, nil
}

func (s holdAlways) Trained() bool { return true }

func TestPredictorFactory(t *testing.T) {
	trains := 0
	b, err := New(2, WithPredictorFactory(func() dservice.RatePredictor {
		return holdAlways{trains: &trains}
	}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	records, decisions := corpus(6)
	if err := b.Load(records, decisions); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	recs := b.Records()
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(recs))
	}
	if trains != 4 {
		t.Fatalf("expected one Train per step, got %d", trains)
	}
	for _, rec := range recs {
		if rec.Predicted != models.ActionHold {
			t.Fatalf("injected predictor ignored at %s: predicted %s", rec.Date, rec.Predicted)
		}
	}
}

func TestLifecycle(t *testing.T) {
	b, err := New(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if b.State() != StateIdle {
		t.Fatalf("expected idle, got %s", b.State())
	}
	if err := b.Run(); err == nil {
		t.Fatalf("run before load should fail")
	}

	records, decisions := corpus(10)
	if err := b.Load(records, decisions); err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.State() != StateLoaded {
		t.Fatalf("expected loaded, got %s", b.State())
	}
	if err := b.Load(records, decisions); err == nil {
		t.Fatalf("double load should fail")
	}

	if err := b.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if b.State() != StateRunning {
		t.Fatalf("expected running, got %s", b.State())
	}

	if _, err := b.Report(); err != nil {
		t.Fatalf("report: %v", err)
	}
	if b.State() != StateReported {
		t.Fatalf("expected reported, got %s", b.State())
	}
	if _, err := b.Report(); err == nil {
		t.Fatalf("double report should fail")
	}
}

func TestNewRejectsBadStartIndex(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatalf("start index 0 should fail")
	}
}

func TestLoadInsufficientHistory(t *testing.T) {
	b, err := New(10)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	records, decisions := corpus(10) // need 11 labeled for startIndex 10
	if err := b.Load(records, decisions); !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestRunPredictsEveryStep(t *testing.T) {
	b, err := New(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	records, decisions := corpus(15)
	if err := b.Load(records, decisions); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	recs := b.Records()
	if len(recs) != 12 {
		t.Fatalf("expected 12 prediction records, got %d", len(recs))
	}
	for _, rec := range recs {
		if len(rec.Probs) != 3 {
			t.Fatalf("record %s has %d probabilities", rec.Date, len(rec.Probs))
		}
		if rec.IsCorrect != (rec.Actual == rec.Predicted) {
			t.Fatalf("record %s has inconsistent correctness flag", rec.Date)
		}
	}
}

func TestNoLookahead(t *testing.T) {
	full, err := New(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	records, decisions := corpus(15)
	if err := full.Load(records, decisions); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := full.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	// a prefix-only run must reproduce the same early predictions:
	// anything else means later meetings leaked into earlier fits
	prefix, err := New(3)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := prefix.Load(records[:9], decisions[:9]); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := prefix.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	fullRecs, prefixRecs := full.Records(), prefix.Records()
	for i, want := range prefixRecs {
		got := fullRecs[i]
		if got.Date != want.Date || got.Predicted != want.Predicted || got.Confidence != want.Confidence {
			t.Fatalf("step %d differs: %+v vs %+v", i, got, want)
		}
	}
}

func TestBuildReportCumulative(t *testing.T) {
	recs := []models.BacktestRecord{
		{Date: "2022-01-14", IsCorrect: true},
		{Date: "2022-02-24", IsCorrect: false},
		{Date: "2022-04-14", IsCorrect: true},
		{Date: "2022-05-26", IsCorrect: true},
	}
	report := BuildReport(recs, 2)

	if report.Correct != 3 || report.Accuracy != 0.75 {
		t.Fatalf("correct=%d accuracy=%g", report.Correct, report.Accuracy)
	}
	want := []float64{1.0, 0.5, 2.0 / 3.0, 0.75}
	for i, w := range want {
		if report.CumulativeAccuracy[i] != w {
			t.Fatalf("cumulative[%d] = %g, want %g", i, report.CumulativeAccuracy[i], w)
		}
	}
	if len(report.Chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(report.Chunks))
	}
	if report.Chunks[0].Accuracy != 0.5 || report.Chunks[1].Accuracy != 1.0 {
		t.Fatalf("unexpected chunk accuracies: %+v", report.Chunks)
	}
	if report.Chunks[1].StartDate != "2022-04-14" || report.Chunks[1].EndDate != "2022-05-26" {
		t.Fatalf("unexpected chunk bounds: %+v", report.Chunks[1])
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil, 5)
	if report.Total != 0 || report.Accuracy != 0 || len(report.Chunks) != 0 {
		t.Fatalf("unexpected empty report: %+v", report)
	}
}

func TestReportChunking(t *testing.T) {
	b, err := New(3, WithChunkSize(5))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	records, decisions := corpus(15)
	if err := b.Load(records, decisions); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := b.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	report, err := b.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.Total != 12 {
		t.Fatalf("expected total 12, got %d", report.Total)
	}
	if len(report.Chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(report.Chunks))
	}
	if report.Chunks[0].Size != 5 || report.Chunks[1].Size != 5 || report.Chunks[2].Size != 2 {
		t.Fatalf("unexpected chunk sizes: %+v", report.Chunks)
	}
	if len(report.CumulativeAccuracy) != 12 {
		t.Fatalf("expected 12 cumulative points, got %d", len(report.CumulativeAccuracy))
	}
}
