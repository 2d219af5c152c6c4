package predictor

import (
	"errors"
	"math"
	"testing"

	"PolicyTone/internal/domain/models"
)

func example(id string, tone float64, label models.RateAction) models.TrainingExample {
	return models.TrainingExample{DocumentID: id, Features: []float64{tone}, Label: label}
}

// trainingSet is separable on the tone axis: high tone hikes, low cuts.
func trainingSet() []models.TrainingExample {
	return []models.TrainingExample{
		example("a", 0.9, models.ActionHike),
		example("b", 0.8, models.ActionHike),
		example("c", 0.7, models.ActionHike),
		example("d", 0.1, models.ActionHold),
		example("e", 0.0, models.ActionHold),
		example("f", -0.1, models.ActionHold),
		example("g", -0.7, models.ActionCut),
		example("h", -0.8, models.ActionCut),
		example("i", -0.9, models.ActionCut),
	}
}

func TestPredictBeforeTrain(t *testing.T) {
	p := New()
	if _, err := p.Predict([]float64{0.1}); !errors.Is(err, ErrNotTrained) {
		t.Fatalf("expected ErrNotTrained, got %v", err)
	}
	if p.Trained() {
		t.Fatalf("expected untrained predictor")
	}
}

func TestTrainEmpty(t *testing.T) {
	p := New()
	if err := p.Train(nil); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainSingleClass(t *testing.T) {
	p := New()
	err := p.Train([]models.TrainingExample{
		example("a", 0.5, models.ActionHold),
		example("b", 0.6, models.ActionHold),
	})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestTrainInconsistentWidth(t *testing.T) {
	p := New()
	err := p.Train([]models.TrainingExample{
		{DocumentID: "a", Features: []float64{0.5}, Label: models.ActionHike},
		{DocumentID: "b", Features: []float64{0.5, 1.0}, Label: models.ActionCut},
	})
	if err == nil {
		t.Fatalf("expected width error")
	}
}

func TestPredictSeparatesClasses(t *testing.T) {
	p := New()
	if err := p.Train(trainingSet()); err != nil {
		t.Fatalf("train: %v", err)
	}

	hike, err := p.Predict([]float64{0.85})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if hike.PredictedAction != models.ActionHike {
		t.Fatalf("high tone predicted %s", hike.PredictedAction)
	}

	cut, err := p.Predict([]float64{-0.85})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if cut.PredictedAction != models.ActionCut {
		t.Fatalf("low tone predicted %s", cut.PredictedAction)
	}

	hold, err := p.Predict([]float64{0.0})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if hold.PredictedAction != models.ActionHold {
		t.Fatalf("neutral tone predicted %s", hold.PredictedAction)
	}
}

func TestPredictTieBreakOrder(t *testing.T) {
	// Zero weights make the softmax uniform: a three-way tie must
	// resolve to hike, the first class in priority order.
	p := &Predictor{
		trained: true,
		width:   1,
		mean:    []float64{0},
		std:     []float64{1},
		weights: [][]float64{{0, 0}, {0, 0}, {0, 0}},
	}
	res, err := p.Predict([]float64{0})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	third := 1.0 / 3.0
	if math.Abs(res.ProbHike-third) > 1e-12 || math.Abs(res.ProbHold-third) > 1e-12 || math.Abs(res.ProbCut-third) > 1e-12 {
		t.Fatalf("expected uniform probabilities, got %+v", res)
	}
	if res.PredictedAction != models.ActionHike {
		t.Fatalf("three-way tie resolved to %s, want %s", res.PredictedAction, models.ActionHike)
	}

	// With hike pushed far down, hold and cut tie and hold must win.
	p.weights = [][]float64{{-20, 0}, {0, 0}, {0, 0}}
	res, err = p.Predict([]float64{0})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if math.Abs(res.ProbHold-res.ProbCut) > 1e-12 {
		t.Fatalf("expected hold/cut tie, got %+v", res)
	}
	if res.PredictedAction != models.ActionHold {
		t.Fatalf("hold/cut tie resolved to %s, want %s", res.PredictedAction, models.ActionHold)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	p := New()
	if err := p.Train(trainingSet()); err != nil {
		t.Fatalf("train: %v", err)
	}
	res, err := p.Predict([]float64{0.3})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	sum := res.ProbHike + res.ProbHold + res.ProbCut
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("probabilities sum to %g", sum)
	}
	if res.Confidence != math.Max(res.ProbHike, math.Max(res.ProbHold, res.ProbCut)) {
		t.Fatalf("confidence %g is not the max probability", res.Confidence)
	}
}

func TestTrainIsDeterministic(t *testing.T) {
	p1, p2 := New(), New()
	if err := p1.Train(trainingSet()); err != nil {
		t.Fatalf("train: %v", err)
	}
	if err := p2.Train(trainingSet()); err != nil {
		t.Fatalf("train: %v", err)
	}

	for _, tone := range []float64{-0.9, -0.3, 0.0, 0.3, 0.9} {
		r1, err := p1.Predict([]float64{tone})
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		r2, err := p2.Predict([]float64{tone})
		if err != nil {
			t.Fatalf("predict: %v", err)
		}
		if r1 != r2 {
			t.Fatalf("non-deterministic prediction at %g: %+v vs %+v", tone, r1, r2)
		}
	}
}

func TestPredictWidthMismatch(t *testing.T) {
	p := New()
	if err := p.Train(trainingSet()); err != nil {
		t.Fatalf("train: %v", err)
	}
	if _, err := p.Predict([]float64{0.1, 0.2}); err == nil {
		t.Fatalf("expected width error")
	}
}

func TestTrainUnknownLabel(t *testing.T) {
	p := New()
	err := p.Train([]models.TrainingExample{
		example("a", 0.5, models.ActionHike),
		{DocumentID: "b", Features: []float64{0.1}, Label: models.RateAction("pause")},
	})
	if err == nil {
		t.Fatalf("expected unknown action error")
	}
}
