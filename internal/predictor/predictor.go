package predictor

import (
	"errors"
	"fmt"
	"math"

	"PolicyTone/internal/domain/models"
)

var (
	// ErrInsufficientData reports a training set that is empty or has
	// fewer than two distinct classes. Never silently degraded to a
	// trivial model.
	ErrInsufficientData = errors.New("insufficient training data")
	// ErrNotTrained reports Predict called before Train. This is a
	// programming-contract violation, always surfaced.
	ErrNotTrained = errors.New("predictor is not trained")
)

// classes is the fixed class order. It doubles as the tie-break
// priority: an equal probability never displaces an earlier class.
var classes = []models.RateAction{models.ActionHike, models.ActionHold, models.ActionCut}

const (
	learningRate = 0.1
	iterations   = 500
)

// Predictor is a 3-class (hike/hold/cut) multinomial logistic classifier
// with per-fit feature standardization.
//
// Train fully re-estimates parameters from scratch; there is no
// incremental update. The fit is deterministic: zero-initialized weights,
// a fixed learning rate and iteration count, and no shuffling, so an
// identical example set always yields bit-identical predictions.
type Predictor struct {
	trained bool
	width   int

	mean []float64
	std  []float64

	// weights[c] = bias followed by one coefficient per feature.
	weights [][]float64
}

// New returns an untrained predictor.
func New() *Predictor {
	return &Predictor{}
}

// Train fits standardization and classifier weights from the given
// examples only. Statistics are never taken from data outside this set.
func (p *Predictor) Train(examples []models.TrainingExample) error {
	if len(examples) == 0 {
		return fmt.Errorf("%w: empty example set", ErrInsufficientData)
	}

	width := len(examples[0].Features)
	if width == 0 {
		return fmt.Errorf("%w: empty feature vector", ErrInsufficientData)
	}
	seen := make(map[models.RateAction]bool, len(classes))
	targets := make([]int, len(examples))
	for i, ex := range examples {
		if len(ex.Features) != width {
			return fmt.Errorf("inconsistent feature width at %s: got %d, want %d", ex.DocumentID, len(ex.Features), width)
		}
		idx := classIndex(ex.Label)
		if idx < 0 {
			return fmt.Errorf("unknown action %q at %s", ex.Label, ex.DocumentID)
		}
		targets[i] = idx
		seen[ex.Label] = true
	}
	if len(seen) < 2 {
		return fmt.Errorf("%w: %d distinct class(es), need at least 2", ErrInsufficientData, len(seen))
	}

	mean, std := fitStandardizer(examples, width)
	x := make([][]float64, len(examples))
	for i, ex := range examples {
		x[i] = standardize(ex.Features, mean, std)
	}

	weights := make([][]float64, len(classes))
	for c := range weights {
		weights[c] = make([]float64, width+1)
	}

	// Batch gradient descent on the multinomial cross-entropy.
	n := float64(len(x))
	grad := make([][]float64, len(classes))
	for c := range grad {
		grad[c] = make([]float64, width+1)
	}
	for iter := 0; iter < iterations; iter++ {
		for c := range grad {
			for j := range grad[c] {
				grad[c][j] = 0
			}
		}
		for i, xi := range x {
			probs := softmax(scores(weights, xi))
			for c := range classes {
				delta := probs[c]
				if targets[i] == c {
					delta -= 1
				}
				grad[c][0] += delta
				for j, v := range xi {
					grad[c][j+1] += delta * v
				}
			}
		}
		for c := range weights {
			for j := range weights[c] {
				weights[c][j] -= learningRate * grad[c][j] / n
			}
		}
	}

	p.width = width
	p.mean = mean
	p.std = std
	p.weights = weights
	p.trained = true
	return nil
}

// Predict applies the fitted standardization and classifier to one
// feature vector.
func (p *Predictor) Predict(features []float64) (models.PredictionResult, error) {
	if !p.trained {
		return models.PredictionResult{}, ErrNotTrained
	}
	if len(features) != p.width {
		return models.PredictionResult{}, fmt.Errorf("feature width %d, trained on %d", len(features), p.width)
	}

	probs := softmax(scores(p.weights, standardize(features, p.mean, p.std)))

	best := 0
	for c := 1; c < len(probs); c++ {
		// strict inequality keeps the earlier (higher-priority) class on ties
		if probs[c] > probs[best] {
			best = c
		}
	}

	return models.PredictionResult{
		PredictedAction: classes[best],
		Confidence:      probs[best],
		ProbHike:        probs[0],
		ProbHold:        probs[1],
		ProbCut:         probs[2],
	}, nil
}

// Trained reports whether Train has completed successfully.
func (p *Predictor) Trained() bool { return p.trained }

func classIndex(a models.RateAction) int {
	for i, c := range classes {
		if c == a {
			return i
		}
	}
	return -1
}

func fitStandardizer(examples []models.TrainingExample, width int) (mean, std []float64) {
	mean = make([]float64, width)
	std = make([]float64, width)
	n := float64(len(examples))
	for _, ex := range examples {
		for j, v := range ex.Features {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}
	for _, ex := range examples {
		for j, v := range ex.Features {
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
		if std[j] == 0 {
			std[j] = 1 // constant feature: pass through centered
		}
	}
	return mean, std
}

func standardize(features, mean, std []float64) []float64 {
	out := make([]float64, len(features))
	for j, v := range features {
		out[j] = (v - mean[j]) / std[j]
	}
	return out
}

func scores(weights [][]float64, x []float64) []float64 {
	out := make([]float64, len(weights))
	for c, w := range weights {
		s := w[0]
		for j, v := range x {
			s += w[j+1] * v
		}
		out[c] = s
	}
	return out
}

func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	sum := 0.0
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
