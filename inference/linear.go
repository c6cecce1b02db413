package inference

import "encoding/json"
import "math"
import "os"

import "github.com/pkg/errors"

// LinearModel is the on-disk form of a linear softmax classifier
type LinearModel struct {
	Classes int         `json:"classes"`
	Inputs  int         `json:"inputs"`
	Weights [][]float32 `json:"weights"`
	Bias    []float32   `json:"bias"`
}

// Validate checks the weight shapes against Classes and Inputs
func (m *LinearModel) Validate() error {
	if m.Classes <= 0 {
		return errors.Errorf("classes must be > 0 (got %d)", m.Classes)
	}
	if m.Inputs <= 0 {
		return errors.Errorf("inputs must be > 0 (got %d)", m.Inputs)
	}
	if len(m.Weights) != m.Classes {
		return errors.Errorf("got %d weight rows for %d classes", len(m.Weights), m.Classes)
	}
	for c, row := range m.Weights {
		if len(row) != m.Inputs {
			return errors.Errorf("weight row %d has %d values, want %d", c, len(row), m.Inputs)
		}
	}
	if len(m.Bias) != m.Classes {
		return errors.Errorf("got %d biases for %d classes", len(m.Bias), m.Classes)
	}
	return nil
}

// Linear computes softmax(W*x + b)
type Linear struct {
	model LinearModel
}

// OpenLinear reads a json LinearModel
func OpenLinear(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	l, err := NewLinear(m)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	return l, nil
}

// NewLinear validates m and wraps it
func NewLinear(m LinearModel) (*Linear, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "linear model")
	}
	return &Linear{model: m}, nil
}

// Forward returns class probabilities
func (l *Linear) Forward(input []float32) (ScoreVector, error) {
	if err := checkInput(input, l.model.Inputs); err != nil {
		return nil, err
	}
	logits := make([]float64, l.model.Classes)
	for c, row := range l.model.Weights {
		sum := float64(l.model.Bias[c])
		for j, w := range row {
			sum += float64(w) * float64(input[j])
		}
		logits[c] = sum
	}
	return softmax(logits), nil
}

// Classes reports the number of classes
func (l *Linear) Classes() int {
	return l.model.Classes
}

// Close does nothing
func (l *Linear) Close() error {
	return nil
}

func softmax(logits []float64) ScoreVector {
	maxLogit := logits[0]
	for _, v := range logits {
		if v > maxLogit {
			maxLogit = v
		}
	}
	sum := 0.0
	exps := make([]float64, len(logits))
	for i, v := range logits {
		exps[i] = math.Exp(v - maxLogit)
		sum += exps[i]
	}
	out := make(ScoreVector, len(logits))
	for i := range exps {
		out[i] = float32(exps[i] / sum)
	}
	return out
}
