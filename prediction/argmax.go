// Package prediction reduces a per-class score vector to the predicted class.
package prediction

import "fmt"
import "sort"

import "github.com/pkg/errors"

// ErrInvalidInput is returned for an empty score vector
var ErrInvalidInput = errors.New("empty score vector")

// Prediction is a class index and its score
type Prediction struct {
	Index int
	Value float32
}

// String formats the prediction as the status line shown to the user
func (p Prediction) String() string {
	return fmt.Sprintf("idx : %d , value : %.2f", p.Index, p.Value)
}

// Argmax scans scores left to right and keeps the first index holding the
// largest value. The running maximum starts at index 0 with value 0, so a
// vector without positive scores yields (0, 0).
func Argmax(scores []float32) (Prediction, error) {
	if len(scores) == 0 {
		return Prediction{}, ErrInvalidInput
	}
	var p Prediction
	for i, v := range scores {
		if p.Value < v {
			p.Value = v
			p.Index = i
		}
	}
	return p, nil
}

// TopK returns the k highest scores in descending order, earlier indices
// first among equal scores. k larger than the vector returns all of it.
func TopK(scores []float32, k int) ([]Prediction, error) {
	if len(scores) == 0 {
		return nil, ErrInvalidInput
	}
	if k <= 0 {
		return nil, errors.Errorf("top %d", k)
	}
	var all = make([]Prediction, len(scores))
	for i, v := range scores {
		all[i] = Prediction{Index: i, Value: v}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Value > all[j].Value
	})
	if k > len(all) {
		k = len(all)
	}
	return all[:k], nil
}
