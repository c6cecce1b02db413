package session

import "context"
import "sync"

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/inference"
import "github.com/neurlang/digitview/parallel"
import "github.com/neurlang/digitview/prediction"

// BatchResult holds the prediction for every sample of a dataset
type BatchResult struct {
	Predictions []prediction.Prediction
	// Histogram counts predictions per class index
	Histogram []int
}

// PredictAll classifies every sample of ds using up to limit goroutines.
// limit <= 0 uses parallel.DefaultLimit. The first failing sample aborts
// the run.
func PredictAll(ctx context.Context, ds mnist.Dataset, exec inference.Executor, limit int) (*BatchResult, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	if exec == nil {
		return nil, ErrNoExecutor
	}
	if limit <= 0 {
		limit = parallel.DefaultLimit()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mut      sync.Mutex
		firstErr error
		out      = make([]prediction.Prediction, len(ds))
	)
	err := parallel.ForEachContext(ctx, len(ds), limit, func(i int) {
		p, _, err := Predict(exec, ds[i])
		if err != nil {
			mut.Lock()
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "predict sample %d", i)
			}
			mut.Unlock()
			cancel()
			return
		}
		out[i] = p
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, err
	}

	var hist = make([]int, exec.Classes())
	for _, p := range out {
		for p.Index >= len(hist) {
			hist = append(hist, 0)
		}
		hist[p.Index]++
	}
	return &BatchResult{Predictions: out, Histogram: hist}, nil
}

// Accuracy reports the fraction of predictions equal to labels
func (r *BatchResult) Accuracy(labels []byte) (float64, error) {
	if len(labels) != len(r.Predictions) {
		return 0, errors.Errorf("%d labels for %d predictions", len(labels), len(r.Predictions))
	}
	var hits int
	for i, p := range r.Predictions {
		if p.Index == int(labels[i]) {
			hits++
		}
	}
	return float64(hits) / float64(len(labels)), nil
}
