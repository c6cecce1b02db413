// Package inference runs pretrained digit classifiers on normalized samples.
package inference

import "fmt"
import "strings"

import "github.com/pkg/errors"

// DefaultClasses is the number of digit classes
const DefaultClasses = 10

// ScoreVector holds one confidence per class
type ScoreVector []float32

// Executor turns a normalized input buffer into per-class scores.
// Implementations are safe for concurrent use.
type Executor interface {
	// Forward runs the model on input values in [0, 1].
	Forward(input []float32) (ScoreVector, error)

	// Classes reports the length of the score vectors produced.
	Classes() int

	// Close releases the model.
	Close() error
}

// ErrUnknownFormat means the model file extension is not recognized
var ErrUnknownFormat = errors.New("unknown model format")

// ErrEmptyModel means the model file loaded but holds no usable model
var ErrEmptyModel = errors.New("model is empty")

// ErrClasses means the model cannot produce the configured number of classes
var ErrClasses = errors.New("class count mismatch")

// ErrInputSize means Forward got a buffer of the wrong length
var ErrInputSize = errors.New("input size mismatch")

// ModelLoadError reports a model that could not be loaded
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// Options configure Open
type Options struct {
	// Classes overrides the number of classes; zero means DefaultClasses.
	Classes int
}

func (o Options) classes() int {
	if o.Classes > 0 {
		return o.Classes
	}
	return DefaultClasses
}

// Open loads the model at path, choosing the executor by file name:
// .json.lzw is a hashtron network, .json a linear softmax model and
// .pb a TensorFlow graph run through OpenCV.
func Open(path string, opts Options) (Executor, error) {
	switch {
	case strings.HasSuffix(path, ".json.lzw"):
		n, err := OpenNetwork(path, opts)
		if err != nil {
			return nil, err
		}
		return n, nil
	case strings.HasSuffix(path, ".json"):
		l, err := OpenLinear(path)
		if err != nil {
			return nil, err
		}
		return l, nil
	case strings.HasSuffix(path, ".pb"):
		return OpenTensorflow(path, opts)
	}
	return nil, &ModelLoadError{Path: path, Err: ErrUnknownFormat}
}

func checkInput(input []float32, want int) error {
	if len(input) != want {
		return errors.Wrapf(ErrInputSize, "got %d values, want %d", len(input), want)
	}
	return nil
}

// checkScores fails when a model produced n scores but reports classes
func checkScores(n, classes int) error {
	if n != classes {
		return errors.Wrapf(ErrClasses, "model produced %d scores, want %d", n, classes)
	}
	return nil
}
