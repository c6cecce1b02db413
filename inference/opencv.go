//go:build opencv

package inference

import "image"
import "os"
import "sync"

import "gocv.io/x/gocv"

// Tensorflow runs a frozen TensorFlow graph through the OpenCV DNN module.
// OpenCV nets are not reentrant, so Forward calls are serialized.
type Tensorflow struct {
	mut     sync.Mutex
	net     gocv.Net
	classes int
}

// OpenTensorflow loads a frozen .pb graph
func OpenTensorflow(path string, opts Options) (Executor, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	net := gocv.ReadNetFromTensorflow(path)
	if net.Empty() {
		net.Close()
		return nil, &ModelLoadError{Path: path, Err: ErrEmptyModel}
	}
	return &Tensorflow{net: net, classes: opts.classes()}, nil
}

// Forward feeds input as a 1xN single channel float image
func (t *Tensorflow) Forward(input []float32) (ScoreVector, error) {
	if len(input) == 0 {
		return nil, checkInput(input, 1)
	}
	t.mut.Lock()
	defer t.mut.Unlock()

	img := gocv.NewMatWithSize(1, len(input), gocv.MatTypeCV32F)
	defer img.Close()
	for i, v := range input {
		img.SetFloatAt(0, i, v)
	}
	blob := gocv.BlobFromImage(img, 1.0, image.Pt(len(input), 1), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	t.net.SetInput(blob, "")
	prob := t.net.Forward("")
	defer prob.Close()

	if err := checkScores(prob.Cols(), t.classes); err != nil {
		return nil, err
	}
	scores := make(ScoreVector, prob.Cols())
	for i := range scores {
		scores[i] = prob.GetFloatAt(0, i)
	}
	return scores, nil
}

// Classes reports the configured number of classes, which Forward checks
// against the graph output
func (t *Tensorflow) Classes() int {
	return t.classes
}

// Close frees the OpenCV net
func (t *Tensorflow) Close() error {
	t.mut.Lock()
	defer t.mut.Unlock()
	return t.net.Close()
}
