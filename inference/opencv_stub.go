//go:build !opencv

package inference

import "github.com/pkg/errors"

// ErrNoOpenCV means the binary was built without the opencv tag
var ErrNoOpenCV = errors.New("built without opencv support, rebuild with -tags opencv")

// OpenTensorflow always fails without OpenCV
func OpenTensorflow(path string, opts Options) (Executor, error) {
	return nil, &ModelLoadError{Path: path, Err: ErrNoOpenCV}
}
