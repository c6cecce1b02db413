package session

import "fmt"
import "io"

// Presenter displays a prediction label
type Presenter interface {
	Present(label string) error
}

// PresenterFunc adapts a function to a Presenter
type PresenterFunc func(label string) error

// Present calls f(label)
func (f PresenterFunc) Present(label string) error {
	return f(label)
}

// WriterPresenter prints one label per line
type WriterPresenter struct {
	W io.Writer
}

// Present writes label and a newline
func (w WriterPresenter) Present(label string) error {
	_, err := fmt.Fprintln(w.W, label)
	return err
}
