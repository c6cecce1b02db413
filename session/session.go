// Package session steps through a dataset, rendering each sample and
// presenting the classifier's prediction for it.
package session

import "github.com/eapache/queue"
import "github.com/google/uuid"
import "github.com/pkg/errors"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/inference"
import "github.com/neurlang/digitview/prediction"
import "github.com/neurlang/digitview/render"

// DefaultHistory is the number of predictions History keeps
const DefaultHistory = 16

var (
	// ErrEmptyDataset is returned by New for a dataset without samples
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrNoExecutor is returned by New without a model executor
	ErrNoExecutor = errors.New("no model executor")
	// ErrOutOfRange is returned by Seek for an index outside the dataset
	ErrOutOfRange = errors.New("sample index out of range")
)

// Record is one presented prediction
type Record struct {
	Cursor     int
	Prediction prediction.Prediction
}

// Session owns the dataset, the cursor into it and the model executor.
// It is not safe for concurrent use.
type Session struct {
	id        string
	dataset   mnist.Dataset
	exec      inference.Executor
	renderer  render.Renderer
	presenter Presenter

	cursor  int
	current prediction.Prediction
	scores  inference.ScoreVector

	history     *queue.Queue
	historySize int
}

// Option configures a Session
type Option func(*Session)

// WithRenderer sets where samples are displayed
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithPresenter sets where prediction labels are displayed
func WithPresenter(p Presenter) Option {
	return func(s *Session) {
		s.presenter = p
	}
}

// WithHistory sets how many predictions History keeps; 0 disables it
func WithHistory(n int) Option {
	return func(s *Session) {
		if n < 0 {
			n = 0
		}
		s.historySize = n
	}
}

// New creates a session positioned on the first sample. Call Initialize
// to display it.
func New(ds mnist.Dataset, exec inference.Executor, opts ...Option) (*Session, error) {
	if len(ds) == 0 {
		return nil, ErrEmptyDataset
	}
	if exec == nil {
		return nil, ErrNoExecutor
	}
	s := &Session{
		id:          uuid.New().String(),
		dataset:     ds,
		exec:        exec,
		history:     queue.New(),
		historySize: DefaultHistory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID identifies the session in logs
func (s *Session) ID() string {
	return s.id
}

// Len reports the dataset size
func (s *Session) Len() int {
	return len(s.dataset)
}

// Cursor reports the index of the current sample
func (s *Session) Cursor() int {
	return s.cursor
}

// Current returns the current sample
func (s *Session) Current() mnist.Sample {
	return s.dataset[s.cursor]
}

// Prediction returns the prediction for the current sample, valid after
// Initialize, Step or Seek succeeded.
func (s *Session) Prediction() prediction.Prediction {
	return s.current
}

// Scores returns the score vector behind Prediction
func (s *Session) Scores() inference.ScoreVector {
	return s.scores
}

// Initialize displays and classifies the current sample
func (s *Session) Initialize() error {
	return s.show()
}

// Advance moves the cursor to the next sample, back to 0 past the end
func (s *Session) Advance() int {
	s.cursor++
	if s.cursor >= len(s.dataset) {
		s.cursor = 0
	}
	return s.cursor
}

// Step advances and then displays and classifies the new current sample
func (s *Session) Step() (prediction.Prediction, error) {
	s.Advance()
	err := s.show()
	return s.current, err
}

// Seek jumps to sample i and displays it
func (s *Session) Seek(i int) error {
	if i < 0 || i >= len(s.dataset) {
		return errors.Wrapf(ErrOutOfRange, "%d not in [0, %d)", i, len(s.dataset))
	}
	s.cursor = i
	return s.show()
}

// History returns up to the configured number of most recent records, oldest first
func (s *Session) History() []Record {
	out := make([]Record, 0, s.history.Length())
	for i := 0; i < s.history.Length(); i++ {
		out = append(out, s.history.Get(i).(Record))
	}
	return out
}

func (s *Session) show() error {
	sample := s.dataset[s.cursor]
	if s.renderer != nil {
		if err := s.renderer.Render(sample); err != nil {
			return errors.Wrapf(err, "render sample %d", s.cursor)
		}
	}
	p, scores, err := Predict(s.exec, sample)
	if err != nil {
		return errors.Wrapf(err, "predict sample %d", s.cursor)
	}
	s.current = p
	s.scores = scores
	s.record(Record{Cursor: s.cursor, Prediction: p})
	if s.presenter != nil {
		if err := s.presenter.Present(p.String()); err != nil {
			return errors.Wrap(err, "present prediction")
		}
	}
	return nil
}

func (s *Session) record(r Record) {
	if s.historySize == 0 {
		return
	}
	s.history.Add(r)
	for s.history.Length() > s.historySize {
		s.history.Remove()
	}
}

// Close closes the model executor. The session must not be used afterwards.
func (s *Session) Close() error {
	return s.exec.Close()
}

// Predict normalizes the sample, runs exec on it and selects the best class
func Predict(exec inference.Executor, sample mnist.Sample) (prediction.Prediction, inference.ScoreVector, error) {
	scores, err := exec.Forward(sample.Normalize())
	if err != nil {
		return prediction.Prediction{}, nil, err
	}
	p, err := prediction.Argmax(scores)
	if err != nil {
		return prediction.Prediction{}, nil, err
	}
	return p, scores, nil
}
