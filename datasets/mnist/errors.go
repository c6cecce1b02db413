package mnist

import "fmt"

import "github.com/pkg/errors"

// ErrFieldCount means a line does not hold exactly SampleSize fields
var ErrFieldCount = errors.New("wrong number of fields")

// ErrToken means a field is not an unsigned byte
var ErrToken = errors.New("not an unsigned byte")

// ErrFormat means a binary dataset file is malformed
var ErrFormat = errors.New("malformed dataset file")

// ErrDigest means a dataset file does not match its expected SHA-256
var ErrDigest = errors.New("dataset digest mismatch")

// ParseError reports where CSV decoding failed. Line and Field are 1-based;
// Field is 0 for whole-line errors.
type ParseError struct {
	Line  int
	Field int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("mnist: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("mnist: line %d field %d: %q: %v", e.Line, e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
