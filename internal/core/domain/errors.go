package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures of a listing run.
var (
	// ErrInvalidInput indicates a nil or otherwise unusable argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedLine indicates an input line that does not follow its grammar.
	ErrMalformedLine = errors.New("malformed line")

	// ErrMissingOption indicates a required option was not supplied.
	ErrMissingOption = errors.New("missing option")

	// ErrFileNotFound indicates an input file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotImplemented indicates a render mode without a renderer.
	ErrNotImplemented = errors.New("not implemented")
)

// LineError reports a parse failure together with where it happened.
type LineError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying cause, normally ErrMalformedLine.
func (e *LineError) Unwrap() error {
	return e.Err
}
