package driven

import "context"

// LineSource reads a whole input file as lines, without line terminators.
type LineSource interface {
	// ReadLines returns every line of the file at path.
	// A missing file is reported as domain.ErrFileNotFound.
	ReadLines(ctx context.Context, path string) ([]string, error)
}
