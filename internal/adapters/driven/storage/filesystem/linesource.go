// Package filesystem reads input files from the local disk.
package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
)

// Ensure LineSource implements the interface.
var _ driven.LineSource = (*LineSource)(nil)

// maxLineBytes bounds a single input line. Author and institute lines are
// short, but addresses can run long.
const maxLineBytes = 1 << 20

// LineSource reads local files line by line.
type LineSource struct{}

// NewLineSource creates a new filesystem line source.
func NewLineSource() *LineSource {
	return &LineSource{}
}

// ReadLines returns the lines of the file at path with "\n" and "\r\n"
// terminators removed. An empty file yields no lines. path may be a bare
// path or a file:// URI.
func (s *LineSource) ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path = ResolvePath(path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
