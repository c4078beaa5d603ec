// Package instituteline parses lines of the institute file.
//
// A line is free address text followed by the institute code as its last
// ASCII whitespace separated token.
package instituteline

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/parsers"
)

// Ensure Parser implements the interface.
var _ driven.InstituteParser = (*Parser)(nil)

// Parser splits institute lines.
type Parser struct{}

// New creates a new institute line parser.
func New() *Parser {
	return &Parser{}
}

// Parse returns the institute described by line. The address is the
// right-trimmed line with the code text cut off its end, so any whitespace
// before the code stays part of the address.
func (p *Parser) Parse(line string) (*domain.Institute, error) {
	trimmed := parsers.TrimRight(line)
	fields := parsers.Fields(trimmed)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no institute code", domain.ErrMalformedLine)
	}

	code := fields[len(fields)-1]
	return &domain.Institute{
		Code:    code,
		Address: strings.TrimSuffix(trimmed, code),
	}, nil
}
