// Package authorline parses lines of the author file.
//
// Grammar, tokens separated by ASCII whitespace:
//
//	line  = name *code flag
//	name  = "'" text "'"      ; "~" marks a required space
//	flag  = "yes" / token     ; only "yes" includes the author
//
// The name is the text between the first two quotes. Codes are taken from
// the tokens after the last quote, minus the final flag token.
package authorline

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/parsers"
)

// Ensure Parser implements the interface.
var _ driven.AuthorParser = (*Parser)(nil)

const (
	quote       = "'"
	includeFlag = "yes"
)

// Parser tokenizes author lines.
type Parser struct{}

// New creates a new author line parser.
func New() *Parser {
	return &Parser{}
}

// Included reports whether the final token of the whole line is "yes".
func (p *Parser) Included(line string) bool {
	fields := parsers.Fields(line)
	return len(fields) > 0 && fields[len(fields)-1] == includeFlag
}

// Parse tokenizes one author line.
func (p *Parser) Parse(line string) (*domain.Author, error) {
	segments := strings.Split(line, quote)
	if len(segments) < 3 {
		return nil, fmt.Errorf("%w: name must be enclosed in single quotes", domain.ErrMalformedLine)
	}

	tail := parsers.Fields(segments[len(segments)-1])
	if len(tail) == 0 {
		return nil, fmt.Errorf("%w: no inclusion flag after name", domain.ErrMalformedLine)
	}

	codes := make([]string, len(tail)-1)
	copy(codes, tail[:len(tail)-1])

	return &domain.Author{
		Name:           segments[1],
		InstituteCodes: codes,
		Included:       p.Included(line),
	}, nil
}
