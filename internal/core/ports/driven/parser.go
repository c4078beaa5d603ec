package driven

import "github.com/custodia-labs/authorlist/internal/core/domain"

// AuthorParser turns author file lines into authors.
type AuthorParser interface {
	// Included reports whether the line is flagged for inclusion.
	Included(line string) bool

	// Parse tokenizes a single line. Malformed lines return an error
	// wrapping domain.ErrMalformedLine.
	Parse(line string) (*domain.Author, error)
}

// InstituteParser turns institute file lines into institutes.
type InstituteParser interface {
	// Parse splits a single line into code and address.
	Parse(line string) (*domain.Institute, error)
}
