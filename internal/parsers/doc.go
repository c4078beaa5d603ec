// Package parsers provides the line parsers for the two input files.
// Each parser knows the grammar of exactly one file and returns domain
// records or an error wrapping domain.ErrMalformedLine.
package parsers
