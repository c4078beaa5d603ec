package domain

import "strings"

// SpaceJoiner is the character author names use for a required space.
const SpaceJoiner = "~"

// Author is one author line flagged for inclusion.
type Author struct {
	// Name is the raw quoted name, still carrying SpaceJoiner characters.
	Name string

	// InstituteCodes lists affiliations in the order written on the line.
	InstituteCodes []string

	// Included is true when the line's final token is exactly "yes".
	Included bool

	// Line is the 1-based line number in the author file.
	Line int

	// Rendered holds the text produced for this author by the last render.
	Rendered string
}

// DisplayName returns the name with every SpaceJoiner replaced by a space.
func (a Author) DisplayName() string {
	return strings.ReplaceAll(a.Name, SpaceJoiner, " ")
}
