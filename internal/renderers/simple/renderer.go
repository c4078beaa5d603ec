// Package simple renders the windows format: a header line followed by
// every included author's display name and a comma, on one line.
package simple

import (
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Header is the first line of every windows format listing.
const Header = "----------------- Authors ---------------"

// Renderer prints the windows format.
type Renderer struct{}

// New creates a new windows format renderer.
func New() *Renderer {
	return &Renderer{}
}

// Mode returns domain.RenderModeWindows.
func (r *Renderer) Mode() domain.RenderMode {
	return domain.RenderModeWindows
}

// Render writes the header, then "Name," for each author separated by
// single spaces, then a newline if any author was written. Each author's
// Rendered field is set to its entry.
//
// Affiliation markers are worked out per author but are not part of this
// format. They only reach the verbose log.
func (r *Renderer) Render(w io.Writer, listing *domain.Listing) error {
	if listing == nil {
		return domain.ErrInvalidInput
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	for i := range listing.Authors {
		author := &listing.Authors[i]
		author.Rendered = author.DisplayName() + ","

		if markers := affiliationMarkers(author, listing.Index); markers != "" {
			logger.Debug("%s affiliations: %s", author.Rendered, markers)
		}

		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(author.Rendered)
	}
	if len(listing.Authors) > 0 {
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// affiliationMarkers returns the author's institute positions as "1, 3".
// Codes missing from the index are skipped.
func affiliationMarkers(author *domain.Author, idx *domain.InstituteIndex) string {
	if idx == nil {
		return ""
	}
	marks := make([]string, 0, len(author.InstituteCodes))
	for _, code := range author.InstituteCodes {
		if pos, ok := idx.Position(code); ok {
			marks = append(marks, strconv.Itoa(pos))
		}
	}
	return strings.Join(marks, ", ")
}
