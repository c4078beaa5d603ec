// Package pending holds the placeholder for the citation-style format.
// It prints a fixed notice and no authors.
package pending

import (
	"io"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Notice is printed in place of a listing.
const Notice = "The other format still needs to be written!"

// Renderer prints Notice.
type Renderer struct{}

// New creates a new placeholder renderer.
func New() *Renderer {
	return &Renderer{}
}

// Mode returns domain.RenderModeDefault.
func (r *Renderer) Mode() domain.RenderMode {
	return domain.RenderModeDefault
}

// Render writes Notice and a newline. The listing is not consulted.
func (r *Renderer) Render(w io.Writer, _ *domain.Listing) error {
	_, err := io.WriteString(w, Notice+"\n")
	return err
}
