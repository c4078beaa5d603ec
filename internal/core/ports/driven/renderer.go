package driven

import (
	"io"

	"github.com/custodia-labs/authorlist/internal/core/domain"
)

// Renderer prints a listing in one output mode.
type Renderer interface {
	// Mode returns the render mode this renderer handles.
	Mode() domain.RenderMode

	// Render writes the listing to w.
	Render(w io.Writer, listing *domain.Listing) error
}
