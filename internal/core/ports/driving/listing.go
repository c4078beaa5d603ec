package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/authorlist/internal/core/domain"
)

// ListingService runs the author listing pipeline.
type ListingService interface {
	// LoadInstitutes reads the institute file into a table.
	LoadInstitutes(ctx context.Context, path string) (domain.InstituteTable, error)

	// LoadAuthors reads the author file, keeping included authors in file order.
	LoadAuthors(ctx context.Context, path string) ([]domain.Author, error)

	// Generate loads both files and indexes referenced institutes.
	Generate(ctx context.Context, opts domain.ListingOptions) (*domain.Listing, error)

	// Render writes a listing in the given mode.
	Render(w io.Writer, listing *domain.Listing, mode domain.RenderMode) error

	// Run generates and renders in one call.
	Run(ctx context.Context, w io.Writer, opts domain.ListingOptions) error
}
