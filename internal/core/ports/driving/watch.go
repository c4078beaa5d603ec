package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/authorlist/internal/core/domain"
)

// WatchService re-renders the listing whenever an input file changes.
type WatchService interface {
	// Watch renders once, then again after every change until ctx is done.
	// A failure of the first render is returned. Later failures go to onError
	// and watching continues.
	Watch(ctx context.Context, w io.Writer, opts domain.ListingOptions, onError func(error)) error
}
