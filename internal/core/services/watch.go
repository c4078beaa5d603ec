package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService reruns a ListingService on input changes.
type WatchService struct {
	listing driving.ListingService
	watcher driven.FileWatcher
}

// NewWatchService creates a watch service. watcher may be nil, in which
// case Watch fails.
func NewWatchService(listing driving.ListingService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{listing: listing, watcher: watcher}
}

// Watch renders the listing, then renders it again each time the author or
// institute file changes.
func (s *WatchService) Watch(ctx context.Context, w io.Writer, opts domain.ListingOptions, onError func(error)) error {
	if s.watcher == nil {
		return fmt.Errorf("%w: file watching", domain.ErrNotImplemented)
	}
	if err := s.listing.Run(ctx, w, opts); err != nil {
		return err
	}

	paths := []string{opts.AuthorsPath, opts.InstitutesPath}
	return s.watcher.Watch(ctx, paths, func(path string) {
		logger.Info("%s changed, regenerating", path)
		if err := s.listing.Run(ctx, w, opts); err != nil && onError != nil {
			onError(err)
		}
	})
}
