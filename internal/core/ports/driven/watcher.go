package driven

import "context"

// FileWatcher reports changes to a fixed set of files.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange with the path of
	// each changed file. Bursts of events for one file are coalesced.
	Watch(ctx context.Context, paths []string, onChange func(path string)) error
}
