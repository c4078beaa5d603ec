package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/authorlist/internal/core/domain"
)

// scriptedWatcher reports a fixed sequence of changes, running an optional
// edit before each one.
type scriptedWatcher struct {
	changes []string
	before  func(i int)
	paths   []string
}

func (w *scriptedWatcher) Watch(_ context.Context, paths []string, onChange func(string)) error {
	w.paths = paths
	for i, p := range w.changes {
		if w.before != nil {
			w.before(i)
		}
		onChange(p)
	}
	return nil
}

func TestWatchService_RendersInitiallyAndOnChange(t *testing.T) {
	opts := writeInputs(t, scenarioAuthors, scenarioInstitutes)
	watcher := &scriptedWatcher{
		changes: []string{opts.AuthorsPath},
		before: func(int) {
			_ = os.WriteFile(opts.AuthorsPath, []byte("'A.~N.~Other' jod yes\n"), 0600)
		},
	}
	var out bytes.Buffer

	err := NewWatchService(newTestListingService(), watcher).Watch(context.Background(), &out, opts, nil)

	require.NoError(t, err)
	assert.Equal(t,
		"----------------- Authors ---------------\nB . Stappers,\n"+
			"----------------- Authors ---------------\nA. N. Other,\n",
		out.String())
	assert.Equal(t, []string{opts.AuthorsPath, opts.InstitutesPath}, watcher.paths)
}

func TestWatchService_LaterErrorsReported(t *testing.T) {
	opts := writeInputs(t, scenarioAuthors, scenarioInstitutes)
	watcher := &scriptedWatcher{
		changes: []string{opts.AuthorsPath},
		before: func(int) {
			_ = os.WriteFile(opts.AuthorsPath, []byte("Broken yes\n"), 0600)
		},
	}
	var out bytes.Buffer
	var reported []error

	err := NewWatchService(newTestListingService(), watcher).Watch(context.Background(), &out, opts,
		func(err error) { reported = append(reported, err) })

	require.NoError(t, err)
	require.Len(t, reported, 1)
	assert.True(t, errors.Is(reported[0], domain.ErrMalformedLine))
}

func TestWatchService_InitialErrorReturned(t *testing.T) {
	opts := writeInputs(t, "Broken yes\n", scenarioInstitutes)
	watcher := &scriptedWatcher{}
	var out bytes.Buffer

	err := NewWatchService(newTestListingService(), watcher).Watch(context.Background(), &out, opts, nil)

	assert.True(t, errors.Is(err, domain.ErrMalformedLine))
	assert.Nil(t, watcher.paths)
}

func TestWatchService_NoWatcher(t *testing.T) {
	err := NewWatchService(newTestListingService(), nil).Watch(context.Background(), &bytes.Buffer{}, domain.ListingOptions{}, nil)

	assert.True(t, errors.Is(err, domain.ErrNotImplemented))
}
