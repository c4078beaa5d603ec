package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/authorlist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/authorlist/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/authorlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/core/services"
	"github.com/custodia-labs/authorlist/internal/logger"
	"github.com/custodia-labs/authorlist/internal/parsers/authorline"
	"github.com/custodia-labs/authorlist/internal/parsers/instituteline"
	"github.com/custodia-labs/authorlist/internal/renderers/pending"
	"github.com/custodia-labs/authorlist/internal/renderers/simple"
)

// fakeWatchService records the options it was started with and renders once.
type fakeWatchService struct {
	listing driving.ListingService
	opts    *domain.ListingOptions
}

func (f *fakeWatchService) Watch(ctx context.Context, w io.Writer, opts domain.ListingOptions, _ func(error)) error {
	f.opts = &opts
	return f.listing.Run(ctx, w, opts)
}

func testSettingsFactory(configPath string) (driving.SettingsService, error) {
	if configPath == "" {
		return services.NewSettingsService(memory.NewConfigStore()), nil
	}
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// setupTestServices wires real services and returns a cleanup func that
// restores the package state.
func setupTestServices() (*fakeWatchService, func()) {
	listing := services.NewListingService(
		filesystem.NewLineSource(),
		authorline.New(),
		instituteline.New(),
		simple.New(),
		pending.New(),
	)
	watch := &fakeWatchService{listing: listing}
	SetServices(listing, watch, testSettingsFactory)

	return watch, func() {
		SetServices(nil, nil, nil)
		resetFlags()
	}
}

// resetFlags puts every flag back to its default so tests do not leak
// values into each other through the package-level command.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.SetArgs(nil)
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	logger.SetVerbose(false)
	logger.SetOutput(os.Stderr)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
