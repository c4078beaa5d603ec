// Command authorlist prints the author listing for a paper submission.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/authorlist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/authorlist/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/authorlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/authorlist/internal/adapters/driven/watcher"
	"github.com/custodia-labs/authorlist/internal/adapters/driving/cli"
	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/core/services"
	"github.com/custodia-labs/authorlist/internal/parsers/authorline"
	"github.com/custodia-labs/authorlist/internal/parsers/instituteline"
	"github.com/custodia-labs/authorlist/internal/renderers/pending"
	"github.com/custodia-labs/authorlist/internal/renderers/simple"
)

// Set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	listing := services.NewListingService(
		filesystem.NewLineSource(),
		authorline.New(),
		instituteline.New(),
		simple.New(),
		pending.New(),
	)
	watch := services.NewWatchService(listing, watcher.New(watcher.DefaultDebounce))

	cli.SetVersion(version)
	cli.SetServices(listing, watch, loadSettings)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadSettings reads stored defaults from configPath. Without a config file
// the defaults come from an empty in-memory store.
func loadSettings(configPath string) (driving.SettingsService, error) {
	if configPath == "" {
		return services.NewSettingsService(memory.NewConfigStore()), nil
	}
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}
