// Package cli is the command-line driving adapter for authorlist.
//
// Commands are package-level cobra commands registered in init. Services
// are injected with SetServices before Execute is called.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// SettingsFactory builds the settings service for a run. configPath is the
// value of --config and may be empty.
type SettingsFactory func(configPath string) (driving.SettingsService, error)

var (
	listingService  driving.ListingService
	watchService    driving.WatchService
	settingsFactory SettingsFactory
)

// SetServices injects the core services used by the commands.
func SetServices(listing driving.ListingService, watch driving.WatchService, settings SettingsFactory) {
	listingService = listing
	watchService = watch
	settingsFactory = settings
}

var (
	authorsPath    string
	institutesPath string
	configPath     string
	windowsFormat  bool
	watchInputs    bool
	verboseOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "authorlist",
	Short: "Generate the author listing for a paper submission",
	Long: `Reads an author file and an institute file and prints the authors
marked for inclusion.

Author lines look like
  'B~.W.~Stappers' jod yes
where ~ stands for a space, jod is an institute code (several may follow)
and the final token must be yes for the author to be listed.

Institute lines are an address followed by the institute code:
  Jodrell Bank Centre for Astrophysics jod`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseOutput)
	},
	RunE: runListing,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&authorsPath, "authors", "a", "", "file with the authors to include, one per line")
	flags.StringVarP(&institutesPath, "institutes", "i", "", "file with the institute addresses and codes")
	flags.BoolVarP(&windowsFormat, "windows", "w", false, "print the windows format")
	flags.StringVarP(&configPath, "config", "c", "", "TOML file with default option values")
	flags.BoolVar(&watchInputs, "watch", false, "print again whenever an input file changes")

	rootCmd.PersistentFlags().BoolVarP(&verboseOutput, "verbose", "v", false, "log parsing details to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runListing(cmd *cobra.Command, _ []string) error {
	if listingService == nil || settingsFactory == nil {
		return errors.New("listing service not configured")
	}

	settings, err := settingsFactory(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := driving.OptionOverrides{
		AuthorsPath:    authorsPath,
		InstitutesPath: institutesPath,
	}
	if cmd.Flags().Changed("windows") {
		overrides.Windows = &windowsFormat
	}

	opts, err := settings.Resolve(overrides)
	if err != nil {
		return err
	}

	if !watchInputs {
		return listingService.Run(cmd.Context(), cmd.OutOrStdout(), opts)
	}

	if watchService == nil {
		return errors.New("watch service not configured")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.PrintErrln("Watching", opts.AuthorsPath, "and", opts.InstitutesPath, "(Ctrl+C to stop)")
	return watchService.Watch(ctx, cmd.OutOrStdout(), opts, func(err error) {
		cmd.PrintErrln("Error:", err)
	})
}
