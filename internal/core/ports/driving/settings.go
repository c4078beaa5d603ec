package driving

import "github.com/custodia-labs/authorlist/internal/core/domain"

// OptionOverrides carries the options given on the command line.
// Empty strings and nil pointers mean "not given".
type OptionOverrides struct {
	AuthorsPath    string
	InstitutesPath string
	Windows        *bool
}

// SettingsService resolves the options of a run.
type SettingsService interface {
	// Defaults returns the options stored in configuration.
	Defaults() domain.ListingOptions

	// Resolve merges overrides onto the stored defaults and validates the result.
	Resolve(overrides OptionOverrides) (domain.ListingOptions, error)
}
