package services

import (
	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for stored option defaults.
const (
	keyAuthorsPath    = "input.authors"
	keyInstitutesPath = "input.institutes"
	keyWindows        = "output.windows"
)

// SettingsService resolves run options from stored defaults and flags.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service reading defaults from configStore.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Defaults returns the options held in the config store.
func (s *SettingsService) Defaults() domain.ListingOptions {
	return domain.ListingOptions{
		AuthorsPath:    s.configStore.GetString(keyAuthorsPath),
		InstitutesPath: s.configStore.GetString(keyInstitutesPath),
		Mode:           domain.ModeFromWindowsFlag(s.configStore.GetBool(keyWindows)),
	}
}

// Resolve applies the command-line overrides to the defaults. Both input
// paths must be known afterwards.
func (s *SettingsService) Resolve(overrides driving.OptionOverrides) (domain.ListingOptions, error) {
	logger.Debug("option defaults from %s", s.configStore.Path())
	opts := s.Defaults()
	if overrides.AuthorsPath != "" {
		opts.AuthorsPath = overrides.AuthorsPath
	}
	if overrides.InstitutesPath != "" {
		opts.InstitutesPath = overrides.InstitutesPath
	}
	if overrides.Windows != nil {
		opts.Mode = domain.ModeFromWindowsFlag(*overrides.Windows)
	}

	if err := opts.Validate(); err != nil {
		return domain.ListingOptions{}, err
	}
	return opts, nil
}
