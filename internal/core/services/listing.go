package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/authorlist/internal/core/domain"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/core/ports/driving"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// Ensure ListingService implements the interface.
var _ driving.ListingService = (*ListingService)(nil)

// ListingService runs the load, filter, index and render stages.
type ListingService struct {
	lines      driven.LineSource
	authors    driven.AuthorParser
	institutes driven.InstituteParser
	renderers  map[domain.RenderMode]driven.Renderer
}

// NewListingService creates a listing service. Each renderer is registered
// under its own mode; a later renderer for the same mode replaces an earlier one.
func NewListingService(
	lines driven.LineSource,
	authors driven.AuthorParser,
	institutes driven.InstituteParser,
	renderers ...driven.Renderer,
) *ListingService {
	byMode := make(map[domain.RenderMode]driven.Renderer, len(renderers))
	for _, r := range renderers {
		byMode[r.Mode()] = r
	}
	return &ListingService{
		lines:      lines,
		authors:    authors,
		institutes: institutes,
		renderers:  byMode,
	}
}

// LoadInstitutes reads the institute file. Blank lines are skipped and a
// repeated code replaces the earlier entry.
func (s *ListingService) LoadInstitutes(ctx context.Context, path string) (domain.InstituteTable, error) {
	logger.Section("Institutes")

	lines, err := s.lines.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load institutes: %w", err)
	}

	table := make(domain.InstituteTable, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			logger.Warn("%s:%d: blank line skipped", path, i+1)
			continue
		}

		inst, err := s.institutes.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("load institutes: %w",
				&domain.LineError{Path: path, Line: i + 1, Text: line, Err: err})
		}

		if prev, ok := table[inst.Code]; ok {
			logger.Warn("%s:%d: institute %q redefined (was %q)", path, i+1, inst.Code, prev.Address)
		}
		table[inst.Code] = *inst
		logger.Debug("institute %s: %q", inst.Code, inst.Address)
	}

	logger.Info("%d institutes read from %s", len(table), path)
	return table, nil
}

// LoadAuthors reads the author file and returns the authors flagged "yes",
// in file order. Inclusion is checked before the name is parsed, so a
// malformed line only fails the run when it is flagged for inclusion.
func (s *ListingService) LoadAuthors(ctx context.Context, path string) ([]domain.Author, error) {
	logger.Section("Authors")

	lines, err := s.lines.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	var authors []domain.Author
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		if !s.authors.Included(line) {
			logger.Debug("%s:%d: not included", path, i+1)
			continue
		}

		author, err := s.authors.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("load authors: %w",
				&domain.LineError{Path: path, Line: i + 1, Text: line, Err: err})
		}
		author.Line = i + 1
		authors = append(authors, *author)
		logger.Debug("%s:%d: %s %v", path, i+1, author.DisplayName(), author.InstituteCodes)
	}

	logger.Info("%d authors included from %s", len(authors), path)
	return authors, nil
}

// Generate loads the author file, then the institute file, and indexes the
// institutes the included authors reference.
func (s *ListingService) Generate(ctx context.Context, opts domain.ListingOptions) (*domain.Listing, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	authors, err := s.LoadAuthors(ctx, opts.AuthorsPath)
	if err != nil {
		return nil, err
	}

	institutes, err := s.LoadInstitutes(ctx, opts.InstitutesPath)
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		Authors:    authors,
		Institutes: institutes,
		Index:      domain.BuildInstituteIndex(authors),
	}

	logger.Section("Institute Index")
	for _, code := range listing.Index.Codes() {
		pos, _ := listing.Index.Position(code)
		logger.Debug("%d: %s", pos, code)
	}
	for _, code := range listing.UnknownCodes() {
		logger.Warn("institute %q is referenced but not defined in %s", code, opts.InstitutesPath)
	}

	return listing, nil
}

// Render writes listing with the renderer registered for mode.
func (s *ListingService) Render(w io.Writer, listing *domain.Listing, mode domain.RenderMode) error {
	r, ok := s.renderers[mode]
	if !ok {
		return fmt.Errorf("%w: render mode %q", domain.ErrNotImplemented, mode)
	}
	logger.Debug("rendering in %s mode", mode)
	return r.Render(w, listing)
}

// Run generates the listing and renders it in opts.Mode.
func (s *ListingService) Run(ctx context.Context, w io.Writer, opts domain.ListingOptions) error {
	listing, err := s.Generate(ctx, opts)
	if err != nil {
		return err
	}
	return s.Render(w, listing, opts.Mode)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
