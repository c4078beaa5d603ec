package domain

import "fmt"

// RenderMode selects how a listing is printed.
type RenderMode string

const (
	// RenderModeWindows prints the simple comma separated author line.
	RenderModeWindows RenderMode = "windows"

	// RenderModeDefault is the citation-style format that has not been written yet.
	RenderModeDefault RenderMode = "default"
)

// String returns the mode name.
func (m RenderMode) String() string {
	return string(m)
}

// ModeFromWindowsFlag maps the --windows flag onto a RenderMode.
func ModeFromWindowsFlag(windows bool) RenderMode {
	if windows {
		return RenderModeWindows
	}
	return RenderModeDefault
}

// ListingOptions is the configuration of a single run. It is built once at
// startup and handed to every stage.
type ListingOptions struct {
	AuthorsPath    string
	InstitutesPath string
	Mode           RenderMode
}

// Validate checks that both input paths are set.
func (o ListingOptions) Validate() error {
	if o.AuthorsPath == "" {
		return fmt.Errorf("%w: authors file (-a/--authors)", ErrMissingOption)
	}
	if o.InstitutesPath == "" {
		return fmt.Errorf("%w: institutes file (-i/--institutes)", ErrMissingOption)
	}
	return nil
}

// Listing is the result of loading both files and indexing institutes.
type Listing struct {
	// Authors holds the included authors in file order.
	Authors []Author

	// Institutes is every institute read from the institute file.
	Institutes InstituteTable

	// Index covers the institutes referenced by Authors.
	Index *InstituteIndex
}

// UnknownCodes returns referenced codes absent from the institute table,
// in index order.
func (l *Listing) UnknownCodes() []string {
	if l == nil || l.Index == nil {
		return nil
	}
	var missing []string
	for _, code := range l.Index.Codes() {
		if _, ok := l.Institutes.Lookup(code); !ok {
			missing = append(missing, code)
		}
	}
	return missing
}
