package v1

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . EntryStore,Metadata,MediaFinder,SettingsManager

import (
	"context"
	"errors"

	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/media"
	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/settings"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// EntryStore defines the entry persistence the API needs.
type EntryStore interface {
	AddEntry(e *library.Entry) error
	GetEntry(id int64) (*library.Entry, error)
	ListEntries(f library.EntryFilter) ([]*library.Entry, int, error)
	UpdateEntry(e *library.Entry) error
	DeleteEntry(id int64) error
}

// Metadata resolves posters and trailers.
type Metadata interface {
	Poster(ctx context.Context, q metadata.Query) (string, error)
	Trailer(ctx context.Context, q metadata.Query) (string, error)
}

// MediaFinder searches the local media path.
type MediaFinder interface {
	Find(name, kind string) ([]media.Match, error)
}

// SettingsManager reads and saves the runtime settings.
type SettingsManager interface {
	Get() settings.Settings
	Save(s settings.Settings) error
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Entries  EntryStore
	Metadata Metadata

	// Optional dependencies (nil if not configured)
	Media    MediaFinder
	Settings SettingsManager
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Entries == nil {
		return errors.New("entry store is required")
	}
	if d.Metadata == nil {
		return errors.New("metadata service is required")
	}
	return nil
}
