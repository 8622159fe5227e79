// Package settings applies and persists the settings editable from the web
// page: metadata provider, API key, custom endpoints and the media path.
package settings

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/vmunix/watchlist/internal/config"
	"github.com/vmunix/watchlist/internal/metadata"
)

// Settings are the runtime-editable settings.
type Settings struct {
	Provider       string `json:"api_provider"`
	APIKey         string `json:"api_key"`
	PosterAPIURL   string `json:"poster_api_url"`
	TrailerAPIURL  string `json:"trailer_api_url"`
	LocalMediaPath string `json:"local_media_path"`
}

// Metadata returns the provider part of the settings.
func (s Settings) Metadata() metadata.Settings {
	return metadata.Settings{
		Provider:      s.Provider,
		APIKey:        s.APIKey,
		PosterAPIURL:  s.PosterAPIURL,
		TrailerAPIURL: s.TrailerAPIURL,
	}
}

// FromConfig extracts the editable settings from a loaded config.
func FromConfig(cfg *config.Config) Settings {
	return Settings{
		Provider:       cfg.Metadata.Provider,
		APIKey:         cfg.Metadata.APIKey,
		PosterAPIURL:   cfg.Metadata.PosterAPIURL,
		TrailerAPIURL:  cfg.Metadata.TrailerAPIURL,
		LocalMediaPath: cfg.Media.LocalPath,
	}
}

// MetadataUpdater receives provider changes.
type MetadataUpdater interface {
	Update(metadata.Settings)
}

// RootSetter receives media path changes.
type RootSetter interface {
	SetRoot(root string)
}

// Manager holds the current settings and pushes changes to the services
// that depend on them.
type Manager struct {
	mu      sync.Mutex
	cfg     config.Config
	path    string // config file; empty keeps changes in memory
	meta    MetadataUpdater
	scanner RootSetter
	log     *slog.Logger
}

// NewManager creates a manager seeded from cfg. Saved settings are written
// back to path unless it is empty.
func NewManager(cfg *config.Config, path string, meta MetadataUpdater, scanner RootSetter, log *slog.Logger) *Manager {
	return &Manager{
		cfg:     *cfg,
		path:    path,
		meta:    meta,
		scanner: scanner,
		log:     log,
	}
}

// Get returns the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return FromConfig(&m.cfg)
}

// Save validates and applies s. Custom endpoint URLs are only kept for the
// custom provider; other providers leave the stored ones untouched.
func (m *Manager) Save(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.cfg
	next.Metadata.Provider = s.Provider
	next.Metadata.APIKey = s.APIKey
	if s.Provider == config.ProviderCustom {
		next.Metadata.PosterAPIURL = s.PosterAPIURL
		next.Metadata.TrailerAPIURL = s.TrailerAPIURL
	}
	next.Media.LocalPath = s.LocalMediaPath

	if errs := next.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: m.path, Errors: errs}
	}

	if m.path != "" {
		if err := next.Write(m.path); err != nil {
			return fmt.Errorf("write settings: %w", err)
		}
	}

	m.cfg = next
	applied := FromConfig(&m.cfg)
	if m.meta != nil {
		m.meta.Update(applied.Metadata())
	}
	if m.scanner != nil {
		m.scanner.SetRoot(applied.LocalMediaPath)
	}
	if m.log != nil {
		m.log.Info("settings saved", "provider", applied.Provider, "media_path", applied.LocalMediaPath)
	}
	return nil
}
