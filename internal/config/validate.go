package config

import (
	"fmt"
	"net/url"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validProviders = map[string]bool{
	ProviderTMDB: true, ProviderOMDB: true, ProviderCustom: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if !validProviders[c.Metadata.Provider] {
		errs = append(errs, fmt.Sprintf("metadata.provider: must be one of tmdb, omdb, custom; got %q", c.Metadata.Provider))
	}
	if c.Metadata.Provider == ProviderCustom {
		for field, raw := range map[string]string{
			"metadata.poster_api_url":  c.Metadata.PosterAPIURL,
			"metadata.trailer_api_url": c.Metadata.TrailerAPIURL,
		} {
			if raw == "" {
				continue
			}
			if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
				errs = append(errs, fmt.Sprintf("%s: invalid URL %q", field, raw))
			}
		}
	}
	if c.Metadata.RequestsPerSec < 0 {
		errs = append(errs, "metadata.requests_per_sec: must not be negative")
	}

	if c.Media.LocalPath != "" {
		if _, err := os.Stat(c.Media.LocalPath); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("media.local_path: directory %q does not exist", c.Media.LocalPath))
		}
	}

	if c.Posters.MaxAge < 0 {
		errs = append(errs, "posters.max_age: must not be negative")
	}

	return errs
}
