// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Metadata providers.
const (
	ProviderTMDB   = "tmdb"
	ProviderOMDB   = "omdb"
	ProviderCustom = "custom"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Metadata MetadataConfig `toml:"metadata"`
	Media    MediaConfig    `toml:"media"`
	Posters  PostersConfig  `toml:"posters"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MetadataConfig selects where posters and trailers come from.
type MetadataConfig struct {
	Provider       string        `toml:"provider"`
	APIKey         string        `toml:"api_key"`
	PosterAPIURL   string        `toml:"poster_api_url"`
	TrailerAPIURL  string        `toml:"trailer_api_url"`
	CacheTTL       time.Duration `toml:"cache_ttl"`
	RequestsPerSec float64       `toml:"requests_per_sec"`
}

type MediaConfig struct {
	LocalPath string `toml:"local_path"`
}

// PostersConfig controls the thumbnail cache. A zero MaxAge keeps
// thumbnails forever.
type PostersConfig struct {
	CacheDir string        `toml:"cache_dir"`
	MaxAge   time.Duration `toml:"max_age"`
}

// Load reads, substitutes, applies defaults and validates the configuration.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads the configuration and applies defaults only.
// Unresolved environment variables are left in place.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/watchlist.db"
	}
	if c.Metadata.Provider == "" {
		c.Metadata.Provider = ProviderTMDB
	}
	if c.Metadata.CacheTTL == 0 {
		c.Metadata.CacheTTL = 24 * time.Hour
	}
	if c.Posters.CacheDir == "" {
		c.Posters.CacheDir = "temp"
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and reports the ones
// that could not be resolved. Unresolved references are left unchanged.
// Comment lines are copied as they are.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	lines := strings.SplitAfter(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, func(match string) string {
			m := envVarPattern.FindStringSubmatch(match)
			name, op, arg := m[1], m[2], m[3]
			value, ok := os.LookupEnv(name)

			switch op {
			case ":-":
				if !ok || value == "" {
					return arg
				}
				return value
			case ":?":
				if !ok || value == "" {
					missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
					return match
				}
				return value
			default:
				if !ok {
					missing = append(missing, name)
					return match
				}
				return value
			}
		})
	}
	return strings.Join(lines, ""), missing
}
