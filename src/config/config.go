// Package config is responsible for finding, parsing and merging the lyricount user
// configuration with the defaults. The user configuration is a YAML file. Its
// default location depends on the host OS:
//
// Linux/BSD/macOS configuration is in $HOME/.lyricount/config.yaml
// Windows configuration is in %APPDATA%/lyricount/config.yaml
//
// Every component receives the Config value it needs when it is constructed. There
// is no package level state.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ironsmile/lyricount/src/helpers"
	"github.com/ironsmile/lyricount/src/version"
)

// FileName is the name of the user configuration file within the user directory.
const FileName = "config.yaml"

// Config represents everything which could be configured in config.yaml.
type Config struct {
	// UserAgent is sent with every outbound request. MusicBrainz requires a
	// meaningful one.
	UserAgent string `yaml:"user_agent"`

	// MusicBrainzURL is the scheme and host of the MusicBrainz web service.
	MusicBrainzURL string `yaml:"musicbrainz_url"`

	// LyricsURL is the scheme and host of the lyrics.ovh compatible service.
	LyricsURL string `yaml:"lyrics_url"`

	// PageSize is the number of works requested per catalog page.
	PageSize int `yaml:"page_size"`

	// MaxPages caps the number of catalog pages fetched for a single artist.
	MaxPages int `yaml:"max_pages"`

	// RequestTimeout bounds every single outbound request.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MusicBrainzDelay is the minimal time between two MusicBrainz requests.
	MusicBrainzDelay time.Duration `yaml:"musicbrainz_delay"`

	// Concurrency is the maximum number of lyrics requests in flight for one
	// artist.
	Concurrency int `yaml:"concurrency"`

	// ArtistConcurrency is the maximum number of artists processed at the
	// same time.
	ArtistConcurrency int `yaml:"artist_concurrency"`

	// LyricsRateLimit is the maximum number of lyrics requests per second.
	// Zero means no limit.
	LyricsRateLimit float64 `yaml:"lyrics_rate_limit"`

	// HistogramBins is the number of bins used for histograms.
	HistogramBins int `yaml:"histogram_bins"`

	// CacheDatabase is a path to an SQLite database used for caching word
	// counts between runs. Caching is disabled when empty.
	CacheDatabase string `yaml:"cache_database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UserAgent: fmt.Sprintf(
			"lyricount/%s ( https://github.com/ironsmile/lyricount )",
			version.Version,
		),
		MusicBrainzURL:    "https://musicbrainz.org",
		LyricsURL:         "https://api.lyrics.ovh",
		PageSize:          100,
		MaxPages:          50,
		RequestTimeout:    10 * time.Second,
		MusicBrainzDelay:  time.Second,
		Concurrency:       8,
		ArtistConcurrency: 4,
		HistogramBins:     36,
	}
}

// FindAndParse returns the default configuration with the user configuration
// applied on top of it. Only keys present in the file change the defaults. Keys
// set to zero values such as `musicbrainz_delay: 0` do override them. When path
// is empty the configuration file is searched for in the user directory and it
// is not an error for it to be missing. An explicitly given path must exist.
func FindAndParse(afs afero.Fs, path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		userPath, err := UserConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = userPath
	}

	err := parse(afs, path, &cfg)
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	return cfg, nil
}

// parse reads the YAML file at filename into cfg. Values missing from the file
// are left untouched.
func parse(afs afero.Fs, filename string, cfg *Config) error {
	cfgBytes, err := afero.ReadFile(afs, filename)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(cfgBytes, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return nil
}

// Validate returns an error describing the first invalid value in cfg.
func (cfg Config) Validate() error {
	for name, rawURL := range map[string]string{
		"musicbrainz_url": cfg.MusicBrainzURL,
		"lyrics_url":      cfg.LyricsURL,
	} {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s: %q is not an absolute URL", name, rawURL)
		}
	}

	switch {
	case cfg.UserAgent == "":
		return errors.New("user_agent must not be empty")
	case cfg.PageSize < 1 || cfg.PageSize > 100:
		return fmt.Errorf("page_size must be between 1 and 100, not %d", cfg.PageSize)
	case cfg.MaxPages < 1:
		return fmt.Errorf("max_pages must be positive, not %d", cfg.MaxPages)
	case cfg.RequestTimeout <= 0:
		return fmt.Errorf("request_timeout must be positive, not %s", cfg.RequestTimeout)
	case cfg.MusicBrainzDelay < 0:
		return fmt.Errorf("musicbrainz_delay must not be negative")
	case cfg.LyricsRateLimit < 0:
		return fmt.Errorf("lyrics_rate_limit must not be negative")
	case cfg.HistogramBins < 1:
		return fmt.Errorf("histogram_bins must be positive, not %d", cfg.HistogramBins)
	}

	return nil
}

// UserConfigPath returns the full path to the place where the user's
// configuration file should be.
func UserConfigPath() (string, error) {
	path, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(path, FileName), nil
}

// DefaultCachePath returns the path of the cache database in the user directory.
func DefaultCachePath() (string, error) {
	path, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0o700); err != nil {
		return "", fmt.Errorf("creating user directory: %w", err)
	}
	return filepath.Join(path, "cache.db"), nil
}
