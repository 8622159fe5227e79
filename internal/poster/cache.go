// Package poster keeps small JPEG thumbnails of remote poster images.
package poster

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/nfnt/resize"

	"github.com/vmunix/watchlist/internal/metadata"
)

const (
	// URLPrefix is where cached thumbnails are served.
	URLPrefix = "/temp/"

	thumbWidth      = 200
	thumbHeight     = 300
	downloadTimeout = 5 * time.Second
)

// ErrInvalidName is returned for file names that are not cache entries.
var ErrInvalidName = errors.New("invalid poster file name")

var fileNamePattern = regexp.MustCompile(`^[0-9a-f]{32}\.jpg$`)

// Lookup finds a replacement poster URL.
type Lookup interface {
	Poster(ctx context.Context, q metadata.Query) (string, error)
}

// Cache downloads posters once and serves them from disk.
type Cache struct {
	dir        string
	httpClient *http.Client
	lookup     Lookup
	log        *slog.Logger
}

// NewCache creates a cache rooted at dir. lookup may be nil, in which case
// broken poster URLs are never regenerated.
func NewCache(dir string, lookup Lookup, log *slog.Logger) *Cache {
	return &Cache{
		dir:        dir,
		httpClient: &http.Client{Timeout: downloadTimeout},
		lookup:     lookup,
		log:        log,
	}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// FileName returns the cache file name for a poster URL.
func FileName(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:]) + ".jpg"
}

// Path returns the on-disk path of a cache file, rejecting anything that is
// not a cache file name.
func (c *Cache) Path(name string) (string, error) {
	if !fileNamePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(c.dir, name), nil
}

// Resolve returns the local URL of the thumbnail for url, downloading it when
// it is not cached yet. When the download fails and fallback is set, the
// lookup is asked for a fresh poster URL and that is tried once. If nothing
// works the original url is returned.
func (c *Cache) Resolve(ctx context.Context, url string, fallback *metadata.Query) string {
	if local, err := c.fetch(ctx, url); err == nil {
		return local
	} else if c.log != nil {
		c.log.Warn("poster fetch failed", "url", url, "error", err)
	}

	if fallback == nil || c.lookup == nil {
		return url
	}
	newURL, err := c.lookup.Poster(ctx, *fallback)
	if err != nil || newURL == "" || newURL == url {
		return url
	}

	if c.log != nil {
		c.log.Info("regenerating poster", "name", fallback.Name)
	}
	if local, err := c.fetch(ctx, newURL); err == nil {
		return local
	} else if c.log != nil {
		c.log.Warn("poster fetch failed", "url", newURL, "error", err)
	}
	return url
}

// fetch returns the local URL for url, downloading and shrinking the image if
// the cache file does not exist yet.
func (c *Cache) fetch(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", errors.New("empty url")
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	name := FileName(url)
	path := filepath.Join(c.dir, name)
	if _, err := os.Stat(path); err == nil {
		return URLPrefix + name, nil
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s", resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	thumb := resize.Thumbnail(thumbWidth, thumbHeight, img, resize.Lanczos3)

	if err := writeJPEG(path, thumb); err != nil {
		return "", err
	}
	return URLPrefix + name, nil
}

// writeJPEG writes through a temp file so a half-written thumbnail is never
// served.
func writeJPEG(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".poster-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: jpeg.DefaultQuality}); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename poster: %w", err)
	}
	return nil
}

// Prune removes thumbnails whose modification time is older than maxAge and
// returns how many were removed. Files that are not cache entries are left
// alone.
func (c *Cache) Prune(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache dir: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !fileNamePattern.MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
