// Package media finds and catalogs video files under the local media path.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/karrick/godirwalk"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/pkg/title"
)

// VideoExtensions are the file extensions treated as playable video.
var VideoExtensions = []string{".mp4", ".mkv", ".avi", ".mov"}

var episodeNumber = regexp.MustCompile(`(\d{3,4}(?:\.\d+)?)`)

const posterWorkers = 4

// File is a video file on disk.
type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// HumanSize formats the file size for display ("1.4 GB").
func (f File) HumanSize() string {
	return humanize.Bytes(uint64(f.Size))
}

// Match is a file found for a title. Episode is set for series only.
type Match struct {
	File
	Episode string `json:"episode,omitempty"`
}

// PosterFinder looks up poster URLs for catalog groups.
type PosterFinder interface {
	Poster(ctx context.Context, q metadata.Query) (string, error)
}

// Scanner walks a media root. The root can be changed at runtime from the
// settings page.
type Scanner struct {
	mu   sync.RWMutex
	root string
	log  *slog.Logger
}

// NewScanner creates a scanner for root.
func NewScanner(root string, log *slog.Logger) *Scanner {
	return &Scanner{root: root, log: log}
}

// Root returns the media root.
func (s *Scanner) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// SetRoot changes the media root.
func (s *Scanner) SetRoot(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
}

// IsVideo reports whether name has a video extension.
func IsVideo(name string) bool {
	return slices.Contains(VideoExtensions, strings.ToLower(filepath.Ext(name)))
}

// checkedRoot returns the root if it is an existing directory.
func (s *Scanner) checkedRoot() (string, error) {
	root := s.Root()
	if root == "" {
		return "", ErrNoRoot
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNoRoot, root)
	}
	return root, nil
}

// videos lists every video file under the root in lexical order.
// Unreadable directories are skipped.
func (s *Scanner) videos() ([]File, error) {
	root, err := s.checkedRoot()
	if err != nil {
		return nil, err
	}

	var files []File
	err = godirwalk.Walk(filepath.Clean(root), &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() || !IsVideo(de.Name()) {
				return nil
			}
			if err := validateRealPath(osPathname, root); err != nil {
				if s.log != nil {
					s.log.Warn("skipping link outside media root", "path", osPathname)
				}
				return nil
			}
			f := File{Name: de.Name(), Path: osPathname}
			if fi, err := os.Stat(osPathname); err == nil {
				f.Size = fi.Size()
			}
			files = append(files, f)
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			if s.log != nil {
				s.log.Warn("skipping unreadable path", "path", osPathname, "error", err)
			}
			return godirwalk.SkipNode
		},
		FollowSymbolicLinks: true,
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}

// Find returns the video files whose name contains name, comparing only
// lower-case letters and digits. kind must be KindMovie or KindSeries; other
// kinds match nothing. Series matches carry the episode number from the file
// name ("Unknown" if none) and are ordered by it.
func (s *Scanner) Find(name, kind string) ([]Match, error) {
	files, err := s.videos()
	if err != nil {
		return nil, err
	}
	if kind != KindMovie && kind != KindSeries {
		return []Match{}, nil
	}

	want := title.Compact(name)
	results := []Match{}
	for _, f := range files {
		base := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
		if !strings.Contains(title.Compact(base), want) {
			continue
		}
		m := Match{File: f}
		if kind == KindSeries {
			m.Episode = "Unknown"
			if ep := episodeNumber.FindString(f.Name); ep != "" {
				m.Episode = ep
			}
		}
		results = append(results, m)
	}

	if kind == KindSeries {
		slices.SortStableFunc(results, func(a, b Match) int {
			ea, eb := episodeValue(a.Episode), episodeValue(b.Episode)
			switch {
			case ea < eb:
				return -1
			case ea > eb:
				return 1
			}
			return 0
		})
	}
	return results, nil
}

func episodeValue(ep string) float64 {
	v, err := strconv.ParseFloat(ep, 64)
	if err != nil {
		return 0
	}
	return v
}

// Movie groups the files of one movie.
type Movie struct {
	Name      string
	Year      string
	Files     []File
	PosterURL string
}

// Episode is one episode file of a series.
type Episode struct {
	File       File
	Season     int
	Episode    int
	EpisodeStr string
}

// Series groups the episode files of one show.
type Series struct {
	Name      string
	Episodes  []Episode
	PosterURL string
}

// Catalog is the local media grouped for the local videos page.
type Catalog struct {
	Movies []Movie
	Series []Series
}

// Catalog groups all video files by parsed name, movies and series apart,
// in the order they were found. When posters is non-nil each group gets a
// poster URL; lookups run concurrently and failures leave it empty.
func (s *Scanner) Catalog(ctx context.Context, posters PosterFinder) (*Catalog, error) {
	files, err := s.videos()
	if err != nil {
		return nil, err
	}

	cat := &Catalog{}
	movieIdx := map[string]int{}
	seriesIdx := map[string]int{}
	for _, f := range files {
		info := ParseFilename(f.Name)
		if info.Type == KindMovie {
			if i, ok := movieIdx[info.Name]; ok {
				cat.Movies[i].Files = append(cat.Movies[i].Files, f)
				continue
			}
			movieIdx[info.Name] = len(cat.Movies)
			cat.Movies = append(cat.Movies, Movie{Name: info.Name, Year: info.Year, Files: []File{f}})
			continue
		}

		ep := Episode{File: f, Season: info.Season, Episode: info.Episode, EpisodeStr: info.EpisodeStr}
		if i, ok := seriesIdx[info.Name]; ok {
			cat.Series[i].Episodes = append(cat.Series[i].Episodes, ep)
			continue
		}
		seriesIdx[info.Name] = len(cat.Series)
		cat.Series = append(cat.Series, Series{Name: info.Name, Episodes: []Episode{ep}})
	}

	if posters != nil {
		s.lookupPosters(ctx, cat, posters)
	}
	return cat, nil
}

func (s *Scanner) lookupPosters(ctx context.Context, cat *Catalog, posters PosterFinder) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(posterWorkers)

	lookup := func(q metadata.Query, dst *string) {
		g.Go(func() error {
			url, err := posters.Poster(ctx, q)
			if err != nil {
				if s.log != nil {
					s.log.Debug("no poster for local media", "name", q.Name, "error", err)
				}
				return nil
			}
			*dst = url
			return nil
		})
	}

	for i := range cat.Movies {
		m := &cat.Movies[i]
		lookup(metadata.Query{Name: m.Name, Type: KindMovie, Year: m.Year}, &m.PosterURL)
	}
	for i := range cat.Series {
		sr := &cat.Series[i]
		lookup(metadata.Query{Name: sr.Name, Type: "tv"}, &sr.PosterURL)
	}
	_ = g.Wait()
}

// Resolve maps a requested path to a file under the root. A missing file is
// retried with a case-insensitive match on its name within the same
// directory.
func (s *Scanner) Resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotFound)
	}
	root, err := s.checkedRoot()
	if err != nil {
		return "", err
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	full, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	if err := ValidatePath(full, root); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if _, err := os.Stat(full); err != nil {
		alt, ok := findCaseInsensitive(filepath.Dir(full), filepath.Base(full))
		if !ok {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		full = alt
	}
	if err := validateRealPath(full, root); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return full, nil
}
