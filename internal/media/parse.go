package media

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kinds of local media.
const (
	KindMovie  = "movie"
	KindSeries = "series"
)

var (
	separators   = regexp.MustCompile(`[_\-.]+`)
	yearPattern  = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	sxxexx       = regexp.MustCompile(`\bs(\d{1,2})e(\d{1,2})\b`)
	nxnn         = regexp.MustCompile(`\b(\d{1,2})x(\d{1,2})\b`)
	longNumber   = regexp.MustCompile(`\b\d{3,5}\b`)
	spaces       = regexp.MustCompile(`\s+`)
	junkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(web[-_. ]?dl|nf|hdtv|mycima|wecima|show|tube|autos|ink|world|ar|weciima|mp4|ova|web)\b`),
		regexp.MustCompile(`(?i)\b(1080p|720p|4k|bluray|webrip|hdrip)\b`),
		regexp.MustCompile(`(?i)\bsp\b`),
	}
)

// Info is what a file name says about its content.
type Info struct {
	Name       string
	Type       string // KindMovie or KindSeries
	Year       string
	Season     int
	Episode    int
	EpisodeStr string // "S01E02"
}

// ParseFilename extracts a display name, year and episode from a video file
// name such as "Breaking.Bad.S01E02.720p.mkv".
func ParseFilename(filename string) Info {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = separators.ReplaceAllString(name, " ")
	name = strings.ToLower(name)

	info := Info{Type: KindMovie}

	if m := yearPattern.FindStringSubmatch(name); m != nil {
		info.Year = m[1]
		name = strings.ReplaceAll(name, info.Year, "")
	}

	m := sxxexx.FindStringSubmatch(name)
	if m == nil {
		m = nxnn.FindStringSubmatch(name)
	}
	if m != nil {
		info.Type = KindSeries
		info.Season, _ = strconv.Atoi(m[1])
		info.Episode, _ = strconv.Atoi(m[2])
		info.EpisodeStr = fmt.Sprintf("S%02dE%02d", info.Season, info.Episode)
		name = strings.ReplaceAll(name, m[0], "")
	}

	// standalone episode numbers, e.g. "one piece 1015"
	name = longNumber.ReplaceAllString(name, "")
	for _, p := range junkPatterns {
		name = p.ReplaceAllString(name, "")
	}
	name = strings.TrimSpace(spaces.ReplaceAllString(name, " "))

	info.Name = cases.Title(language.Und).String(name)
	return info
}
