package streams

import (
	"strings"
	"time"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

// Chapter is one entry of a menu stream. MediaInfo names chapters by their
// start time and stores the title, optionally language-prefixed, as text.
type Chapter struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Start parses the chapter name as an HH:MM:SS.mmm timestamp.
func (c Chapter) Start() (time.Duration, bool) {
	return mediainfo.ParseChapterTime(c.Name)
}

// Title returns the text without a leading "xx:" language prefix.
func (c Chapter) Title() string {
	lang, title, ok := strings.Cut(c.Text, ":")
	if !ok || len(lang) < 2 || len(lang) > 3 || !isLower(lang) {
		return c.Text
	}
	return title
}

func isLower(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 'a' || value[i] > 'z' {
			return false
		}
	}
	return true
}

// Chapters is the ordered chapter list of a menu stream. Entries keep the
// engine's index order and duplicate names are retained.
type Chapters []Chapter

func (c Chapters) Len() int {
	return len(c)
}

func (c Chapters) Names() []string {
	names := make([]string, 0, len(c))
	for _, chapter := range c {
		names = append(names, chapter.Name)
	}
	return names
}

// Text returns the text for name. With duplicate names the last entry wins.
func (c Chapters) Text(name string) (string, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Name == name {
			return c[i].Text, true
		}
	}
	return "", false
}

// Map flattens the list into a name to text map, last entry winning.
func (c Chapters) Map() map[string]string {
	out := make(map[string]string, len(c))
	for _, chapter := range c {
		out[chapter.Name] = chapter.Text
	}
	return out
}
