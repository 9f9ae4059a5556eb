package streams

import (
	"fmt"
	"strings"
	"sync"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

// maxChapters bounds how many positions a single chapter build will query.
const maxChapters = 1 << 16

// Menu is a read-only view of one menu stream. Scalar properties query the
// engine on every call; the chapter list is built once on first use.
//
// The engine must stay open for as long as the view is used.
type Menu struct {
	base

	chaptersOnce sync.Once
	chapters     Chapters
}

// NewMenu wraps the menu stream with index id of an opened engine.
func NewMenu(engine mediainfo.Engine, id int) *Menu {
	return &Menu{base: base{engine: engine, kind: mediainfo.StreamMenu, id: id}}
}

// ID is the stream index the view was built with.
func (m *Menu) ID() int { return m.id }

func (m *Menu) Format() string          { return m.getString(paramFormat) }
func (m *Menu) FormatInfo() string      { return m.getString(paramFormatInfo) }
func (m *Menu) FormatProfile() string   { return m.getString(paramFormatProfile) }
func (m *Menu) FormatVersion() string   { return m.getString(paramFormatVersion) }
func (m *Menu) Title() string           { return m.getString(paramTitle) }
func (m *Menu) UniqueId() string        { return m.getString(paramUniqueID) }
func (m *Menu) CodecId() string         { return m.getString(paramCodecID) }
func (m *Menu) CodecCommonName() string { return m.getString(paramCodecCommonName) }
func (m *Menu) Language() string        { return m.getString(paramLanguage) }

// Delay is the stream delay in milliseconds, 0 when absent or unparsable.
func (m *Menu) Delay() int { return m.getInt(paramDelay) }

// Duration is the stream duration in milliseconds, 0 when absent or
// unparsable.
func (m *Menu) Duration() int { return m.getInt(paramDuration) }

func (m *Menu) DelayOK() (int, bool)    { return m.lookupInt(paramDelay) }
func (m *Menu) DurationOK() (int, bool) { return m.lookupInt(paramDuration) }

// Lookup returns any engine parameter of this stream, reporting absence.
func (m *Menu) Lookup(parameter string) (string, bool) {
	return m.lookup(parameter)
}

// Chapters returns the chapters found between Chapters_Pos_Begin and
// Chapters_Pos_End. The engine is queried only on the first call.
func (m *Menu) Chapters() Chapters {
	m.chaptersOnce.Do(func() {
		m.chapters = m.buildChapters()
	})
	return m.chapters
}

func (m *Menu) buildChapters() Chapters {
	begin := m.getInt(mediainfo.ParamChaptersPosBegin)
	end := m.getInt(mediainfo.ParamChaptersPosEnd)
	if begin >= end {
		return Chapters{}
	}
	// end-begin overflows for ranges wider than the int range.
	if span := end - begin; span <= 0 || span > maxChapters {
		end = begin + maxChapters
	}
	chapters := Chapters{}
	for i := begin; i < end; i++ {
		chapters = append(chapters, Chapter{
			Name: m.engine.GetAt(m.kind, m.id, i, mediainfo.InfoName),
			Text: m.engine.GetAt(m.kind, m.id, i, mediainfo.InfoText),
		})
	}
	return chapters
}

// String is a one-line summary such as "Matroska, 'Movie', '3 Chapters'".
func (m *Menu) String() string {
	var sb strings.Builder
	if format := m.Format(); format != "" {
		sb.WriteString(format)
	}
	if profile := m.FormatProfile(); profile != "" {
		fmt.Fprintf(&sb, " %s", profile)
	}
	if title := m.Title(); title != "" {
		fmt.Fprintf(&sb, ", '%s'", title)
	}
	if n := m.Chapters().Len(); n > 0 {
		fmt.Fprintf(&sb, ", '%d Chapters'", n)
	}
	return strings.TrimLeft(sb.String(), ",")
}
