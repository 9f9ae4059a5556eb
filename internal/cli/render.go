package cli

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
	"github.com/autobrr/go-mediainfo-menu/internal/streams"
)

type fileMenus struct {
	Ref   string
	Menus []*streams.Menu
}

func collectMenus(reports []mediainfo.Report) []fileMenus {
	out := make([]fileMenus, 0, len(reports))
	for _, report := range reports {
		file := streams.NewFile(mediainfo.NewReportEngine(report))
		out = append(out, fileMenus{Ref: report.Ref, Menus: file.Menus()})
	}
	return out
}

type menuOut struct {
	ID              int          `json:"id" yaml:"id"`
	Summary         string       `json:"summary,omitempty" yaml:"summary,omitempty"`
	Format          string       `json:"format,omitempty" yaml:"format,omitempty"`
	FormatInfo      string       `json:"format_info,omitempty" yaml:"format_info,omitempty"`
	FormatProfile   string       `json:"format_profile,omitempty" yaml:"format_profile,omitempty"`
	FormatVersion   string       `json:"format_version,omitempty" yaml:"format_version,omitempty"`
	Title           string       `json:"title,omitempty" yaml:"title,omitempty"`
	UniqueID        string       `json:"unique_id,omitempty" yaml:"unique_id,omitempty"`
	CodecID         string       `json:"codec_id,omitempty" yaml:"codec_id,omitempty"`
	CodecCommonName string       `json:"codec_common_name,omitempty" yaml:"codec_common_name,omitempty"`
	Delay           int          `json:"delay_ms" yaml:"delay_ms"`
	Duration        int          `json:"duration_ms" yaml:"duration_ms"`
	Language        string       `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageName    string       `json:"language_name,omitempty" yaml:"language_name,omitempty"`
	Chapters        []chapterOut `json:"chapters" yaml:"chapters"`
}

type chapterOut struct {
	Name    string `json:"name" yaml:"name"`
	Text    string `json:"text" yaml:"text"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	StartMs *int64 `json:"start_ms,omitempty" yaml:"start_ms,omitempty"`
}

type fileOut struct {
	File  string    `json:"file" yaml:"file"`
	Menus []menuOut `json:"menus" yaml:"menus"`
}

func buildChaptersOut(chapters streams.Chapters) []chapterOut {
	out := make([]chapterOut, 0, chapters.Len())
	for _, chapter := range chapters {
		c := chapterOut{Name: chapter.Name, Text: chapter.Text, Title: chapter.Title()}
		if start, ok := chapter.Start(); ok {
			ms := start.Milliseconds()
			c.StartMs = &ms
		}
		out = append(out, c)
	}
	return out
}

func buildMenuOut(menu *streams.Menu, chaptersOnly bool) menuOut {
	if chaptersOnly {
		return menuOut{ID: menu.ID(), Chapters: buildChaptersOut(menu.Chapters())}
	}
	return menuOut{
		ID:              menu.ID(),
		Summary:         menu.String(),
		Format:          menu.Format(),
		FormatInfo:      menu.FormatInfo(),
		FormatProfile:   menu.FormatProfile(),
		FormatVersion:   menu.FormatVersion(),
		Title:           menu.Title(),
		UniqueID:        menu.UniqueId(),
		CodecID:         menu.CodecId(),
		CodecCommonName: menu.CodecCommonName(),
		Delay:           menu.Delay(),
		Duration:        menu.Duration(),
		Language:        menu.Language(),
		LanguageName:    menu.LanguageName(),
		Chapters:        buildChaptersOut(menu.Chapters()),
	}
}

func buildFilesOut(files []fileMenus, chaptersOnly bool) []fileOut {
	out := make([]fileOut, 0, len(files))
	for _, file := range files {
		f := fileOut{File: file.Ref, Menus: make([]menuOut, 0, len(file.Menus))}
		for _, menu := range file.Menus {
			f.Menus = append(f.Menus, buildMenuOut(menu, chaptersOnly))
		}
		out = append(out, f)
	}
	return out
}

func renderMenusJSON(files []fileMenus, chaptersOnly bool) (string, error) {
	data, err := json.MarshalIndent(buildFilesOut(files, chaptersOnly), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func renderMenusYAML(files []fileMenus, chaptersOnly bool) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(buildFilesOut(files, chaptersOnly)); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderMenusText follows MediaInfo's text layout: a title line per menu
// and padded "Name : Value" lines, chapters last.
func renderMenusText(files []fileMenus, chaptersOnly bool) string {
	var buf bytes.Buffer
	for i, file := range files {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(file.Ref)
		buf.WriteString("\n")
		if len(file.Menus) == 0 {
			buf.WriteString("No menu streams\n")
			continue
		}
		for index, menu := range file.Menus {
			buf.WriteString("\n")
			buf.WriteString(mediainfo.StreamTitle(mediainfo.StreamMenu, index+1, len(file.Menus)))
			buf.WriteString("\n")
			if !chaptersOnly {
				writeMenuProperties(&buf, menu)
			}
			for _, chapter := range menu.Chapters() {
				writeLine(&buf, chapter.Name, chapter.Text)
			}
		}
	}
	return buf.String()
}

func writeMenuProperties(buf *bytes.Buffer, menu *streams.Menu) {
	for _, p := range streams.MenuProperties {
		value := p.Value(menu)
		switch p.Name {
		case "ID":
		case "Delay":
			if _, ok := menu.DelayOK(); !ok {
				continue
			}
			value += " ms"
		case "Duration":
			ms, ok := menu.DurationOK()
			if !ok {
				continue
			}
			if formatted := mediainfo.FormatDurationMs(ms); formatted != "" {
				value = formatted
			}
		case "Chapters":
			if menu.Chapters().Len() == 0 {
				continue
			}
		case "Language":
			if name := menu.LanguageName(); name != value {
				value = name + " (" + value + ")"
			}
			if value == "" {
				continue
			}
		default:
			if value == "" {
				continue
			}
		}
		writeLine(buf, p.Name, value)
	}
	if summary := menu.String(); summary != "" {
		writeLine(buf, "Summary", summary)
	}
}

func writeLine(buf *bytes.Buffer, name, value string) {
	buf.WriteString(mediainfo.PadRight(name, 41))
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\n")
}
