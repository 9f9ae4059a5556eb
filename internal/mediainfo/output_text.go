package mediainfo

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderText renders reports in MediaInfo's default text layout. Chapter
// fields of menu streams are listed by their start time.
func RenderText(reports []Report) string {
	var buf bytes.Buffer
	for i, report := range reports {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeStream(&buf, string(report.General.Kind), report.General)
		forEachStreamWithKindIndex(report.Streams, func(stream Stream, index, total int) {
			buf.WriteString("\n")
			writeStream(&buf, streamTitle(stream.Kind, index, total), stream)
		})
		buf.WriteString("\n")
		buf.WriteString(reportByLine())
		buf.WriteString("\n")
	}
	output := strings.TrimRight(buf.String(), "\n")
	return output + "\n\n"
}

func reportByLine() string {
	return fmt.Sprintf("ReportBy : %s - %s", AppName, FormatVersion(AppVersion))
}

func writeStream(buf *bytes.Buffer, title string, stream Stream) {
	buf.WriteString(title)
	buf.WriteString("\n")
	for _, field := range stream.Fields {
		buf.WriteString(PadRight(field.Name, 41))
		buf.WriteString(": ")
		buf.WriteString(field.Value)
		buf.WriteString("\n")
	}
}

// PadRight pads value with spaces up to width.
func PadRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}

// StreamTitle is "Menu" for a lone stream of its kind and "Menu #2" when
// there are several. Index is 1-based.
func StreamTitle(kind StreamKind, index, total int) string {
	return streamTitle(kind, index, total)
}

func streamTitle(kind StreamKind, index, total int) string {
	if total <= 1 || kind == StreamGeneral {
		return string(kind)
	}
	return fmt.Sprintf("%s #%d", kind, index)
}

// forEachStreamWithKindIndex calls fn with the 1-based index of each stream
// among streams of the same kind and the total of that kind.
func forEachStreamWithKindIndex(streams []Stream, fn func(stream Stream, index, total int)) {
	totals := map[StreamKind]int{}
	for _, stream := range streams {
		totals[stream.Kind]++
	}
	seen := map[StreamKind]int{}
	for _, stream := range streams {
		seen[stream.Kind]++
		fn(stream, seen[stream.Kind], totals[stream.Kind])
	}
}
