package mediainfo

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type jsonKV struct {
	Key string
	Val string
	Raw bool
}

// RenderJSON renders reports in the MediaInfo JSON layout that ParseJSON
// reads. Menu chapters are written under "extra"; durations go back to
// seconds.
func RenderJSON(reports []Report) string {
	if len(reports) == 1 {
		return renderJSONPayload(reports[0]) + "\n"
	}
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, report := range reports {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString(renderJSONPayload(report))
	}
	buf.WriteString("\n]\n")
	return buf.String()
}

func renderJSONPayload(report Report) string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	writeJSONField(&buf, "creatingLibrary", renderJSONObject(jsonCreatingLibraryFields(), false), true)
	buf.WriteString(",\n")
	writeJSONField(&buf, "media", renderJSONMedia(report), true)
	buf.WriteString("\n}")
	return buf.String()
}

func jsonCreatingLibraryFields() []jsonKV {
	return []jsonKV{
		{Key: "name", Val: AppName},
		{Key: "version", Val: FormatVersion(AppVersion)},
		{Key: "url", Val: AppURL},
	}
}

func renderJSONMedia(report Report) string {
	tracks := []string{renderJSONObject(buildJSONTrack(report.General, 0), true)}
	forEachStreamWithKindIndex(report.Streams, func(stream Stream, index, total int) {
		typeOrder := 0
		if total > 1 {
			typeOrder = index
		}
		tracks = append(tracks, renderJSONObject(buildJSONTrack(stream, typeOrder), true))
	})

	var buf bytes.Buffer
	buf.WriteString("{")
	writeJSONField(&buf, "@ref", report.Ref, false)
	buf.WriteString(",")
	writeJSONField(&buf, "track", renderJSONArray(tracks), true)
	buf.WriteString("}")
	return buf.String()
}

func buildJSONTrack(stream Stream, typeOrder int) []jsonKV {
	fields := []jsonKV{{Key: "@type", Val: string(stream.Kind)}}
	if typeOrder > 0 {
		fields = append(fields, jsonKV{Key: "@typeorder", Val: strconv.Itoa(typeOrder)})
	}
	extra := []jsonKV{}
	for _, field := range stream.Fields {
		if isChapterTime(field.Name) {
			extra = append(extra, jsonKV{Key: chapterTimeToJSONKey(field.Name), Val: field.Value})
			continue
		}
		value := field.Value
		if field.Name == "Duration" || field.Name == "Delay" {
			if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
				value = formatJSONSeconds(float64(ms) / 1000)
			}
		}
		fields = append(fields, jsonKV{Key: field.Name, Val: value})
	}
	if len(extra) > 0 {
		fields = append(fields, jsonKV{Key: "extra", Val: renderJSONObject(extra, false), Raw: true})
	}
	return fields
}

func formatJSONSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}

func renderJSONArray(items []string) string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, item := range items {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(item)
	}
	buf.WriteString("]")
	return buf.String()
}

func renderJSONObject(fields []jsonKV, multiline bool) string {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, field := range fields {
		if i > 0 {
			if multiline {
				buf.WriteString(",\n")
			} else {
				buf.WriteString(",")
			}
		}
		writeJSONField(&buf, field.Key, field.Val, field.Raw)
	}
	buf.WriteString("}")
	return buf.String()
}

func writeJSONField(buf *bytes.Buffer, key, value string, raw bool) {
	buf.WriteString(renderJSONString(key))
	buf.WriteString(":")
	if raw {
		buf.WriteString(value)
		return
	}
	buf.WriteString(renderJSONString(value))
}

func renderJSONString(value string) string {
	data, _ := json.Marshal(value)
	return string(data)
}
