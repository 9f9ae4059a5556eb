package mediainfo

import (
	"strconv"
	"strings"
)

// InfoKind selects which half of a field is returned by a positional lookup.
type InfoKind int

const (
	InfoName InfoKind = iota
	InfoText
)

const (
	ParamChaptersPosBegin = "Chapters_Pos_Begin"
	ParamChaptersPosEnd   = "Chapters_Pos_End"
)

// Engine answers MediaInfo-style key/value queries against an opened media
// file. Absent values are returned as the empty string.
type Engine interface {
	Get(kind StreamKind, stream int, parameter string) string
	GetAt(kind StreamKind, stream, position int, info InfoKind) string
}

// Lookuper is implemented by engines that can tell an absent field apart
// from an empty one.
type Lookuper interface {
	Lookup(kind StreamKind, stream int, parameter string) (string, bool)
}

// Counter is implemented by engines that know how many streams of a kind
// the media holds.
type Counter interface {
	Count(kind StreamKind) int
}

// ReportEngine serves queries from an in-memory Report.
type ReportEngine struct {
	report Report
}

func NewReportEngine(report Report) *ReportEngine {
	return &ReportEngine{report: report}
}

func (e *ReportEngine) Report() Report {
	return e.report
}

func (e *ReportEngine) Count(kind StreamKind) int {
	if kind == StreamGeneral {
		return 1
	}
	return len(e.report.StreamsOf(kind))
}

func (e *ReportEngine) Get(kind StreamKind, stream int, parameter string) string {
	value, _ := e.Lookup(kind, stream, parameter)
	return value
}

func (e *ReportEngine) Lookup(kind StreamKind, stream int, parameter string) (string, bool) {
	fields, ok := e.fields(kind, stream)
	if !ok {
		return "", false
	}
	switch parameter {
	case ParamChaptersPosBegin, ParamChaptersPosEnd:
		begin, end, ok := chapterRange(fields)
		if !ok {
			return "", false
		}
		if parameter == ParamChaptersPosBegin {
			return strconv.Itoa(begin), true
		}
		return strconv.Itoa(end), true
	}
	if value, ok := lookupField(fields, parameter); ok {
		return value, true
	}
	// JSON output spells "Format/Info" as "Format_Info".
	if strings.Contains(parameter, "/") {
		return lookupField(fields, strings.ReplaceAll(parameter, "/", "_"))
	}
	return "", false
}

func (e *ReportEngine) GetAt(kind StreamKind, stream, position int, info InfoKind) string {
	fields, ok := e.fields(kind, stream)
	if !ok || position < 0 || position >= len(fields) {
		return ""
	}
	switch info {
	case InfoName:
		return fields[position].Name
	case InfoText:
		return fields[position].Value
	}
	return ""
}

func (e *ReportEngine) fields(kind StreamKind, stream int) ([]Field, bool) {
	if stream < 0 {
		return nil, false
	}
	if kind == StreamGeneral {
		if stream != 0 {
			return nil, false
		}
		return e.report.General.Fields, true
	}
	index := 0
	for _, s := range e.report.Streams {
		if s.Kind != kind {
			continue
		}
		if index == stream {
			return s.Fields, true
		}
		index++
	}
	return nil, false
}
