package mediainfo

import (
	"context"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
	"github.com/autobrr/go-mediainfo-menu/internal/streams"
)

// Types
type StreamKind = mediainfo.StreamKind
type InfoKind = mediainfo.InfoKind
type Field = mediainfo.Field
type Stream = mediainfo.Stream
type Report = mediainfo.Report
type AnalyzeOptions = mediainfo.AnalyzeOptions
type Engine = mediainfo.Engine
type ReportEngine = mediainfo.ReportEngine
type CountingEngine = streams.CountingEngine

type Menu = streams.Menu
type File = streams.File
type Chapter = streams.Chapter
type Chapters = streams.Chapters
type Property = streams.Property

// Constants
const (
	StreamGeneral = mediainfo.StreamGeneral
	StreamVideo   = mediainfo.StreamVideo
	StreamAudio   = mediainfo.StreamAudio
	StreamText    = mediainfo.StreamText
	StreamImage   = mediainfo.StreamImage
	StreamMenu    = mediainfo.StreamMenu

	InfoName = mediainfo.InfoName
	InfoText = mediainfo.InfoText
)

var ErrNoReports = mediainfo.ErrNoReports

// Loading
func AnalyzeFile(ctx context.Context, path string) ([]Report, error) {
	return mediainfo.AnalyzeFile(ctx, path)
}

func AnalyzeFileWithOptions(ctx context.Context, path string, opts AnalyzeOptions) ([]Report, error) {
	return mediainfo.AnalyzeFileWithOptions(ctx, path, opts)
}

func AnalyzeFilesWithOptions(ctx context.Context, paths []string, opts AnalyzeOptions) ([]Report, int, error) {
	return mediainfo.AnalyzeFilesWithOptions(ctx, paths, opts)
}

func ParseJSON(data []byte) ([]Report, error) {
	return mediainfo.ParseJSON(data)
}

// Views
func NewReportEngine(report Report) *ReportEngine {
	return mediainfo.NewReportEngine(report)
}

func NewMenu(engine Engine, id int) *Menu {
	return streams.NewMenu(engine, id)
}

func NewFile(engine CountingEngine) *File {
	return streams.NewFile(engine)
}

func MenuProperties() []Property {
	return append([]Property(nil), streams.MenuProperties...)
}

// Rendering
func RenderText(reports []Report) string {
	return mediainfo.RenderText(reports)
}

func RenderJSON(reports []Report) string {
	return mediainfo.RenderJSON(reports)
}

func FormatVersion(version string) string {
	return mediainfo.FormatVersion(version)
}

func SetAppVersion(version string) {
	mediainfo.SetAppVersion(version)
}
