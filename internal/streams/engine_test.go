package streams

import (
	"sync"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

type fakeChapter struct {
	name string
	text string
}

// fakeEngine serves one stream kind and counts every query it answers.
type fakeEngine struct {
	mu        sync.Mutex
	fields    map[string]string
	chapters  map[int]fakeChapter
	gets      int
	getAts    int
	lastID    int
	atStreams map[int]int
}

func newFakeEngine(fields map[string]string) *fakeEngine {
	if fields == nil {
		fields = map[string]string{}
	}
	return &fakeEngine{fields: fields, chapters: map[int]fakeChapter{}, atStreams: map[int]int{}}
}

func (e *fakeEngine) Get(kind mediainfo.StreamKind, stream int, parameter string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gets++
	e.lastID = stream
	return e.fields[parameter]
}

func (e *fakeEngine) GetAt(kind mediainfo.StreamKind, stream, position int, info mediainfo.InfoKind) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.getAts++
	e.lastID = stream
	e.atStreams[stream]++
	chapter := e.chapters[position]
	if info == mediainfo.InfoName {
		return chapter.name
	}
	return chapter.text
}

func (e *fakeEngine) counts() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gets, e.getAts
}

// recordingEngine serves a real report and remembers which streams were
// asked for chapter positions.
type recordingEngine struct {
	*mediainfo.ReportEngine

	mu        sync.Mutex
	atStreams map[int]int
}

func newRecordingEngine(report mediainfo.Report) *recordingEngine {
	return &recordingEngine{ReportEngine: mediainfo.NewReportEngine(report), atStreams: map[int]int{}}
}

func (e *recordingEngine) GetAt(kind mediainfo.StreamKind, stream, position int, info mediainfo.InfoKind) string {
	e.mu.Lock()
	e.atStreams[stream]++
	e.mu.Unlock()
	return e.ReportEngine.GetAt(kind, stream, position, info)
}
