package mediainfo

type StreamKind string

const (
	StreamGeneral StreamKind = "General"
	StreamVideo   StreamKind = "Video"
	StreamAudio   StreamKind = "Audio"
	StreamText    StreamKind = "Text"
	StreamImage   StreamKind = "Image"
	StreamMenu    StreamKind = "Menu"
)

var streamKinds = []StreamKind{StreamGeneral, StreamVideo, StreamAudio, StreamText, StreamImage, StreamMenu}

// ParseStreamKind maps a MediaInfo "@type" value to a StreamKind.
func ParseStreamKind(value string) (StreamKind, bool) {
	for _, kind := range streamKinds {
		if string(kind) == value {
			return kind, true
		}
	}
	return "", false
}

type Field struct {
	Name  string
	Value string
}

type Stream struct {
	Kind   StreamKind
	Fields []Field
}

type Report struct {
	Ref     string
	General Stream
	Streams []Stream
}

// StreamsOf returns the streams of one kind in report order. General is
// always a single stream.
func (r Report) StreamsOf(kind StreamKind) []Stream {
	if kind == StreamGeneral {
		return []Stream{r.General}
	}
	out := make([]Stream, 0, len(r.Streams))
	for _, stream := range r.Streams {
		if stream.Kind == kind {
			out = append(out, stream)
		}
	}
	return out
}
