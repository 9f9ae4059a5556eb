package mediainfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var ErrNoReports = errors.New("no media in mediainfo output")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type jsonDocumentIn struct {
	Media *jsonMediaIn `json:"media"`
}

type jsonMediaIn struct {
	Ref   string            `json:"@ref"`
	Track []json.RawMessage `json:"track"`
}

// jsonPair keeps object members in document order; encoding/json maps do not.
type jsonPair struct {
	Key    string
	Value  string
	Object []jsonPair
}

// ParseJSON reads MediaInfo JSON output (--Output=JSON), either a single
// document or an array of documents, into reports.
func ParseJSON(data []byte) ([]Report, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	var docs []jsonDocumentIn
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("parse mediainfo JSON: %w", err)
		}
	} else {
		var doc jsonDocumentIn
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parse mediainfo JSON: %w", err)
		}
		docs = append(docs, doc)
	}

	reports := make([]Report, 0, len(docs))
	for _, doc := range docs {
		if doc.Media == nil {
			continue
		}
		report, err := buildReport(doc.Media)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if len(reports) == 0 {
		return nil, ErrNoReports
	}
	return reports, nil
}

func buildReport(media *jsonMediaIn) (Report, error) {
	report := Report{Ref: media.Ref, General: Stream{Kind: StreamGeneral}}
	for i, raw := range media.Track {
		pairs, err := decodeTrack(raw)
		if err != nil {
			return Report{}, fmt.Errorf("parse mediainfo JSON track %d of %q: %w", i, media.Ref, err)
		}
		stream, ok := trackStream(pairs)
		if !ok {
			continue
		}
		if stream.Kind == StreamGeneral {
			report.General = stream
			continue
		}
		report.Streams = append(report.Streams, stream)
	}
	return report, nil
}

func trackStream(pairs []jsonPair) (Stream, bool) {
	var stream Stream
	for _, pair := range pairs {
		if pair.Key == "@type" {
			kind, ok := ParseStreamKind(pair.Value)
			if !ok {
				return Stream{}, false
			}
			stream.Kind = kind
		}
	}
	if stream.Kind == "" {
		return Stream{}, false
	}

	for _, pair := range pairs {
		if strings.HasPrefix(pair.Key, "@") {
			continue
		}
		if pair.Object != nil {
			for _, extra := range pair.Object {
				if pair.Key == "extra" {
					if name, ok := chapterTimeFromJSONKey(extra.Key); ok {
						stream.Fields = append(stream.Fields, Field{Name: name, Value: extra.Value})
						continue
					}
				}
				stream.Fields = appendFieldUnique(stream.Fields, Field{Name: extra.Key, Value: extra.Value})
			}
			continue
		}
		stream.Fields = appendFieldUnique(stream.Fields, Field{Name: pair.Key, Value: pair.Value})
	}

	// The JSON writer emits durations in seconds; Get answers in milliseconds.
	for _, name := range []string{"Duration", "Delay"} {
		if value, ok := lookupField(stream.Fields, name); ok {
			if ms, ok := secondsToMilliseconds(value); ok {
				stream.Fields = setFieldValue(stream.Fields, name, ms)
			}
		}
	}
	return stream, true
}

func secondsToMilliseconds(value string) (string, bool) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", false
	}
	return strconv.FormatInt(int64(math.Round(seconds*1000)), 10), true
}

func decodeTrack(raw json.RawMessage) ([]jsonPair, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("track is not an object")
	}
	return decodeObject(dec)
}

// decodeObject reads members up to and including the closing brace; the
// opening brace has already been consumed.
func decodeObject(dec *json.Decoder) ([]jsonPair, error) {
	pairs := []jsonPair{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		pair := jsonPair{Key: key}
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				object, err := decodeObject(dec)
				if err != nil {
					return nil, err
				}
				pair.Object = object
			case '[':
				if err := skipArray(dec); err != nil {
					return nil, err
				}
				continue
			}
		case string:
			pair.Value = v
		case json.Number:
			pair.Value = v.String()
		case bool:
			pair.Value = strconv.FormatBool(v)
		}
		pairs = append(pairs, pair)
	}
	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return pairs, nil
}

func skipArray(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}
