package streams

import (
	"math"
	"strconv"
	"strings"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

// Engine parameter names shared by every stream kind.
const (
	paramFormat          = "Format"
	paramFormatInfo      = "Format/Info"
	paramFormatProfile   = "Format_Profile"
	paramFormatVersion   = "Format_Version"
	paramTitle           = "Title"
	paramUniqueID        = "UniqueID"
	paramCodecID         = "CodecID"
	paramCodecCommonName = "Codec/String"
	paramDelay           = "Delay"
	paramDuration        = "Duration"
	paramLanguage        = "Language"
)

// base is the property-bag core every stream view wraps: one engine, one
// stream kind and one stream index.
type base struct {
	engine mediainfo.Engine
	kind   mediainfo.StreamKind
	id     int
}

// lookup reports whether the engine holds a value for parameter. Engines
// without absence information treat the empty string as absent.
func (b base) lookup(parameter string) (string, bool) {
	if l, ok := b.engine.(mediainfo.Lookuper); ok {
		return l.Lookup(b.kind, b.id, parameter)
	}
	value := b.engine.Get(b.kind, b.id, parameter)
	return value, value != ""
}

func (b base) lookupInt(parameter string) (int, bool) {
	value, ok := b.lookup(parameter)
	if !ok {
		return 0, false
	}
	return parseInt(value)
}

func (b base) getString(parameter string) string {
	value, _ := b.lookup(parameter)
	return value
}

func (b base) getInt(parameter string) int {
	value, _ := b.lookupInt(parameter)
	return value
}

// parseInt accepts plain integers and decimal values, which are truncated
// toward zero.
func parseInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int(f), true
}
