package mediainfo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatChapterTime renders a chapter start as HH:MM:SS.mmm, the name
// MediaInfo gives chapter fields in menu streams.
func FormatChapterTime(start time.Duration) string {
	msTotal := start.Milliseconds()
	if msTotal < 0 {
		msTotal = 0
	}
	h := msTotal / (3600 * 1000)
	msTotal -= h * 3600 * 1000
	m := msTotal / (60 * 1000)
	msTotal -= m * 60 * 1000
	s := msTotal / 1000
	ms := msTotal - s*1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// ParseChapterTime is the inverse of FormatChapterTime.
func ParseChapterTime(value string) (time.Duration, bool) {
	if !isChapterTime(value) {
		return 0, false
	}
	h, _ := strconv.Atoi(value[0:2])
	m, _ := strconv.Atoi(value[3:5])
	s, _ := strconv.Atoi(value[6:8])
	ms, _ := strconv.Atoi(value[9:12])
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond
	return d, true
}

func isChapterTime(value string) bool {
	if len(value) != 12 {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch i {
		case 2, 5:
			if c != ':' {
				return false
			}
		case 8:
			if c != '.' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// chapterTimeFromJSONKey turns "_00_05_00_000" into "00:05:00.000".
func chapterTimeFromJSONKey(key string) (string, bool) {
	if len(key) != 13 || key[0] != '_' {
		return "", false
	}
	raw := key[1:]
	if raw[2] != '_' || raw[5] != '_' || raw[8] != '_' {
		return "", false
	}
	value := raw[0:2] + ":" + raw[3:5] + ":" + raw[6:8] + "." + raw[9:12]
	if !isChapterTime(value) {
		return "", false
	}
	return value, true
}

func chapterTimeToJSONKey(value string) string {
	return "_" + strings.NewReplacer(":", "_", ".", "_").Replace(value)
}
