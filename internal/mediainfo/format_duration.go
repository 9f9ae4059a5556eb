package mediainfo

import (
	"fmt"
	"math"
)

// FormatDurationMs renders a millisecond count the way MediaInfo's text
// output does, e.g. "1 h 2 min 3 s". Zero or negative yields "".
func FormatDurationMs(ms int) string {
	return formatDuration(float64(ms) / 1000)
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}

	totalMs := int64(math.Round(seconds * 1000))
	if totalMs < 1000 {
		return fmt.Sprintf("%d ms", totalMs)
	}

	totalSec := totalMs / 1000
	remMs := totalMs % 1000
	if totalSec == 59 && remMs >= 500 {
		totalSec = 60
		remMs = 0
	}
	if totalSec < 60 {
		return fmt.Sprintf("%d s %d ms", totalSec, remMs)
	}

	hours := totalSec / 3600
	minutes := (totalSec % 3600) / 60
	secondsOnly := totalSec % 60
	if hours > 0 {
		return fmt.Sprintf("%d h %d min %d s", hours, minutes, secondsOnly)
	}
	return fmt.Sprintf("%d min %d s", minutes, secondsOnly)
}
