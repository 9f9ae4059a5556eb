package mediainfo

import (
	"strconv"
	"time"
)

const DefaultBinary = "mediainfo"

type AnalyzeOptions struct {
	// Binary is the external MediaInfo CLI used for non-JSON inputs.
	Binary        string
	ParseSpeed    float64
	HasParseSpeed bool
	Timeout       time.Duration
}

func defaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{Binary: DefaultBinary, ParseSpeed: 0.5}
}

func normalizeAnalyzeOptions(opts AnalyzeOptions) AnalyzeOptions {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if !opts.HasParseSpeed {
		opts.ParseSpeed = 0.5
	}
	if opts.ParseSpeed < 0 {
		opts.ParseSpeed = 0
	}
	if opts.ParseSpeed > 1 {
		opts.ParseSpeed = 1
	}
	if opts.Timeout < 0 {
		opts.Timeout = 0
	}
	return opts
}

func (opts AnalyzeOptions) args(path string) []string {
	return []string{
		"--Output=JSON",
		"--ParseSpeed=" + strconv.FormatFloat(opts.ParseSpeed, 'f', -1, 64),
		path,
	}
}
