package mediainfo

import (
	"testing"
	"time"
)

func TestDefaultAnalyzeOptions(t *testing.T) {
	opts := defaultAnalyzeOptions()
	if opts.ParseSpeed != 0.5 {
		t.Fatalf("ParseSpeed=%v, want 0.5", opts.ParseSpeed)
	}
	if opts.Binary != DefaultBinary {
		t.Fatalf("Binary=%q, want %q", opts.Binary, DefaultBinary)
	}
}

func TestNormalizeAnalyzeOptionsDefaults(t *testing.T) {
	opts := normalizeAnalyzeOptions(AnalyzeOptions{})
	if opts.ParseSpeed != 0.5 {
		t.Fatalf("ParseSpeed=%v, want 0.5", opts.ParseSpeed)
	}
	if opts.Binary != DefaultBinary {
		t.Fatalf("Binary=%q, want %q", opts.Binary, DefaultBinary)
	}
}

func TestNormalizeAnalyzeOptionsClamps(t *testing.T) {
	opts := normalizeAnalyzeOptions(AnalyzeOptions{ParseSpeed: 3, HasParseSpeed: true, Timeout: -time.Second})
	if opts.ParseSpeed != 1 {
		t.Fatalf("ParseSpeed=%v, want 1", opts.ParseSpeed)
	}
	if opts.Timeout != 0 {
		t.Fatalf("Timeout=%v, want 0", opts.Timeout)
	}
	opts = normalizeAnalyzeOptions(AnalyzeOptions{ParseSpeed: -1, HasParseSpeed: true})
	if opts.ParseSpeed != 0 {
		t.Fatalf("ParseSpeed=%v, want 0", opts.ParseSpeed)
	}
}

func TestAnalyzeOptionsArgs(t *testing.T) {
	args := normalizeAnalyzeOptions(AnalyzeOptions{ParseSpeed: 1, HasParseSpeed: true}).args("a.mkv")
	want := []string{"--Output=JSON", "--ParseSpeed=1", "a.mkv"}
	if len(args) != len(want) {
		t.Fatalf("args=%v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args=%v, want %v", args, want)
		}
	}
}
