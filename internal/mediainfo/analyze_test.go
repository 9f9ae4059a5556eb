package mediainfo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestAnalyzeFileJSON(t *testing.T) {
	reports, err := AnalyzeFile(context.Background(), "testdata/movie.json")
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if len(reports) != 1 || reports[0].Ref != "movie.mkv" {
		t.Fatalf("reports=%+v", reports)
	}
}

func TestAnalyzeFileJSONInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"media":null}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := AnalyzeFile(context.Background(), path)
	if !errors.Is(err, ErrNoReports) {
		t.Fatalf("err=%v, want ErrNoReports", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("err=%v, want path in message", err)
	}
}

func TestProbeRunsBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script binary")
	}
	fixture, err := filepath.Abs("testdata/movie.json")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	argsPath := filepath.Join(dir, "args")
	binary := filepath.Join(dir, "mediainfo")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + argsPath + "'\ncat '" + fixture + "'\n"
	if err := os.WriteFile(binary, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	reports, err := AnalyzeFileWithOptions(context.Background(), "movie.mkv", AnalyzeOptions{Binary: binary})
	if err != nil {
		t.Fatalf("AnalyzeFileWithOptions: %v", err)
	}
	if len(reports) != 1 || len(reports[0].StreamsOf(StreamMenu)) != 1 {
		t.Fatalf("reports=%+v", reports)
	}
	args, err := os.ReadFile(argsPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(args); got != "--Output=JSON\n--ParseSpeed=0.5\nmovie.mkv\n" {
		t.Fatalf("args=%q", got)
	}
}

func TestProbeMissingBinary(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "no-such-mediainfo")
	_, err := Probe(context.Background(), "movie.mkv", AnalyzeOptions{Binary: binary})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "movie.mkv") {
		t.Fatalf("err=%v, want path in message", err)
	}
}

func TestAnalyzeFilesExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/movie.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.json", "a.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	reports, count, err := AnalyzeFiles(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("AnalyzeFiles: %v", err)
	}
	if count != 2 || len(reports) != 2 {
		t.Fatalf("count=%d reports=%d, want 2", count, len(reports))
	}
}

func TestAnalyzeFilesStopsOnError(t *testing.T) {
	_, _, err := AnalyzeFiles(context.Background(), []string{"testdata/movie.json", "testdata/missing.json"})
	if err == nil {
		t.Fatalf("expected error")
	}
}
