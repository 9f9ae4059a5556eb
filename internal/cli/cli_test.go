package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const movieJSON = "../mediainfo/testdata/movie.json"

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), append([]string{"menuinfo"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunText(t *testing.T) {
	code, stdout, stderr := run(t, movieJSON)
	require.Equal(t, exitOK, code, stderr)

	require.True(t, strings.HasPrefix(stdout, "movie.mkv\n\nMenu\n"), stdout)
	require.Contains(t, stdout, "ID                                       : 0\n")
	require.Contains(t, stdout, "Chapters                                 : 3\n")
	require.Contains(t, stdout, "Summary                                  :  '3 Chapters'\n")
	require.Contains(t, stdout, "00:05:00.000                             : en:Chapter 2\n")
	require.NotContains(t, stdout, "Format ")
	require.NotContains(t, stdout, "Delay")
}

func TestRunChaptersOnly(t *testing.T) {
	code, stdout, _ := run(t, "--chapters", movieJSON)
	require.Equal(t, exitOK, code)
	require.NotContains(t, stdout, "ID ")
	require.Contains(t, stdout, "00:00:00.000                             : en:Opening\n")
}

func TestRunJSON(t *testing.T) {
	code, stdout, stderr := run(t, "-o", "json", movieJSON)
	require.Equal(t, exitOK, code, stderr)

	var files []fileOut
	require.NoError(t, json.Unmarshal([]byte(stdout), &files))
	require.Len(t, files, 1)
	require.Equal(t, "movie.mkv", files[0].File)
	require.Len(t, files[0].Menus, 1)

	menu := files[0].Menus[0]
	require.Equal(t, 0, menu.ID)
	require.Len(t, menu.Chapters, 3)
	require.Equal(t, "Chapter 2", menu.Chapters[1].Title)
	require.NotNil(t, menu.Chapters[1].StartMs)
	require.Equal(t, int64(300000), *menu.Chapters[1].StartMs)
}

func TestRunYAML(t *testing.T) {
	t.Setenv("MENUINFO_OUTPUT", "yaml")

	code, stdout, stderr := run(t, movieJSON)
	require.Equal(t, exitOK, code, stderr)

	var files []fileOut
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &files))
	require.Len(t, files, 1)
	require.Equal(t, "en:Opening", files[0].Menus[0].Chapters[0].Text)
}

func TestRunFull(t *testing.T) {
	code, stdout, _ := run(t, "--full", movieJSON)
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "\nVideo\n")
	require.Contains(t, stdout, "\nAudio\n")
	require.Contains(t, stdout, "ReportBy : go-mediainfo-menu")

	code, stdout, _ = run(t, "--full", "--output=json", movieJSON)
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, `"_00_05_00_000":"en:Chapter 2"`)
}

func TestRunLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "out.txt")

	code, stdout, _ := run(t, "--logfile", logFile, movieJSON)
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Equal(t, stdout, string(data))
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no files", args: nil},
		{name: "unknown flag", args: []string{"--nope", movieJSON}},
		{name: "bad output", args: []string{"--output=xml", movieJSON}},
		{name: "full yaml", args: []string{"--full", "-o", "yaml", movieJSON}},
		{name: "missing file", args: []string{"missing.json"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, _ := run(t, tc.args...)
			require.Equal(t, exitError, code)
		})
	}
}

func TestRunBadConfig(t *testing.T) {
	t.Setenv("MENUINFO_LOG_LEVEL", "loud")

	code, _, stderr := run(t, movieJSON)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "validate config")
}

func TestRunHelpAndVersion(t *testing.T) {
	t.Setenv("MENUINFO_MEDIAINFO_BIN", "menuinfo-test-no-such-mediainfo")

	code, stdout, _ := run(t, "--help")
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(stdout, "menuinfo, dev\n"), stdout)
	require.Contains(t, stdout, "Usage: \"menuinfo")

	code, stdout, _ = run(t, "--version")
	require.Equal(t, exitOK, code)
	require.Equal(t, "menuinfo, dev\nMediaInfo CLI: menuinfo-test-no-such-mediainfo (not found, only .json inputs can be read)\n", stdout)
}

func TestRunVersionResolvesMediaInfo(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "mediainfo")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	code, stdout, _ := run(t, "--mediainfo", bin, "--version")
	require.Equal(t, exitOK, code)
	require.Equal(t, "menuinfo, dev\nMediaInfo CLI: "+bin+"\n", stdout)
}

func TestRunBadEnvironmentStillHelps(t *testing.T) {
	t.Setenv("MENUINFO_OUTPUT", "xml")
	t.Setenv("MENUINFO_LOG_LEVEL", "loud")

	code, stdout, _ := run(t, "--help")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Usage: ")

	code, stdout, _ = run(t, "--version")
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(stdout, "menuinfo, dev\n"), stdout)

	code, _, stderr := run(t, movieJSON)
	require.Equal(t, exitError, code)
	require.Contains(t, stderr, "validate config")
}

func TestRunFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MENUINFO_OUTPUT", "xml")

	code, stdout, stderr := run(t, "-o", "json", movieJSON)
	require.Equal(t, exitOK, code, stderr)

	var files []fileOut
	require.NoError(t, json.Unmarshal([]byte(stdout), &files))
	require.Len(t, files, 1)
}

func TestRunNoMenus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.json")
	data := `{"media":{"@ref":"song.flac","track":[{"@type":"General","Format":"FLAC"},{"@type":"Audio","Format":"FLAC"}]}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	code, stdout, _ := run(t, path)
	require.Equal(t, exitOK, code)
	require.Equal(t, "song.flac\nNo menu streams\n", stdout)
}
