package mediainfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

func AnalyzeFile(ctx context.Context, path string) ([]Report, error) {
	return AnalyzeFileWithOptions(ctx, path, defaultAnalyzeOptions())
}

// AnalyzeFileWithOptions loads reports for path. Files ending in .json are
// read as saved MediaInfo JSON output; anything else is handed to the
// external MediaInfo binary.
func AnalyzeFileWithOptions(ctx context.Context, path string, opts AnalyzeOptions) ([]Report, error) {
	opts = normalizeAnalyzeOptions(opts)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		reports, err := ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return reports, nil
	}
	return Probe(ctx, path, opts)
}

// Probe runs the MediaInfo CLI against path and parses its JSON output.
func Probe(ctx context.Context, path string, opts AnalyzeOptions) ([]Report, error) {
	opts = normalizeAnalyzeOptions(opts)
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	slog.Debug("probing media", "binary", opts.Binary, "path", path)
	cmd := exec.CommandContext(ctx, opts.Binary, opts.args(path)...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opts.Binary, path, err)
	}
	slog.Debug("probed media", "path", path, "bytes", len(out), "elapsed", time.Since(start))

	reports, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", opts.Binary, path, err)
	}
	return reports, nil
}

func AnalyzeFiles(ctx context.Context, paths []string) ([]Report, int, error) {
	return AnalyzeFilesWithOptions(ctx, paths, defaultAnalyzeOptions())
}

func AnalyzeFilesWithOptions(ctx context.Context, paths []string, opts AnalyzeOptions) ([]Report, int, error) {
	expanded, err := expandPaths(paths)
	if err != nil {
		return nil, 0, err
	}
	reports := make([]Report, 0, len(expanded))
	for _, path := range expanded {
		fileReports, err := AnalyzeFileWithOptions(ctx, path, opts)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", path, err)
		}
		reports = append(reports, fileReports...)
	}
	return reports, len(expanded), nil
}

// expandPaths replaces directories with their files, sorted by name.
func expandPaths(paths []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			expanded = append(expanded, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			expanded = append(expanded, filepath.Join(path, name))
		}
	}
	return expanded, nil
}
