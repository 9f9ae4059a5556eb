package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/autobrr/go-mediainfo-menu/internal/config"
	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	Full         bool
	ChaptersOnly bool
	Output       string
	MediaInfoBin string
	ParseSpeed   float64
	Timeout      time.Duration
	LogFile      string
	Bom          bool
}

func optionsFromConfig(cfg *config.Config) Options {
	return Options{
		Output:       cfg.Output,
		MediaInfoBin: cfg.MediaInfoBin,
		ParseSpeed:   cfg.ParseSpeed,
		Timeout:      cfg.ProbeTimeout,
	}
}

func applyOptions(cfg *config.Config, opts Options) {
	cfg.Output = strings.ToLower(opts.Output)
	cfg.MediaInfoBin = opts.MediaInfoBin
	cfg.ParseSpeed = opts.ParseSpeed
	cfg.ProbeTimeout = opts.Timeout
}

func newFlagSet(program string, opts *Options) *pflag.FlagSet {
	flags := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flags.SetInterspersed(true)
	flags.BoolVarP(&opts.Full, "full", "f", opts.Full, "print every stream of the report instead of the menu view")
	flags.BoolVarP(&opts.ChaptersOnly, "chapters", "c", opts.ChaptersOnly, "print only menu chapters")
	flags.StringVarP(&opts.Output, "output", "o", opts.Output, "output format: text, json or yaml")
	flags.StringVar(&opts.MediaInfoBin, "mediainfo", opts.MediaInfoBin, "MediaInfo CLI used for non-JSON inputs")
	flags.Float64Var(&opts.ParseSpeed, "parse-speed", opts.ParseSpeed, "MediaInfo analysis speed/accuracy tradeoff (0..1)")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "timeout per MediaInfo run (0 disables)")
	flags.StringVar(&opts.LogFile, "logfile", opts.LogFile, "save the output in the specified file")
	flags.BoolVar(&opts.Bom, "bom", opts.Bom, "byte order mark for UTF-8 output (Windows only)")
	return flags
}

// Run parses args (args[0] is the program name), prints the menu streams of
// every file and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return exitError
	}
	program := programName(args[0])

	// Flags override the environment, so validation waits until they are parsed.
	cfg, cfgErr := config.Read()
	opts := optionsFromConfig(cfg)
	flags := newFlagSet(program, &opts)
	flags.SetOutput(stderr)
	var showHelp, showVersion bool
	flags.BoolVarP(&showHelp, "help", "h", false, "display this help and exit")
	flags.BoolVar(&showVersion, "version", false, "display version information and exit")

	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			Help(program, stdout)
			return exitOK
		}
		fmt.Fprintln(stderr, err.Error())
		return Usage(program, stderr)
	}
	switch {
	case showHelp:
		Help(program, stdout)
		return exitOK
	case showVersion:
		Version(stdout, opts.MediaInfoBin)
		return exitOK
	}

	if cfgErr != nil {
		fmt.Fprintln(stderr, cfgErr.Error())
		return exitError
	}
	applyOptions(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	files := flags.Args()
	if len(files) == 0 {
		return Usage(program, stdout)
	}

	if opts.Bom {
		writeBOM(stdout, stderr)
	}

	output, filesCount, err := runCore(ctx, opts, files)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	if output != "" {
		fmt.Fprint(stdout, output)
	}

	if opts.LogFile != "" {
		if err := writeLogFile(opts.LogFile, output, opts.Bom); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return exitError
		}
	}

	if filesCount > 0 {
		return exitOK
	}
	return exitError
}

func programName(arg0 string) string {
	name := filepath.Base(arg0)
	if runtime.GOOS == "windows" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func writeBOM(stdout, stderr io.Writer) {
	if runtime.GOOS != "windows" {
		return
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	_, _ = stdout.Write(bom)
	_, _ = stderr.Write(bom)
}

func writeLogFile(path, output string, includeBOM bool) error {
	data := []byte(output)
	if includeBOM && runtime.GOOS == "windows" {
		data = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	return nil
}

func runCore(ctx context.Context, opts Options, files []string) (string, int, error) {
	format := strings.ToLower(opts.Output)
	switch format {
	case "", "text", "json", "yaml":
	default:
		return "", 0, fmt.Errorf("output format not implemented: %s", opts.Output)
	}
	if opts.Full && format == "yaml" {
		return "", 0, errors.New("--full supports text and json output only")
	}

	analyzeOpts := mediainfo.AnalyzeOptions{
		Binary:        opts.MediaInfoBin,
		ParseSpeed:    opts.ParseSpeed,
		HasParseSpeed: true,
		Timeout:       opts.Timeout,
	}
	reports, count, err := mediainfo.AnalyzeFilesWithOptions(ctx, files, analyzeOpts)
	if err != nil {
		return "", 0, err
	}

	if opts.Full {
		if format == "json" {
			return mediainfo.RenderJSON(reports), count, nil
		}
		return mediainfo.RenderText(reports), count, nil
	}

	menus := collectMenus(reports)
	switch format {
	case "json":
		out, err := renderMenusJSON(menus, opts.ChaptersOnly)
		return out, count, err
	case "yaml":
		out, err := renderMenusYAML(menus, opts.ChaptersOnly)
		return out, count, err
	}
	return renderMenusText(menus, opts.ChaptersOnly), count, nil
}
