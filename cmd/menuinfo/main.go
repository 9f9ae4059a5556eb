package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/autobrr/go-mediainfo-menu/internal/cli"
	"github.com/autobrr/go-mediainfo-menu/internal/config"
	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

// version is set at release time with -ldflags "-X main.version=...".
var version = "dev"

const updateSlug = "autobrr/go-mediainfo-menu"

const helpTemplate = `{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}`

var errDevBuild = errors.New("self-update is only available in release builds")

func main() {
	current := resolveVersion(version)
	cli.SetVersion(current)
	mediainfo.SetAppVersion(current)

	root := newRootCmd(current)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err.Error())
		os.Exit(1)
	}
}

func newRootCmd(current string) *cobra.Command {
	root := &cobra.Command{
		Use:                "menuinfo [options] <file> [file...]",
		Short:              "Show menu streams and chapters of media files.",
		Long:               "Show menu streams and chapters of media files, from saved MediaInfo JSON or by running the MediaInfo CLI.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
				return
			}
			os.Exit(cli.Run(cmd.Context(), append([]string{cmd.Name()}, args...), cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
	root.SetHelpTemplate(helpTemplate)
	root.AddCommand(newUpdateCmd(current), newVersionCmd())
	return root
}

func newUpdateCmd(current string) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update menuinfo",
		Long:  "Update menuinfo to the latest GitHub release (release builds only).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelfUpdate(cmd.Context(), cmd.OutOrStdout(), current)
		},
		DisableFlagsInUseLine: true,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print menuinfo version and the MediaInfo CLI it runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// On a bad environment Read still hands back the default binary.
			cfg, _ := config.Read()
			cli.Version(cmd.OutOrStdout(), cfg.MediaInfoBin)
			return nil
		},
		DisableFlagsInUseLine: true,
	}
}

// checkUpdatable reports whether current names a release that can be
// compared against GitHub releases.
func checkUpdatable(current string) error {
	if current == "" || current == "dev" {
		return errDevBuild
	}
	if _, err := semver.ParseTolerant(current); err != nil {
		return fmt.Errorf("could not parse version %q: %w", current, err)
	}
	return nil
}

func runSelfUpdate(ctx context.Context, out io.Writer, current string) error {
	if err := checkUpdatable(current); err != nil {
		return err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(updateSlug))
	if err != nil {
		return fmt.Errorf("detect latest release of %s: %w", updateSlug, err)
	}
	if !found {
		return fmt.Errorf("no release of %s found for this platform", updateSlug)
	}

	if latest.LessOrEqual(current) {
		fmt.Fprintf(out, "menuinfo %s is the latest release\n", mediainfo.FormatVersion(current))
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locate menuinfo executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update %s to %s: %w", exe, latest.Version(), err)
	}

	fmt.Fprintf(out, "Updated menuinfo %s -> %s\n", mediainfo.FormatVersion(current), mediainfo.FormatVersion(latest.Version()))
	return nil
}

// resolveVersion prefers the ldflags value, then the module version stamped
// by `go install`.
func resolveVersion(ldflags string) string {
	if ldflags != "" && ldflags != "dev" {
		return normalizeVersion(ldflags)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
