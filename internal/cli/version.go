package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/autobrr/go-mediainfo-menu/internal/mediainfo"
)

var appVersion = "dev"

func SetVersion(version string) {
	if version != "" {
		appVersion = version
	}
}

func versionLine() string {
	return fmt.Sprintf("menuinfo, %s", mediainfo.FormatVersion(appVersion))
}

// Version prints the program version and where the MediaInfo CLI used for
// non-JSON inputs resolves to.
func Version(stdout io.Writer, mediainfoBin string) {
	fmt.Fprintln(stdout, versionLine())
	if mediainfoBin == "" {
		return
	}
	path, err := exec.LookPath(mediainfoBin)
	if err != nil {
		fmt.Fprintf(stdout, "MediaInfo CLI: %s (not found, only .json inputs can be read)\n", mediainfoBin)
		return
	}
	fmt.Fprintf(stdout, "MediaInfo CLI: %s\n", path)
}
