package mediainfo

import "strings"

const (
	AppName = "go-mediainfo-menu"
	AppURL  = "https://github.com/autobrr/go-mediainfo-menu"
)

var AppVersion = "dev"

func SetAppVersion(version string) {
	if version != "" {
		AppVersion = version
	}
}

// FormatVersion renders a version for display: "v1.2.3", or "dev".
func FormatVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" || version == "dev" {
		return "dev"
	}
	return "v" + version
}
