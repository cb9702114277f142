package app

import "strings"

// Build metadata, overridden with -ldflags "-X .../internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion renders Version with whichever of Commit and BuildTime were
// provided, for example "1.4.0 (a1b2c3d, 2026-05-01T10:00:00Z)".
func BuildVersion() string {
	var extra []string
	for _, v := range []string{Commit, BuildTime} {
		if v != "" {
			extra = append(extra, v)
		}
	}
	if len(extra) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extra, ", ") + ")"
}
