package tui

import "fmt"

// Set with -ldflags "-X github.com/akyairhashvil/codefield/internal/tui.AppVersion=...".
var (
	AppVersion = "0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel is the version shown in the header and by the CLI.
func VersionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
