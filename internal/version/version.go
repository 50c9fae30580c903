// Package version reports which nbclean build is running.
//
// Release builds set the variables below with ldflags:
//
//	go build -ldflags "-X github.com/jmylchreest/nbclean/internal/version.Version=1.0.0 ..."
//
// Builds made with "go install" or "go build" without ldflags fall back to
// the VCS stamp the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Dirty     = "false"
	BuildDate = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes a build. It is what "nbclean version" prints.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the running build's information.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Dirty:     Dirty == "true",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if Commit == "unknown" {
		info.fillFromBuildInfo()
	}
	return info
}

// fillFromBuildInfo copies the module version and vcs.* settings embedded
// by the toolchain into fields that ldflags left unset.
func (i *Info) fillFromBuildInfo() {
	bi, ok := readBuildInfo()
	if !ok {
		return
	}
	if i.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.time":
			if i.BuildDate == "unknown" {
				i.BuildDate = s.Value
			}
		case "vcs.modified":
			i.Dirty = i.Dirty || s.Value == "true"
		}
	}
}

// Short returns the version with a -dirty suffix for modified trees.
func (i Info) Short() string {
	if i.Dirty {
		return i.Version + "-dirty"
	}
	return i.Version
}

// ShortCommit returns the first 12 characters of the commit.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 12 {
		return i.Commit[:12]
	}
	return i.Commit
}

// String renders the multi-line block printed by "nbclean version".
func (i Info) String() string {
	rows := [][2]string{
		{"Commit", i.ShortCommit()},
		{"Built", i.BuildDate},
		{"Go version", i.GoVersion},
		{"OS/Arch", i.Platform},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "nbclean %s", i.Short())
	for _, row := range rows {
		fmt.Fprintf(&sb, "\n  %-11s %s", row[0]+":", row[1])
	}
	return sb.String()
}

// String returns the running version, e.g. "1.2.0" or "1.2.0-dirty".
func String() string {
	return Get().Short()
}

// Full returns the running build's multi-line description.
func Full() string {
	return Get().String()
}
