package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

// setVars overrides the ldflags variables for one test.
func setVars(t *testing.T, version, commit, dirty, date string) {
	t.Helper()
	origVersion, origCommit, origDirty, origDate := Version, Commit, Dirty, BuildDate
	t.Cleanup(func() { Version, Commit, Dirty, BuildDate = origVersion, origCommit, origDirty, origDate })
	Version, Commit, Dirty, BuildDate = version, commit, dirty, date
}

// setBuildInfo replaces the embedded build info for one test.
func setBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString_Dirty(t *testing.T) {
	setVars(t, "1.2.3", "abc123", "false", "2026-01-01T00:00:00Z")

	if got := String(); got != "1.2.3" {
		t.Errorf("String() = %q, want %q", got, "1.2.3")
	}

	Dirty = "true"
	if got := String(); got != "1.2.3-dirty" {
		t.Errorf("String() = %q, want %q", got, "1.2.3-dirty")
	}
}

func TestFull(t *testing.T) {
	setVars(t, "1.2.3", "0123456789abcdef", "false", "2026-01-01T00:00:00Z")

	out := Full()
	for _, want := range []string{
		"nbclean 1.2.3\n",
		"  Commit:     0123456789ab\n",
		"  Built:      2026-01-01T00:00:00Z\n",
		"  OS/Arch:    " + Get().Platform,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Full() missing %q:\n%s", want, out)
		}
	}
}

func TestGet_LdflagsWinOverBuildInfo(t *testing.T) {
	setVars(t, "1.2.3", "abc123", "false", "2026-01-01T00:00:00Z")
	setBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fff"}},
	})

	info := Get()
	if info.Version != "1.2.3" || info.Commit != "abc123" {
		t.Errorf("Get() = %+v, want ldflags values", info)
	}
}

func TestGet_FallsBackToBuildInfo(t *testing.T) {
	setVars(t, "dev", "unknown", "false", "unknown")
	setBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeefcafe0000"},
			{Key: "vcs.time", Value: "2026-02-03T04:05:06Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	info := Get()
	if info.Version != "0.4.0" {
		t.Errorf("Version = %q, want 0.4.0", info.Version)
	}
	if info.Commit != "deadbeefcafe0000" || info.ShortCommit() != "deadbeefcafe" {
		t.Errorf("Commit = %q, ShortCommit = %q", info.Commit, info.ShortCommit())
	}
	if info.BuildDate != "2026-02-03T04:05:06Z" {
		t.Errorf("BuildDate = %q", info.BuildDate)
	}
	if info.Short() != "0.4.0-dirty" {
		t.Errorf("Short() = %q, want 0.4.0-dirty", info.Short())
	}
}

func TestGet_DevelBuildKeepsDev(t *testing.T) {
	setVars(t, "dev", "unknown", "false", "unknown")
	setBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	if info := Get(); info.Version != "dev" || info.Commit != "unknown" {
		t.Errorf("Get() = %+v", info)
	}
}

func TestGet_NoBuildInfo(t *testing.T) {
	setVars(t, "dev", "unknown", "false", "unknown")
	setBuildInfo(t, nil)

	if got := Get().Short(); got != "dev" {
		t.Errorf("Short() = %q, want dev", got)
	}
}
