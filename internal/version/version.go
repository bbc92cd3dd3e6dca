// Package version reports SpecMatch build information. Values come from
// ldflags when set, otherwise from the VCS stamp the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the build information for this binary.
func Get() BuildInfo {
	bi := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(&bi, info)
	}
	return bi
}

// applyBuildInfo fills fields left at their ldflags defaults.
func applyBuildInfo(bi *BuildInfo, info *debug.BuildInfo) {
	if bi.Version == "dev" && strings.HasPrefix(info.Main.Version, "v") {
		bi.Version = strings.TrimPrefix(info.Main.Version, "v")
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.GitCommit == "unknown" && s.Value != "" {
				bi.GitCommit = s.Value
				if len(bi.GitCommit) > 12 {
					bi.GitCommit = bi.GitCommit[:12]
				}
			}
		case "vcs.time":
			if bi.BuildDate == "unknown" && s.Value != "" {
				bi.BuildDate = s.Value
			}
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
}

// Info returns a one-line description suitable for `specmatch version`.
func Info() string {
	bi := Get()
	commit := bi.GitCommit
	if bi.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("SpecMatch %s (commit: %s, built: %s, go: %s, %s/%s)",
		bi.Version, commit, bi.BuildDate, bi.GoVersion, bi.OS, bi.Arch)
}

// Short returns just the version string (e.g., "0.1.0" or "dev").
func Short() string {
	return Get().Version
}
