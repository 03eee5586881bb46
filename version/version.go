package version

import (
	"runtime"
	"runtime/debug"
	"strconv"
)

// Build identity, overridable at build time:
//
//	-ldflags "-X cropguard-service/version.Release=v1.2.0 -X cropguard-service/version.Commit=<sha>"
//
// Unset values fall back to the VCS info the Go toolchain embeds.
var (
	Release   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the payload served at /version.
type Info struct {
	Service   string `json:"service"`
	Release   string `json:"release"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Dirty     *bool  `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get resolves the build identity of the running binary. Ldflags values win;
// missing pieces come from debug.ReadBuildInfo.
func Get(service string) Info {
	commit := Commit
	buildTime := BuildTime
	var dirty *bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if buildTime == "" {
					buildTime = s.Value
				}
			case "vcs.modified":
				if dirty == nil {
					if b, err := strconv.ParseBool(s.Value); err == nil {
						dirty = &b
					}
				}
			}
		}
	}

	return Info{
		Service:   service,
		Release:   Release,
		Commit:    commit,
		BuildTime: buildTime,
		Dirty:     dirty,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
