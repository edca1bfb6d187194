// Package version reports build information for flattenrepo.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the program name used in version output.
const Name = "flattenrepo"

// Set with -ldflags, for example:
//
//	go build -ldflags "-X flattenrepo/pkg/version.Version=1.2.3 -X flattenrepo/pkg/version.Commit=abcdefg"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes one build of the binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
	Modified  bool // Built from a dirty working tree.
}

// Get returns the build information. Values not injected through -ldflags
// are filled from the module build info when the binary was built with
// "go install" or from a VCS checkout.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return fillFromBuildInfo(info, bi)
}

func fillFromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "none" {
				info.GitCommit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String formats the build information on one line:
//
//	flattenrepo version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64
func (i Info) String() string {
	commit := i.GitCommit
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		Name, i.Version, commit, i.BuildTime, i.GoVersion, i.Platform)
}
