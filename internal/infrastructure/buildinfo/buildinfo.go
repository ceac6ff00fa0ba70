// Package buildinfo reports what the running binary was built from.
package buildinfo

import (
	"runtime"
	"runtime/debug"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// Version can be overridden at link time:
//
//	go build -ldflags "-X github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/buildinfo.Version=v1.2.3"
var Version = ""

const unknown = "unknown"

// reader is swapped in tests
var reader = debug.ReadBuildInfo

// Read collects module, toolchain and VCS stamps of the current binary
func Read(environment string) types.BuildInfo {
	info := types.BuildInfo{
		Module:      unknown,
		Version:     Version,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Environment: environment,
	}

	bi, ok := reader()
	if !ok {
		if info.Version == "" {
			info.Version = unknown
		}
		return info
	}

	info.Module = bi.Main.Path
	if info.Version == "" {
		info.Version = bi.Main.Version
	}
	if info.Version == "" {
		info.Version = unknown
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	var vcs types.VCSInfo
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs":
			vcs.System = s.Value
		case "vcs.revision":
			vcs.Revision = s.Value
		case "vcs.time":
			vcs.Time = s.Value
		case "vcs.modified":
			vcs.Modified = s.Value == "true"
		}
	}
	if vcs.System != "" {
		info.VCS = &vcs
	}

	return info
}
