package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// SDKName identifies the SDK in logs and telemetry.
const SDKName = "authkit"

// Version is set at build time using -ldflags.
var Version = "dev"

// Info represents SDK version information.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	IsRelease bool   `json:"is_release"`
}

// Get returns SDK version information, filling in what the build recorded.
func Get() Info {
	info := Info{
		Name:      SDKName,
		Version:   Version,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		}
	}

	return info
}

// String returns a human-readable version string.
func (i Info) String() string {
	if i.GitCommit != "" {
		return fmt.Sprintf("%s %s (%s)", i.Name, i.Version, i.GitCommit)
	}
	return fmt.Sprintf("%s %s", i.Name, i.Version)
}

// UserAgent returns a user-agent style token, e.g. "authkit/1.2.0 go/go1.26.0".
func UserAgent() string {
	info := Get()
	if info.GoVersion == "" {
		return fmt.Sprintf("%s/%s", info.Name, info.Version)
	}
	return fmt.Sprintf("%s/%s go/%s", info.Name, info.Version, info.GoVersion)
}
