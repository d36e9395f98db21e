// Package build describes the numdiff binary. Release builds inject a JSON
// document with -ldflags; other builds fall back to the module information
// the Go toolchain records.
package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Info is the build metadata shown by numdiff --version.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	BuildTime string `json:"build_time"` //nolint:tagliatelle
	GoVersion string `json:"go_version"` //nolint:tagliatelle
}

func (i Info) String() string {
	s := i.Version
	if s == "" {
		s = "(devel)"
	}

	if i.GitCommit != "" {
		s += " commit " + i.GitCommit
	}

	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}

	if i.GoVersion != "" {
		s += fmt.Sprintf(" (%s)", i.GoVersion)
	}

	return s
}

// Parse decodes injected build information. It returns false if js is
// empty, "{}" or not valid JSON.
func Parse(js string) (*Info, bool) {
	if js == "" || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON", "data", js, "error", err)

		return nil, false
	}

	return &info, true
}

// Current returns the injected build information if js holds any, and the
// toolchain's record of the main module otherwise.
func Current(js string) Info {
	if info, ok := Parse(js); ok {
		return *info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}

	info := Info{
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.GitCommit = setting.Value
		case "vcs.time":
			info.BuildTime = setting.Value
		}
	}

	return info
}
