// Package build holds build-time information.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String returns a one-line description.
func (i Info) String() string {
	goVersion := i.GoVersion
	if goVersion == "" {
		goVersion = runtime.Version()
	}
	return fmt.Sprintf("navkit %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, goVersion)
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/navkit"
}
