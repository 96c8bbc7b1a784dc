package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// resolveBuildInfo prefers the ldflags values and falls back to what the Go
// toolchain stamped into the binary: the module version for go install
// builds and the vcs settings for builds from a checkout.
func resolveBuildInfo(read func() (*debug.BuildInfo, bool)) buildInfo {
	info := buildInfo{Version: version, Commit: commit, Date: date, GoVersion: "unknown"}

	bi, ok := read()
	if !ok || bi == nil {
		return info
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	var modified bool
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "none" && setting.Value != "" {
				info.Commit = setting.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.time":
			if info.Date == "unknown" && setting.Value != "" {
				info.Date = setting.Value
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if modified && commit == "none" && info.Commit != "none" {
		info.Commit += "-dirty"
	}
	return info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := resolveBuildInfo(debug.ReadBuildInfo)
			fmt.Fprintf(cmd.OutOrStdout(), "selectorui %s\ncommit: %s\nbuilt: %s\ngo: %s\n",
				info.Version, info.Commit, info.Date, info.GoVersion)
			return nil
		},
	}

	return cmd
}
