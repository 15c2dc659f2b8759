package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "n/a"

// ErrCheckFailed marks a check that ran to completion and failed. The
// diagnostics have already been printed by the time it is returned.
var ErrCheckFailed = errors.New("check failed")

var rootCmd = &cobra.Command{
	Use:   "cicheck",
	Short: "Pull request checks for GitHub Actions",
	Long: `Cicheck runs pull request checks from GitHub Actions workflows.

Commands are named after the operations workflows invoke. Each reads the
event payload from GITHUB_EVENT_PATH and authenticates API calls with
GITHUB_TOKEN.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
