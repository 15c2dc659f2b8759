package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yabba/cicheck/internal/wip"
)

var checkWipCmd = &cobra.Command{
	Use:   "check_wip",
	Short: "Mirror the draft label onto a commit status",
	Long: `Set a commit status on the pull request head that tracks the draft
label: failure while the label is present, success once it is removed. The
status is only written when its state would change.`,
	Args: cobra.NoArgs,
	RunE: runCheckWip,
}

func init() {
	rootCmd.AddCommand(checkWipCmd)
}

func runCheckWip(cmd *cobra.Command, _ []string) error {
	return runCheckWipWithDeps(cmd, nil)
}

func runCheckWipWithDeps(_ *cobra.Command, deps *testDeps) error {
	rc, err := newRunContext(deps)
	if err != nil {
		return err
	}
	return wip.Sync(rc.api, rc.evt, rc.cfg.WIP)
}
