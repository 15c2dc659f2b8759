package cmd

import (
	clog "github.com/charmbracelet/log"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"github.com/yabba/cicheck/internal/config"
	"github.com/yabba/cicheck/internal/lint"
)

var lintPlainFlag bool

var lintPyCmd = &cobra.Command{
	Use:   "lint_py",
	Short: "Lint every Python script in the repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, []string{"*.py"}, !lintPlainFlag, nil)
	},
}

var lintNotebooksCmd = &cobra.Command{
	Use:   "lint_notebooks",
	Short: "Convert every Jupyter notebook to a script and lint it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, []string{"*.ipynb"}, !lintPlainFlag, nil)
	},
}

var lintAllCmd = &cobra.Command{
	Use:   "lint_all",
	Short: "Lint every Python script and Jupyter notebook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd, []string{"*.py", "*.ipynb"}, !lintPlainFlag, nil)
	},
}

func init() {
	for _, c := range []*cobra.Command{lintPyCmd, lintNotebooksCmd, lintAllCmd} {
		c.Flags().BoolVar(&lintPlainFlag, "plain", false,
			"print raw linter output instead of reporting through the Checks API")
		rootCmd.AddCommand(c)
	}
}

// runLint lints files matching patterns. In checks mode the findings are
// reported as a check run on the pull request head; in plain mode the raw
// linter output is printed and no credentials are needed.
func runLint(cmd *cobra.Command, patterns []string, checks bool, deps *testDeps) error {
	var rc *runContext
	var err error
	if checks || deps != nil {
		rc, err = newRunContext(deps)
	} else {
		// Plain mode needs no event payload and no API credential.
		var cfg config.Config
		cfg, err = loadConfig()
		rc = &runContext{cfg: cfg}
	}
	if err != nil {
		return err
	}

	runner := lint.NewRunner(rc.cfg, rc.api, rc.evt, cmd.OutOrStdout())
	result, err := runner.Run(patterns, checks)
	if err != nil {
		return err
	}

	if !result.Clean() {
		clog.Error("lint found problems",
			"files", english.Plural(len(result.Bad), "file", ""))
		return ErrCheckFailed
	}
	return nil
}
