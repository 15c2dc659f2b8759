package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yabba/cicheck/internal/github"
	"github.com/yabba/cicheck/internal/title"
)

var checkTitleCmd = &cobra.Command{
	Use:   "check_pr_title [title]",
	Short: "Validate the pull request title against the Jira reference format",
	Long: `Validate that the pull request title starts with one or more Jira
references ("KEY-42: " or "KEY-1, KEY-2: ") and post a comment linking each
referenced issue. The comment is tagged and edited in place on later runs.

Without an argument the title is fetched from the API rather than taken from
the cached event payload, which can be stale after a rename.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheckTitle,
}

var testTitleCmd = &cobra.Command{
	Use:   "test_pr_title",
	Short: "Exercise the title checker against a built-in corpus",
	Long: `Run the title checker over a built-in corpus of titles and print the
verdict for each. No API calls are made.`,
	Args: cobra.NoArgs,
	RunE: runTestTitle,
}

func init() {
	rootCmd.AddCommand(checkTitleCmd)
	rootCmd.AddCommand(testTitleCmd)
}

func runCheckTitle(cmd *cobra.Command, args []string) error {
	return runCheckTitleWithDeps(cmd, args, nil)
}

func runCheckTitleWithDeps(cmd *cobra.Command, args []string, deps *testDeps) error {
	rc, err := newRunContext(deps)
	if err != nil {
		return err
	}

	baseRepo := rc.evt.PullRequest.Base.Repo.FullName
	prNumber := rc.evt.PullRequest.Number

	var prTitle string
	if len(args) == 1 {
		prTitle = args[0]
	} else {
		pr, err := rc.api.PullRequest(baseRepo, prNumber)
		if err != nil {
			return err
		}
		prTitle = pr.Title
		if cached := rc.evt.PullRequest.Title; cached != prTitle {
			clog.Warn("cached event title is stale", "cached", cached, "api", prTitle)
		}
	}

	keys, ok := title.Keys(prTitle)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), title.Instructions)
		return ErrCheckFailed
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pull request title is good. Jira keys found: %s\n",
		strings.Join(keys, ", "))

	body := title.CommentBody(keys, rc.cfg.Jira.URL)
	return github.UpsertTaggedComment(rc.api, baseRepo, prNumber, "jira", body)
}

func runTestTitle(cmd *cobra.Command, _ []string) error {
	pass := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fail := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	rows := make([][]string, 0, len(title.SelfTestTitles))
	for _, candidate := range title.SelfTestTitles {
		verdict := fail.Render("FAIL")
		if _, ok := title.Keys(candidate); ok {
			verdict = pass.Render(" OK ")
		}
		rows = append(rows, []string{verdict, candidate})
	}

	out := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Result", "Title").
		Rows(rows...)

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
