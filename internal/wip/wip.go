// Package wip keeps a commit status in sync with the pull request's draft
// label.
package wip

import (
	"fmt"

	clog "github.com/charmbracelet/log"
	"github.com/yabba/cicheck/internal/config"
	"github.com/yabba/cicheck/internal/event"
	"github.com/yabba/cicheck/internal/github"
)

// Sync compares the draft label on the pull request with the most recent
// status under the configured context and writes a new status only when
// the two disagree. Calling it again without a label change is a no-op.
func Sync(client github.API, evt *event.Event, cfg config.WIPConfig) error {
	log := clog.Default().WithPrefix("wip")

	repo := evt.PullRequest.Head.Repo.FullName
	sha := evt.PullRequest.Head.SHA

	statuses, err := client.ListCommitStatuses(repo, sha)
	if err != nil {
		return err
	}

	// nil until a status has ever been written for this context.
	var wasWip *bool
	if st := github.StatusForContext(statuses, cfg.Context); st != nil {
		b := st.State != github.StateSuccess
		wasWip = &b
	}

	isWip := evt.PullRequest.HasLabel(cfg.Label)
	log.Info("work in progress", "wip", isWip, "label", cfg.Label)

	if wasWip != nil && *wasWip == isWip {
		log.Info("not updating WIP status: did not change")
		return nil
	}

	log.Info("updating WIP status", "context", cfg.Context)
	status := github.CommitStatus{
		State:       github.StateSuccess,
		Description: fmt.Sprintf("Does not have the %q label", cfg.Label),
		Context:     cfg.Context,
	}
	if isWip {
		status.State = github.StateFailure
		status.Description = fmt.Sprintf("Has the %q label", cfg.Label)
	}

	return client.CreateCommitStatus(repo, sha, status)
}
