// Package github provides the GitHub REST API surface used by the checks:
// pull requests, issue comments, commit statuses, and check runs.
package github

// API defines the GitHub operations the checks depend on. Repositories are
// identified by their "owner/name" full name throughout.
type API interface {

	// PullRequest returns a single pull request by number.
	PullRequest(repo string, number int) (PullRequest, error)

	// ListIssueComments returns all issue comments on a pull request,
	// oldest first.
	ListIssueComments(repo string, number int) ([]IssueComment, error)

	// CreateIssueComment posts a new issue comment on a pull request.
	CreateIssueComment(repo string, number int, body string) error

	// EditIssueComment replaces the body of an existing issue comment.
	EditIssueComment(repo string, commentID int64, body string) error

	// ListCommitStatuses returns the statuses of a commit, most recent
	// first. The first status per context is the one shown in the PR UI.
	ListCommitStatuses(repo, sha string) ([]CommitStatus, error)

	// CreateCommitStatus adds a new status to a commit.
	CreateCommitStatus(repo, sha string, status CommitStatus) error

	// CreateCheckRun creates a completed check run with annotations.
	CreateCheckRun(repo string, run CheckRun) error
}

// Ensure Client implements the API interface.
var _ API = (*Client)(nil)
