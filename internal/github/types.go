package github

// Commit status states understood by GitHub.
const (
	StateSuccess = "success"
	StateFailure = "failure"
)

// Annotation levels for check-run output.
const (
	LevelNotice  = "notice"
	LevelWarning = "warning"
	LevelFailure = "failure"
)

// PullRequest is the subset of the pull request object the checks read.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// IssueComment is a comment on the pull request conversation.
type IssueComment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// CommitStatus is one status record of a commit under a named context.
type CommitStatus struct {
	State       string `json:"state"`
	Description string `json:"description,omitempty"`
	Context     string `json:"context"`
}

// CheckRun is the request body for POST /repos/{repo}/check-runs.
// The checks API is a preview surface and needs the preview Accept header.
type CheckRun struct {
	Name       string      `json:"name"`
	HeadSHA    string      `json:"head_sha"`
	Status     string      `json:"status"`
	Conclusion string      `json:"conclusion"`
	Output     CheckOutput `json:"output"`
}

// CheckOutput carries the check-run summary and its annotations.
type CheckOutput struct {
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Annotations []Annotation `json:"annotations"`
}

// Annotation is a file/line/column scoped diagnostic attached to a check
// run. See the GitHub checks API annotations object.
type Annotation struct {
	Path            string `json:"path"`
	StartLine       int    `json:"start_line"`
	EndLine         int    `json:"end_line"`
	StartColumn     int    `json:"start_column"`
	EndColumn       int    `json:"end_column"`
	AnnotationLevel string `json:"annotation_level"`
	Message         string `json:"message"`
}

// StatusForContext returns the most recent status for the given context,
// or nil if the commit has never carried one. Statuses must be ordered
// most recent first, as ListCommitStatuses returns them.
func StatusForContext(statuses []CommitStatus, context string) *CommitStatus {
	for i := range statuses {
		if statuses[i].Context == context {
			return &statuses[i]
		}
	}
	return nil
}
