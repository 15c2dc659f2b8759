package github

// Mock implements API for tests. Each method delegates to its function
// field when set; mutating calls are recorded either way.
type Mock struct {
	PullRequestFn        func(repo string, number int) (PullRequest, error)
	ListIssueCommentsFn  func(repo string, number int) ([]IssueComment, error)
	CreateIssueCommentFn func(repo string, number int, body string) error
	EditIssueCommentFn   func(repo string, commentID int64, body string) error
	ListCommitStatusesFn func(repo, sha string) ([]CommitStatus, error)
	CreateCommitStatusFn func(repo, sha string, status CommitStatus) error
	CreateCheckRunFn     func(repo string, run CheckRun) error

	CreatedComments []string
	EditedComments  map[int64]string
	CreatedStatuses []CommitStatus
	CheckRuns       []CheckRun
}

// Ensure Mock implements the API interface.
var _ API = (*Mock)(nil)

func (m *Mock) PullRequest(repo string, number int) (PullRequest, error) {
	if m.PullRequestFn != nil {
		return m.PullRequestFn(repo, number)
	}
	return PullRequest{}, nil
}

func (m *Mock) ListIssueComments(repo string, number int) ([]IssueComment, error) {
	if m.ListIssueCommentsFn != nil {
		return m.ListIssueCommentsFn(repo, number)
	}
	return nil, nil
}

func (m *Mock) CreateIssueComment(repo string, number int, body string) error {
	m.CreatedComments = append(m.CreatedComments, body)
	if m.CreateIssueCommentFn != nil {
		return m.CreateIssueCommentFn(repo, number, body)
	}
	return nil
}

func (m *Mock) EditIssueComment(repo string, commentID int64, body string) error {
	if m.EditedComments == nil {
		m.EditedComments = make(map[int64]string)
	}
	m.EditedComments[commentID] = body
	if m.EditIssueCommentFn != nil {
		return m.EditIssueCommentFn(repo, commentID, body)
	}
	return nil
}

func (m *Mock) ListCommitStatuses(repo, sha string) ([]CommitStatus, error) {
	if m.ListCommitStatusesFn != nil {
		return m.ListCommitStatusesFn(repo, sha)
	}
	return nil, nil
}

func (m *Mock) CreateCommitStatus(repo, sha string, status CommitStatus) error {
	m.CreatedStatuses = append(m.CreatedStatuses, status)
	if m.CreateCommitStatusFn != nil {
		return m.CreateCommitStatusFn(repo, sha, status)
	}
	return nil
}

func (m *Mock) CreateCheckRun(repo string, run CheckRun) error {
	m.CheckRuns = append(m.CheckRuns, run)
	if m.CreateCheckRunFn != nil {
		return m.CreateCheckRunFn(repo, run)
	}
	return nil
}
