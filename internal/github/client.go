package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/api"
)

// acceptPreview opts in to the checks API preview media type. Sending it on
// every request is harmless for stable endpoints.
const acceptPreview = "application/vnd.github.antiope-preview+json"

// Client implements API over the GitHub REST API using a bearer token.
type Client struct {
	rest *api.RESTClient
	log  *clog.Logger
}

// NewClient creates a Client authenticated with the given token, normally
// the GITHUB_TOKEN provided to an Actions job.
func NewClient(token string, timeout time.Duration) (*Client, error) {
	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
		Timeout:   timeout,
		Headers:   map[string]string{"Accept": acceptPreview},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest: rest,
		log:  clog.Default().WithPrefix("github"),
	}, nil
}

func (c *Client) PullRequest(repo string, number int) (PullRequest, error) {
	var pr PullRequest
	path := fmt.Sprintf("repos/%s/pulls/%d", repo, number)
	if err := c.rest.Get(path, &pr); err != nil {
		return PullRequest{}, fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
	}
	return pr, nil
}

func (c *Client) ListIssueComments(repo string, number int) ([]IssueComment, error) {
	var comments []IssueComment
	path := fmt.Sprintf("repos/%s/issues/%d/comments", repo, number)
	if err := c.rest.Get(path, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments on #%d: %w", number, err)
	}
	return comments, nil
}

func (c *Client) CreateIssueComment(repo string, number int, body string) error {
	c.log.Debug("creating issue comment", "repo", repo, "number", number)

	path := fmt.Sprintf("repos/%s/issues/%d/comments", repo, number)
	payload, err := encode(map[string]string{"body": body})
	if err != nil {
		return err
	}
	if err := c.rest.Post(path, payload, nil); err != nil {
		return fmt.Errorf("failed to create comment on #%d: %w", number, err)
	}
	return nil
}

func (c *Client) EditIssueComment(repo string, commentID int64, body string) error {
	c.log.Debug("editing issue comment", "repo", repo, "id", commentID)

	path := fmt.Sprintf("repos/%s/issues/comments/%d", repo, commentID)
	payload, err := encode(map[string]string{"body": body})
	if err != nil {
		return err
	}
	if err := c.rest.Patch(path, payload, nil); err != nil {
		return fmt.Errorf("failed to edit comment %d: %w", commentID, err)
	}
	return nil
}

func (c *Client) ListCommitStatuses(repo, sha string) ([]CommitStatus, error) {
	var statuses []CommitStatus
	path := fmt.Sprintf("repos/%s/commits/%s/statuses", repo, sha)
	if err := c.rest.Get(path, &statuses); err != nil {
		return nil, fmt.Errorf("failed to list statuses for %s: %w", sha, err)
	}
	return statuses, nil
}

func (c *Client) CreateCommitStatus(repo, sha string, status CommitStatus) error {
	c.log.Debug("creating commit status",
		"repo", repo, "sha", sha, "context", status.Context, "state", status.State)

	path := fmt.Sprintf("repos/%s/statuses/%s", repo, sha)
	payload, err := encode(status)
	if err != nil {
		return err
	}
	if err := c.rest.Post(path, payload, nil); err != nil {
		return fmt.Errorf("failed to create status for %s: %w", sha, err)
	}
	return nil
}

func (c *Client) CreateCheckRun(repo string, run CheckRun) error {
	c.log.Debug("creating check run",
		"repo", repo, "name", run.Name, "conclusion", run.Conclusion,
		"annotations", len(run.Output.Annotations))

	path := fmt.Sprintf("repos/%s/check-runs", repo)
	payload, err := encode(run)
	if err != nil {
		return err
	}
	if err := c.rest.Post(path, payload, nil); err != nil {
		return fmt.Errorf("failed to create check run %q: %w", run.Name, err)
	}
	return nil
}

// encode marshals a request body for the REST client.
func encode(v any) (*bytes.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}
