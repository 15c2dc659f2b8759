// Package event models the GitHub Actions event payload describing the
// pull request a workflow run was triggered for.
package event

import (
	"encoding/json"
	"fmt"
	"os"
)

// Event is the subset of the Actions event payload this tool reads.
// It is loaded exactly once at process start and passed by reference to
// every component that needs it.
type Event struct {
	PullRequest PullRequest `json:"pull_request"`
}

// PullRequest carries the pull request fields used by the checks.
type PullRequest struct {
	Number int     `json:"number"`
	Title  string  `json:"title"`
	Labels []Label `json:"labels"`
	Base   Base    `json:"base"`
	Head   Head    `json:"head"`
}

// Label is a label attached to the pull request.
type Label struct {
	Name string `json:"name"`
}

// Base identifies the repository the pull request targets.
type Base struct {
	Repo Repo `json:"repo"`
}

// Head identifies the source commit and repository of the pull request.
type Head struct {
	SHA  string `json:"sha"`
	Repo Repo   `json:"repo"`
}

// Repo identifies a repository by its "owner/name" full name.
type Repo struct {
	FullName string `json:"full_name"`
}

// Load reads and validates the event payload at the given path.
// Validation happens here, once, so that malformed payloads fail with a
// clear diagnostic instead of a deep-access error far from the cause.
func Load(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event payload: %w", err)
	}

	var evt Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("failed to parse event payload %s: %w", path, err)
	}

	if err := evt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event payload %s: %w", path, err)
	}

	return &evt, nil
}

// Validate checks that every field the checks depend on is present.
func (e *Event) Validate() error {
	pr := e.PullRequest
	switch {
	case pr.Number <= 0:
		return fmt.Errorf("missing pull_request.number")
	case pr.Base.Repo.FullName == "":
		return fmt.Errorf("missing pull_request.base.repo.full_name")
	case pr.Head.SHA == "":
		return fmt.Errorf("missing pull_request.head.sha")
	case pr.Head.Repo.FullName == "":
		return fmt.Errorf("missing pull_request.head.repo.full_name")
	}
	return nil
}

// HasLabel reports whether the pull request carries the given label.
func (pr PullRequest) HasLabel(name string) bool {
	for _, l := range pr.Labels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// LabelNames returns the label names in payload order.
func (pr PullRequest) LabelNames() []string {
	names := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		names = append(names, l.Name)
	}
	return names
}
