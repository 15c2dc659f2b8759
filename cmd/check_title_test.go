package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yabba/cicheck/internal/event"
	"github.com/yabba/cicheck/internal/github"
	"github.com/yabba/cicheck/internal/title"
)

func testEvent(labels ...string) *event.Event {
	evt := &event.Event{}
	evt.PullRequest.Number = 12
	evt.PullRequest.Title = "JIRA-1: Cached title"
	evt.PullRequest.Base.Repo.FullName = "yabba/widgets"
	evt.PullRequest.Head.Repo.FullName = "yabba/widgets"
	evt.PullRequest.Head.SHA = "abc123"
	for _, name := range labels {
		evt.PullRequest.Labels = append(evt.PullRequest.Labels, event.Label{Name: name})
	}
	return evt
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)
	return c, &out
}

func TestCheckTitle_ValidTitlePostsComment(t *testing.T) {
	mock := &github.Mock{}
	cmd, out := newTestCommand()

	err := runCheckTitleWithDeps(cmd, []string{"JIRA-42: Add feature"},
		&testDeps{evt: testEvent(), api: mock})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Pull request title is good. Jira keys found: JIRA-42")

	require.Len(t, mock.CreatedComments, 1)
	body := mock.CreatedComments[0]
	assert.Contains(t, body, "<!-- CWTag: jira -->")
	assert.Contains(t, body, "Connected Jira: [JIRA-42](https://yabba.atlassian.net/browse/JIRA-42)")
}

func TestCheckTitle_InvalidTitleFails(t *testing.T) {
	mock := &github.Mock{}
	cmd, out := newTestCommand()

	err := runCheckTitleWithDeps(cmd, []string{"add feature"},
		&testDeps{evt: testEvent(), api: mock})
	require.ErrorIs(t, err, ErrCheckFailed)

	assert.Contains(t, out.String(), title.Instructions)
	assert.Empty(t, mock.CreatedComments)
}

func TestCheckTitle_FetchesTitleFromAPI(t *testing.T) {
	mock := &github.Mock{
		PullRequestFn: func(repo string, number int) (github.PullRequest, error) {
			assert.Equal(t, "yabba/widgets", repo)
			assert.Equal(t, 12, number)
			return github.PullRequest{Number: number, Title: "JIRA-7, JIRA-8: Renamed"}, nil
		},
	}
	cmd, _ := newTestCommand()

	err := runCheckTitleWithDeps(cmd, nil, &testDeps{evt: testEvent(), api: mock})
	require.NoError(t, err)

	require.Len(t, mock.CreatedComments, 1)
	assert.Contains(t, mock.CreatedComments[0], "[JIRA-7]")
	assert.Contains(t, mock.CreatedComments[0], "[JIRA-8]")
}

func TestCheckTitle_EditsExistingComment(t *testing.T) {
	stale := github.Marker("jira") + "\nConnected Jira: [JIRA-1](https://yabba.atlassian.net/browse/JIRA-1)"
	mock := &github.Mock{
		ListIssueCommentsFn: func(string, int) ([]github.IssueComment, error) {
			return []github.IssueComment{{ID: 99, Body: stale}}, nil
		},
	}
	cmd, _ := newTestCommand()

	err := runCheckTitleWithDeps(cmd, []string{"JIRA-2: Retargeted"},
		&testDeps{evt: testEvent(), api: mock})
	require.NoError(t, err)

	assert.Empty(t, mock.CreatedComments)
	require.Contains(t, mock.EditedComments, int64(99))
	assert.Contains(t, mock.EditedComments[99], "[JIRA-2]")
}

func TestTestTitle_RendersVerdictTable(t *testing.T) {
	cmd, out := newTestCommand()

	err := runTestTitle(cmd, nil)
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "Result")
	assert.Contains(t, rendered, "FAIL")
	assert.Contains(t, rendered, "OK")
	for _, candidate := range title.SelfTestTitles {
		assert.Contains(t, rendered, candidate)
	}
}
