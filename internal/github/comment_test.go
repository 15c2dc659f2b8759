package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain word", "jira", "jira"},
		{"allowed punctuation kept", "my-tag_1", "my-tag_1"},
		{"spaces replaced", "my tag", "my_tag"},
		{"special characters replaced", "a/b:c!", "a_b_c_"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTag(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTag_Idempotent(t *testing.T) {
	inputs := []string{"jira", "a/b:c!", "with space", "-_-", "weird\ttag\n"}

	for _, input := range inputs {
		once := NormalizeTag(input)
		assert.Equal(t, once, NormalizeTag(once), "normalizing %q twice changed the result", input)
	}
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "<!-- CWTag: jira -->", Marker("jira"))
	assert.Equal(t, "<!-- CWTag: my_tag -->", Marker("my tag"))
}

func TestUpsertTaggedComment_CreatesWhenAbsent(t *testing.T) {
	mock := &Mock{
		ListIssueCommentsFn: func(repo string, number int) ([]IssueComment, error) {
			return []IssueComment{{ID: 1, Body: "unrelated comment"}}, nil
		},
	}

	err := UpsertTaggedComment(mock, "yabba/widgets", 7, "jira", "Connected Jira: none")
	require.NoError(t, err)

	require.Len(t, mock.CreatedComments, 1)
	assert.Equal(t, "<!-- CWTag: jira -->\nConnected Jira: none", mock.CreatedComments[0])
	assert.Empty(t, mock.EditedComments)
}

func TestUpsertTaggedComment_EditsWhenBodyChanged(t *testing.T) {
	mock := &Mock{
		ListIssueCommentsFn: func(repo string, number int) ([]IssueComment, error) {
			return []IssueComment{
				{ID: 10, Body: "unrelated"},
				{ID: 11, Body: "<!-- CWTag: jira -->\nold body"},
			}, nil
		},
	}

	err := UpsertTaggedComment(mock, "yabba/widgets", 7, "jira", "new body")
	require.NoError(t, err)

	assert.Empty(t, mock.CreatedComments)
	assert.Equal(t, map[int64]string{11: "<!-- CWTag: jira -->\nnew body"}, mock.EditedComments)
}

func TestUpsertTaggedComment_NoopWhenIdentical(t *testing.T) {
	mock := &Mock{
		ListIssueCommentsFn: func(repo string, number int) ([]IssueComment, error) {
			return []IssueComment{{ID: 11, Body: "<!-- CWTag: jira -->\nsame body"}}, nil
		},
	}

	err := UpsertTaggedComment(mock, "yabba/widgets", 7, "jira", "same body")
	require.NoError(t, err)

	assert.Empty(t, mock.CreatedComments)
	assert.Empty(t, mock.EditedComments)
}

func TestUpsertTaggedComment_NormalizesTagForLookup(t *testing.T) {
	mock := &Mock{
		ListIssueCommentsFn: func(repo string, number int) ([]IssueComment, error) {
			return []IssueComment{{ID: 3, Body: "<!-- CWTag: my_tag -->\nbody"}}, nil
		},
	}

	err := UpsertTaggedComment(mock, "yabba/widgets", 7, "my tag", "body")
	require.NoError(t, err)

	assert.Empty(t, mock.CreatedComments)
	assert.Empty(t, mock.EditedComments)
}

func TestStatusForContext(t *testing.T) {
	statuses := []CommitStatus{
		{State: "failure", Context: "Draft"},
		{State: "success", Context: "Draft"},
		{State: "success", Context: "ci/test"},
	}

	st := StatusForContext(statuses, "Draft")
	require.NotNil(t, st)
	// Most recent first: the first matching entry wins.
	assert.Equal(t, "failure", st.State)

	assert.Nil(t, StatusForContext(statuses, "missing"))
	assert.Nil(t, StatusForContext(nil, "Draft"))
}
