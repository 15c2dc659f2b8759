package github

import (
	"fmt"
	"regexp"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Tagged comments carry a hidden HTML marker so a later run can find and
// update its own comment instead of posting a duplicate.

var tagCharRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// NormalizeTag replaces every character outside [a-zA-Z0-9_-] with an
// underscore. Normalization is idempotent.
func NormalizeTag(tag string) string {
	return tagCharRegex.ReplaceAllString(tag, "_")
}

// Marker returns the hidden HTML comment identifying a tagged comment.
func Marker(tag string) string {
	return fmt.Sprintf("<!-- CWTag: %s -->", NormalizeTag(tag))
}

// UpsertTaggedComment posts a new tagged comment on the pull request, or
// edits the existing one in place. A comment whose body already matches is
// left untouched.
func UpsertTaggedComment(client API, repo string, number int, tag, body string) error {
	marker := Marker(tag)
	fullBody := marker + "\n" + body
	log := clog.Default().WithPrefix("github")

	comments, err := client.ListIssueComments(repo, number)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if !strings.HasPrefix(comment.Body, marker) {
			continue
		}
		if comment.Body == fullBody {
			log.Info("not updating comment: already up-to-date", "tag", NormalizeTag(tag))
			return nil
		}
		return client.EditIssueComment(repo, comment.ID, fullBody)
	}

	return client.CreateIssueComment(repo, number, fullBody)
}
