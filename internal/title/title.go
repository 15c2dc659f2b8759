// Package title validates pull request titles against the required Jira
// reference format and builds the backlink comment.
package title

import (
	"fmt"
	"regexp"
	"strings"
)

// A valid title starts with one or more comma-separated Jira references,
// each KEY-NUMBER with a key of two or more uppercase letters and a number
// without leading zero, followed by ": " and the actual title.
var (
	titleRegex = regexp.MustCompile(`^(([A-Z]{2,}-[1-9][0-9]*, )*([A-Z]{2,}-[1-9][0-9]*)): `)
	keyRegex   = regexp.MustCompile(`[A-Z]{2,}-[1-9][0-9]*`)
)

// Instructions is printed when a title does not match the required format.
const Instructions = "Pull request title must begin with the associated Jira issue, e.g.:\n\n" +
	"    JIRAKEY-42: Improve core algorithm\n\n" +
	"Rename the pull request accordingly and create a Jira if it does not exist!"

// Keys returns the Jira references found in the title prefix and whether
// the title is valid.
func Keys(title string) ([]string, bool) {
	m := titleRegex.FindStringSubmatch(title)
	if m == nil {
		return nil, false
	}
	return keyRegex.FindAllString(m[1], -1), true
}

// CommentBody builds the "Connected Jira" comment linking every key to the
// issue tracker.
func CommentBody(keys []string, jiraURL string) string {
	links := make([]string, 0, len(keys))
	for _, key := range keys {
		links = append(links, fmt.Sprintf("[%s](%s/%s)", key, jiraURL, key))
	}
	return "Connected Jira: " + strings.Join(links, ", ")
}

// SelfTestTitles is the corpus exercised by the test_pr_title command,
// mixing valid and invalid titles.
var SelfTestTitles = []string{
	"JiRA-123: This is a title",
	"J-12: A title",
	"JIRA-01: This is a title",
	" JIRA-42: This is a title",
	"JIRA-42:This is a title",
	"JIRA-43: this is a title",
	"JIRA-1, JA-2: Multiple issues",
	"JIRA-1, JIRA-2, JIRA-3: Multiple issues",
}
