package lint

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yabba/cicheck/internal/github"
)

// Finding is one entry of flake8's --format=json output.
type Finding struct {
	Code         string `json:"code"`
	LineNumber   int    `json:"line_number"`
	ColumnNumber int    `json:"column_number"`
	Text         string `json:"text"`
}

// ParseFindings decodes flake8 JSON output, a map keyed by file path.
// A single-file invocation produces one key; findings are merged across
// keys in path order regardless.
func ParseFindings(out string) ([]Finding, error) {
	byFile := make(map[string][]Finding)
	if err := json.Unmarshal([]byte(out), &byFile); err != nil {
		return nil, fmt.Errorf("failed to parse linter JSON: %w", err)
	}

	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var findings []Finding
	for _, path := range paths {
		findings = append(findings, byFile[path]...)
	}
	return findings, nil
}

// ToAnnotations maps findings to check-run annotations against the given
// repository-relative path (the original file, not the converted copy).
func ToAnnotations(path string, findings []Finding) []github.Annotation {
	annotations := make([]github.Annotation, 0, len(findings))
	for _, f := range findings {
		annotations = append(annotations, github.Annotation{
			Path:            path,
			StartLine:       f.LineNumber,
			EndLine:         f.LineNumber,
			StartColumn:     f.ColumnNumber,
			EndColumn:       f.ColumnNumber,
			AnnotationLevel: Severity(f.Code),
			Message:         fmt.Sprintf("%s: %s", f.Code, f.Text),
		})
	}
	return annotations
}

// Severity maps a flake8 code to an annotation level. PEP-8 errors and
// warnings (E/W) fail the check; all other codes are warnings.
func Severity(code string) string {
	if code != "" && (code[0] == 'E' || code[0] == 'W') {
		return github.LevelFailure
	}
	return github.LevelWarning
}
