package config

import (
	"errors"
	"fmt"
	"time"
)

// Config represents the complete cicheck configuration.
type Config struct {
	Exec    ExecConfig               `toml:"exec"`
	Jira    JiraConfig               `toml:"jira"`
	Lint    LintConfig               `toml:"lint"`
	Linters map[string]LinterProfile `toml:"linters"`
	WIP     WIPConfig                `toml:"wip"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.Exec.Timeout <= 0 {
		return errors.New("exec.timeout must be positive")
	}
	if c.Jira.URL == "" {
		return errors.New("jira.url cannot be empty")
	}
	if c.WIP.Label == "" {
		return errors.New("wip.label cannot be empty")
	}
	if c.WIP.Context == "" {
		return errors.New("wip.context cannot be empty")
	}
	for _, name := range []string{c.Lint.ChecksProfile, c.Lint.PlainProfile} {
		profile, ok := c.Linters[name]
		if !ok {
			return fmt.Errorf("lint profile %q is not defined under [linters]", name)
		}
		if len(profile.Py) == 0 || len(profile.Ipynb) == 0 {
			return fmt.Errorf("lint profile %q must define py and ipynb argument lists", name)
		}
	}
	return nil
}

// ExecConfig configures external command execution.
type ExecConfig struct {
	Timeout time.Duration `toml:"timeout"` // Timeout for linter and API calls (e.g., "2m")
}

// JiraConfig configures the issue tracker backlinks.
type JiraConfig struct {
	URL string `toml:"url"` // Browse URL, e.g. "https://yabba.atlassian.net/browse"
}

// WIPConfig configures the draft-state status check.
type WIPConfig struct {
	Label   string `toml:"label"`   // PR label that marks work in progress
	Context string `toml:"context"` // Commit status context shown in the PR UI
}

// LintConfig configures file discovery and profile selection.
type LintConfig struct {
	// ChecksProfile is the linter profile used when reporting through the
	// Checks API; its output must be JSON.
	ChecksProfile string `toml:"checks_profile"`

	// PlainProfile is the linter profile used for human-readable output.
	PlainProfile string `toml:"plain_profile"`

	// SkipDirs are first path segments excluded from discovery.
	SkipDirs []string `toml:"skip_dirs"`

	// SkipPrefixes exclude any first path segment starting with one of
	// these prefixes (e.g. "venv" skips venv, venv38, venv-dev).
	SkipPrefixes []string `toml:"skip_prefixes"`
}

// LinterProfile holds the command line for one linter, per file kind.
// The file under inspection is appended as the last argument.
type LinterProfile struct {
	Py    []string `toml:"py"`    // arguments for plain Python scripts
	Ipynb []string `toml:"ipynb"` // arguments for converted notebooks
}
