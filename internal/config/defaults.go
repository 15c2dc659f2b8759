package config

import "time"

// DefaultConfig returns the built-in configuration. Every value can be
// overridden from cicheck.toml.
func DefaultConfig() Config {
	return Config{
		Exec: ExecConfig{
			Timeout: 2 * time.Minute,
		},
		Jira: JiraConfig{
			URL: "https://yabba.atlassian.net/browse",
		},
		WIP: WIPConfig{
			Label:   "draft",
			Context: "Draft",
		},
		Lint: LintConfig{
			ChecksProfile: "flake8-json",
			PlainProfile:  "flake8-plain",
			SkipDirs:      []string{"dist", "build", ".ipynb_checkpoints"},
			SkipPrefixes:  []string{"venv"},
		},
		Linters: map[string]LinterProfile{
			"flake8-plain": {
				Py: []string{"flake8", "--statistics"},
				Ipynb: []string{
					"flake8", "--append-config", ".flake8_append_notebooks",
					"--statistics",
				},
			},
			"flake8-json": {
				Py: []string{"flake8", "--format=json"},
				Ipynb: []string{
					"flake8", "--append-config", ".flake8_append_notebooks",
					"--format=json",
				},
			},
		},
	}
}
