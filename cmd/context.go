package cmd

import (
	"fmt"
	"os"

	"github.com/yabba/cicheck/internal/config"
	"github.com/yabba/cicheck/internal/event"
	"github.com/yabba/cicheck/internal/github"
)

// runContext holds the resolved dependencies shared by the check commands.
// The event payload is loaded exactly once per invocation.
type runContext struct {
	cfg config.Config
	evt *event.Event
	api github.API
}

// testDeps holds injectable dependencies for testing.
type testDeps struct {
	cfg *config.Config
	evt *event.Event
	api github.API
}

// newRunContext initializes the context from deps (for testing) or from
// the environment.
func newRunContext(deps *testDeps) (*runContext, error) {
	if deps != nil {
		cfg := config.DefaultConfig()
		if deps.cfg != nil {
			cfg = *deps.cfg
		}
		return &runContext{cfg: cfg, evt: deps.evt, api: deps.api}, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	eventPath := os.Getenv("GITHUB_EVENT_PATH")
	if eventPath == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is not set; cicheck must run inside a GitHub Actions job")
	}
	evt, err := event.Load(eventPath)
	if err != nil {
		return nil, err
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}
	api, err := github.NewClient(token, cfg.Exec.Timeout)
	if err != nil {
		return nil, err
	}

	return &runContext{cfg: cfg, evt: evt, api: api}, nil
}

// loadConfig merges cicheck.toml files over the built-in defaults.
func loadConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	loadResult, err := config.NewDefaultLoader().Load(config.Paths(cwd))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return loadResult.Config, nil
}
