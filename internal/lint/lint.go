// Package lint discovers source files, runs external linters over them, and
// reports findings either as plain output or as check-run annotations.
package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/yabba/cicheck/internal/config"
	"github.com/yabba/cicheck/internal/event"
	"github.com/yabba/cicheck/internal/github"
)

const (
	checkRunName    = "flake8"
	checkRunTitle   = "Flake8"
	checkRunSummary = "Python code linted using [Flake8](http://flake8.pycqa.org/)."

	// GitHub accepts at most this many annotations per check-run call.
	// Larger batches are submitted anyway and truncated server-side; see
	// the warning in submitCheckRun.
	annotationLimit = 50
)

// Runner lints files matching glob patterns. In checks mode the findings
// are submitted to the GitHub Checks API; in plain mode the raw linter
// output is printed.
type Runner struct {
	cfg    config.Config
	client github.API   // nil in plain mode
	evt    *event.Event // nil in plain mode
	log    *clog.Logger
	stdout io.Writer

	// Seams for tests.
	execute  func(args ...string) (int, string, error)
	root     string
	tempRoot string
}

// NewRunner creates a Runner. The client and event may be nil when the
// Checks API is not used.
func NewRunner(cfg config.Config, client github.API, evt *event.Event, stdout io.Writer) *Runner {
	r := &Runner{
		cfg:    cfg,
		client: client,
		evt:    evt,
		log:    clog.Default().WithPrefix("lint"),
		stdout: stdout,
		root:   ".",
	}
	r.execute = r.runCommand
	return r
}

// Result aggregates the outcome of one lint invocation.
type Result struct {
	// Bad maps each failing file to the linter names that flagged it.
	Bad map[string][]string

	// Order lists the failing files in the order they were processed.
	Order []string

	// Files is the number of files linted.
	Files int
}

// Clean reports whether no file failed.
func (r Result) Clean() bool { return len(r.Bad) == 0 }

// Run lints every file matching one of the patterns. Lint findings are a
// regular outcome reported through the Result; the returned error is
// reserved for fatal failures (conversion errors, unparsable linter
// output, API errors).
func (r *Runner) Run(patterns []string, checks bool) (Result, error) {
	profileName := r.cfg.Lint.PlainProfile
	if checks {
		profileName = r.cfg.Lint.ChecksProfile
	}
	profile := r.cfg.Linters[profileName]

	// One temp dir for all converted notebooks, removed after the loop.
	tempDir, err := os.MkdirTemp(r.tempRoot, "cicheck-nbconvert-")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	files, err := Discover(r.root, patterns, r.cfg.Lint)
	if err != nil {
		return Result{}, err
	}
	r.log.Debug("discovered files", "patterns", patterns, "count", len(files))

	annotations := make([]github.Annotation, 0)
	result := Result{Bad: make(map[string][]string), Files: len(files)}

	for _, fn := range files {
		realFn := fromRoot(r.root, fn)
		argv := profile.Py
		if strings.HasSuffix(fn, ".ipynb") {
			realFn, err = r.convertNotebook(tempDir, fn)
			if err != nil {
				return Result{}, err
			}
			argv = profile.Ipynb
		}

		fmt.Fprintf(r.stdout, "%s: %s: ", fn, argv[0])

		rc, out, err := r.execute(append(append([]string{}, argv...), realFn)...)
		if err != nil {
			fmt.Fprintln(r.stdout, "ERROR")
			return Result{}, err
		}
		if rc == 0 {
			fmt.Fprintln(r.stdout, "OK")
			continue
		}

		fmt.Fprintln(r.stdout, "ERROR")
		if checks {
			findings, perr := ParseFindings(out)
			if perr != nil {
				return Result{}, fmt.Errorf("unexpected %s output for %s: %w", argv[0], fn, perr)
			}
			annotations = append(annotations, ToAnnotations(fn, findings)...)
		} else {
			fmt.Fprintf(r.stdout, "\n%s\n\n", strings.Trim(out, "\n"))
		}

		if _, seen := result.Bad[fn]; !seen {
			result.Order = append(result.Order, fn)
		}
		result.Bad[fn] = append(result.Bad[fn], profileName)
	}

	if !result.Clean() {
		fmt.Fprintln(r.stdout, "\nProblems found in the following files:")
		for _, fn := range result.Order {
			fmt.Fprintf(r.stdout, "    %s (%s)\n", fn, strings.Join(result.Bad[fn], ", "))
		}
		fmt.Fprintln(r.stdout)

		if checks {
			if err := r.submitCheckRun(false, annotations); err != nil {
				return Result{}, err
			}
			if data, merr := json.MarshalIndent(annotations, "", "    "); merr == nil {
				fmt.Fprintln(r.stdout, string(data))
			}
		}
		return result, nil
	}

	if checks {
		if err := r.submitCheckRun(true, annotations); err != nil {
			return Result{}, err
		}
	}

	fmt.Fprintln(r.stdout, "\nEvery file linted successfully")
	return result, nil
}

// submitCheckRun creates one completed check run carrying all annotations.
func (r *Runner) submitCheckRun(success bool, annotations []github.Annotation) error {
	if len(annotations) > annotationLimit {
		r.log.Warn("annotation count exceeds the per-call limit, GitHub keeps the first ones",
			"count", len(annotations), "limit", annotationLimit)
	}

	conclusion := github.StateFailure
	if success {
		conclusion = github.StateSuccess
	}

	run := github.CheckRun{
		Name:       checkRunName,
		HeadSHA:    r.evt.PullRequest.Head.SHA,
		Status:     "completed",
		Conclusion: conclusion,
		Output: github.CheckOutput{
			Title:       checkRunTitle,
			Summary:     checkRunSummary,
			Annotations: annotations,
		},
	}

	return r.client.CreateCheckRun(r.evt.PullRequest.Head.Repo.FullName, run)
}

// runCommand executes an external command, capturing combined stdout and
// stderr. A non-zero exit is a regular outcome; the error is reserved for
// timeouts and start failures.
func (r *Runner) runCommand(args ...string) (int, string, error) {
	r.log.Debug("executing command", "cmd", args[0], "args", args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Exec.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			r.log.Warn("command timed out", "cmd", args[0], "timeout", r.cfg.Exec.Timeout)
			return 0, output.String(),
				fmt.Errorf("%s timed out after %s", strings.Join(args, " "), r.cfg.Exec.Timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), output.String(), nil
		}
		return 0, output.String(), fmt.Errorf("%s failed: %w", args[0], err)
	}

	return 0, output.String(), nil
}

// fromRoot resolves a discovered file path against the scan root.
func fromRoot(root, fn string) string {
	if root == "." || root == "" {
		return fn
	}
	return root + "/" + fn
}
