package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yabba/cicheck/internal/github"
)

// chdir is t.Chdir for Go toolchains older than 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestRunLint_CleanTreeSubmitsSuccessCheck(t *testing.T) {
	chdir(t, t.TempDir())
	mock := &github.Mock{}
	cmd, out := newTestCommand()

	err := runLint(cmd, []string{"*.py"}, true, &testDeps{evt: testEvent(), api: mock})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Every file linted successfully")
	require.Len(t, mock.CheckRuns, 1)
	assert.Equal(t, "success", mock.CheckRuns[0].Conclusion)
}

func TestRunLint_PlainCleanTreeSkipsChecksAPI(t *testing.T) {
	chdir(t, t.TempDir())
	mock := &github.Mock{}
	cmd, _ := newTestCommand()

	err := runLint(cmd, []string{"*.py"}, false, &testDeps{evt: testEvent(), api: mock})
	require.NoError(t, err)

	assert.Empty(t, mock.CheckRuns)
}
