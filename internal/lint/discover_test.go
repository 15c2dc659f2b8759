package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yabba/cicheck/internal/config"
)

func makeTree(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("pass\n"), 0o644))
	}
	return root
}

func TestDiscover(t *testing.T) {
	root := makeTree(t,
		"setup.py",
		"pkg/mod.py",
		"pkg/deep/util.py",
		"notebooks/analysis.ipynb",
		"README.md",
	)

	cfg := config.DefaultConfig().Lint

	files, err := Discover(root, []string{"*.py"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"pkg/deep/util.py", "pkg/mod.py", "setup.py"}, files)

	files, err = Discover(root, []string{"*.py", "*.ipynb"}, cfg)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"notebooks/analysis.ipynb", "pkg/deep/util.py", "pkg/mod.py", "setup.py"},
		files)
}

func TestDiscover_SkipsExcludedDirs(t *testing.T) {
	root := makeTree(t,
		"keep.py",
		"dist/generated.py",
		"build/lib/mod.py",
		".ipynb_checkpoints/analysis-checkpoint.ipynb",
		"venv/lib/site.py",
		"venv38/lib/site.py",
		"pkg/venv_helpers.py", // nested name only excluded at the top level
	)

	files, err := Discover(root, []string{"*.py", "*.ipynb"}, config.DefaultConfig().Lint)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.py", "pkg/venv_helpers.py"}, files)
}

func TestDiscover_FirstSegmentAppliesToFiles(t *testing.T) {
	// A root-level file whose name starts with "venv" is excluded too:
	// the exclusion looks at the first path segment, whatever it is.
	root := makeTree(t, "venv_setup.py", "ok.py")

	files, err := Discover(root, []string{"*.py"}, config.DefaultConfig().Lint)
	require.NoError(t, err)

	assert.Equal(t, []string{"ok.py"}, files)
}

func TestDiscover_NoMatches(t *testing.T) {
	root := makeTree(t, "README.md", "docs/guide.md")

	files, err := Discover(root, []string{"*.py"}, config.DefaultConfig().Lint)
	require.NoError(t, err)

	assert.Empty(t, files)
}
