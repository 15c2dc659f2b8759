package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// convertNotebook turns a notebook into a plain script for linting.
// nbconvert writes the script next to the notebook; it is moved into the
// temp dir, mirroring the source path. A failed conversion is fatal.
func (r *Runner) convertNotebook(tempDir, fn string) (string, error) {
	if err := os.MkdirAll(filepath.Join(tempDir, filepath.Dir(fn)), 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare conversion directory: %w", err)
	}

	rc, out, err := r.execute("jupyter", "nbconvert", fromRoot(r.root, fn), "--to", "script")
	if err != nil {
		return "", err
	}

	converted := strings.TrimSuffix(fn, ".ipynb") + ".py"
	sibling := fromRoot(r.root, converted)
	if rc != 0 || !isFile(sibling) {
		fmt.Fprintln(r.stdout, "ERROR")
		fmt.Fprintf(r.stdout, "\n%s\n\n", strings.Trim(out, "\n"))
		return "", fmt.Errorf("notebook conversion failed for %s", fn)
	}

	dest := filepath.Join(tempDir, filepath.FromSlash(converted))
	if err := os.Rename(sibling, dest); err != nil {
		return "", fmt.Errorf("failed to move converted notebook: %w", err)
	}
	return dest, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
