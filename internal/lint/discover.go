package lint

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yabba/cicheck/internal/config"
)

// Discover walks the tree under root and returns the relative slash paths
// of all files whose base name matches one of the glob patterns. Paths
// whose first segment is an excluded directory (build artifacts, notebook
// checkpoints, virtual envs) are skipped.
func Discover(root string, patterns []string, cfg config.LintConfig) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			return rerr
		}
		rel = filepath.ToSlash(rel)

		// The exclusion applies to the first path segment, which for a
		// root-level file is the file name itself.
		top, _, _ := strings.Cut(rel, "/")
		if excluded(top, cfg) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		for _, pattern := range patterns {
			ok, merr := filepath.Match(pattern, d.Name())
			if merr != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, merr)
			}
			if ok {
				files = append(files, rel)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func excluded(top string, cfg config.LintConfig) bool {
	for _, dir := range cfg.SkipDirs {
		if top == dir {
			return true
		}
	}
	for _, prefix := range cfg.SkipPrefixes {
		if strings.HasPrefix(top, prefix) {
			return true
		}
	}
	return false
}
