package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Write places the rendered files under dir, creating subdirectories as
// needed. Existing files are overwritten.
func Write(dir string, files Rendered) error {
	for path, data := range files {
		dst := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dst, err)
		}
	}
	return nil
}

// Check compares the rendered files against what is on disk under dir and
// returns the relative paths that are missing or differ. A non-empty result
// means the checked-in sources are out of date with the manifest.
func Check(dir string, files Rendered) ([]string, error) {
	var stale []string
	for path, data := range files {
		dst := filepath.Join(dir, filepath.FromSlash(path))
		current, err := os.ReadFile(dst)
		if os.IsNotExist(err) {
			stale = append(stale, path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dst, err)
		}
		if !bytes.Equal(current, data) {
			stale = append(stale, path)
		}
	}
	sort.Strings(stale)
	return stale, nil
}
