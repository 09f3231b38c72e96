package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the files directly inside dir whose names end with one of
// exts. Matching is an exact, case-sensitive suffix test, so ".jpg" and
// ".JPG" must both be listed to pick up either. Hidden files and
// directories are left out. Paths come back sorted by name.
func Discover(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if hasExtension(name, exts) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return true
		}
	}
	return false
}
