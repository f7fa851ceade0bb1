package generator

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yargevad/filepathx"
)

// generatedFiles lists the gen output under dir that was written at or
// after since, relative to the layout root. Files already in seen are
// skipped and new ones are added to it, so nested packages are counted once.
func generatedFiles(l *Layout, dir string, since time.Time, seen map[string]bool) ([]string, error) {
	matches, err := filepathx.Glob(filepath.Join(dir, "**", "*.gen.go"))
	if err != nil {
		return nil, wrap(ErrIO, err)
	}
	if info, statErr := os.Stat(filepath.Join(dir, "gen.go")); statErr == nil && !info.IsDir() {
		matches = append(matches, filepath.Join(dir, "gen.go"))
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.ModTime().Before(since) {
			continue
		}
		rel := l.rel(m)
		if seen[rel] {
			continue
		}
		seen[rel] = true
		files = append(files, rel)
	}
	sort.Strings(files)
	return files, nil
}
