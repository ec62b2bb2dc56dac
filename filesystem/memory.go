package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// NewMemoryLister returns a Lister over an in-memory hierarchy below root
// holding paths. Paths are slash separated and relative to root; a trailing
// slash creates a directory, anything else an empty file.
func NewMemoryLister(root string, paths ...string) (FsLister, error) {
	l := FsLister{Fs: afero.NewMemMapFs()}

	if err := l.Fs.MkdirAll(root, 0o755); err != nil {
		return l, fmt.Errorf("creating root '%s': %w", root, err)
	}

	for _, p := range paths {
		target := filepath.Join(root, filepath.FromSlash(p))

		if strings.HasSuffix(p, "/") {
			if err := l.Fs.MkdirAll(target, 0o755); err != nil {
				return l, fmt.Errorf("creating directory '%s': %w", target, err)
			}
			continue
		}

		if err := l.Fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return l, fmt.Errorf("creating directory '%s': %w", filepath.Dir(target), err)
		}
		if err := afero.WriteFile(l.Fs, target, nil, 0o644); err != nil {
			return l, fmt.Errorf("creating file '%s': %w", target, err)
		}
	}

	return l, nil
}
