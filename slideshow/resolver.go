package slideshow

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Resolver translates between absolute paths below Root and the slash
// separated relative paths handed to clients.
type Resolver struct {
	Root string
}

// NewResolver returns a Resolver for the cleaned root.
func NewResolver(root string) Resolver {
	return Resolver{Root: filepath.Clean(root)}
}

// ToRelative strips the root and its trailing separator from abs.
func (r Resolver) ToRelative(abs string) (string, error) {
	abs = filepath.Clean(abs)
	if abs == r.Root {
		return "", nil
	}

	prefix := r.Root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	if !strings.HasPrefix(abs, prefix) {
		return "", fmt.Errorf("path '%s' not below '%s': %w", abs, r.Root, ErrOutsideRoot)
	}

	return filepath.ToSlash(strings.TrimPrefix(abs, prefix)), nil
}

// ToAbsolute joins the root and a relative path. rel must have passed
// Validate.
func (r Resolver) ToAbsolute(rel string) string {
	return filepath.Join(r.Root, filepath.FromSlash(rel))
}

// Resolve validates rel and returns its absolute path together with the
// normalized relative path.
func (r Resolver) Resolve(rel string) (abs string, clean string, err error) {
	clean, err = Validate(rel)
	if err != nil {
		return "", "", err
	}

	return r.ToAbsolute(clean), clean, nil
}

// Validate normalizes a client supplied relative path. Paths that are
// absolute, contain NUL bytes or climb above the root after normalization
// are rejected with ErrOutsideRoot. The root itself normalizes to "". Only
// the host separator is rewritten to a slash; elsewhere a backslash is an
// ordinary filename character.
func Validate(rel string) (string, error) {
	if strings.ContainsRune(rel, 0) {
		return "", fmt.Errorf("invalid path %q: %w", rel, ErrOutsideRoot)
	}

	rel = filepath.ToSlash(rel)
	if rel == "" {
		return "", nil
	}

	if path.IsAbs(rel) || filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", fmt.Errorf("absolute path %q: %w", rel, ErrOutsideRoot)
	}

	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("path %q escapes root: %w", rel, ErrOutsideRoot)
	}

	if clean == "." {
		return "", nil
	}

	return clean, nil
}
