// Package pathutil confines file paths supplied by tool callers to a root
// directory.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned when a path escapes the allowed root.
var ErrOutsideRoot = errors.New("path is outside the allowed root")

// RedactPath reduces a full path to .../<parent>/<basename> for safe error messages.
// For example, "/home/user/notes/book.txt" becomes ".../notes/book.txt".
func RedactPath(path string) string {
	if path == "" {
		return ""
	}
	cleaned := filepath.Clean(path)
	parent := filepath.Base(filepath.Dir(cleaned))
	base := filepath.Base(cleaned)
	if parent == "." || parent == string(filepath.Separator) {
		return base
	}
	return ".../" + parent + "/" + base
}

// ResolveInRoot resolves path against root and returns the absolute,
// symlink-resolved result. Relative paths are taken relative to root.
// The target need not exist, but every existing ancestor is resolved so a
// symlink inside root cannot point the path outside it.
func ResolveInRoot(root, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path validation failed: path is empty")
	}
	if root == "" {
		return "", fmt.Errorf("path validation failed: no root configured")
	}
	// Check for null bytes (common injection vector)
	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("path validation failed: path contains null byte")
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("path validation failed: cannot resolve root: %w", err)
	}
	rootResolved, err := resolveExisting(rootAbs)
	if err != nil {
		return "", fmt.Errorf("path validation failed: %w", err)
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(rootAbs, path)
	}
	resolved, err := resolveExisting(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("path validation failed: %w", err)
	}

	if !isSubpath(resolved, rootResolved) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, RedactPath(resolved))
	}
	return resolved, nil
}

// resolveExisting resolves symlinks on the deepest existing ancestor of
// path and re-appends the non-existent tail.
func resolveExisting(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	parent := filepath.Dir(path)
	if parent == path {
		// We've hit the root and it doesn't exist -- give up
		return "", fmt.Errorf("cannot resolve path: %s", RedactPath(path))
	}

	resolvedParent, err := resolveExisting(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(resolvedParent, filepath.Base(path)), nil
}

// isSubpath checks whether path is equal to or inside base.
func isSubpath(path, base string) bool {
	if path == base {
		return true
	}
	// Ensure base ends with separator so "/tmp/foo" doesn't match "/tmp/foobar"
	prefix := base
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return strings.HasPrefix(path, prefix)
}
