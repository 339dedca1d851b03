package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ensureDir creates every missing prefix of path with mode 0750, walking from
// the root segment down. Both separator styles are accepted; a leading
// separator denotes an absolute path. An already-existing prefix counts as
// success, so the walk is idempotent and tolerates concurrent creators.
func ensureDir(path string) error {
	norm := strings.ReplaceAll(path, `\`, "/")

	prefix := ""
	if strings.HasPrefix(norm, "/") {
		prefix = "/"
	}

	for _, seg := range strings.Split(norm, "/") {
		if seg == "" || seg == "." {
			continue
		}
		if prefix == "" || prefix == "/" {
			prefix += seg
		} else {
			prefix += "/" + seg
		}
		if err := os.Mkdir(prefix, 0o750); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}

// cleanName validates a file name as a relative path beneath the store
// directory. Backslashes are normalized to forward slashes. Empty names,
// absolute paths, and names containing ".." segments are rejected.
func cleanName(name string) (string, error) {
	norm := strings.ReplaceAll(name, `\`, "/")
	if norm == "" || strings.HasPrefix(norm, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, seg := range strings.Split(norm, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return norm, nil
}
