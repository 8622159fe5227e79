package media

import (
	"os"
	"path/filepath"
	"strings"
)

// ValidatePath ensures the path is within the expected root directory.
// Returns ErrForbidden if the path would escape the root.
func ValidatePath(path, expectedRoot string) error {
	cleanPath := filepath.Clean(path)
	cleanRoot := filepath.Clean(expectedRoot)

	if !strings.HasSuffix(cleanRoot, string(filepath.Separator)) {
		cleanRoot += string(filepath.Separator)
	}

	// Path must start with root (or be exactly root without trailing slash)
	if cleanPath != filepath.Clean(expectedRoot) && !strings.HasPrefix(cleanPath, cleanRoot) {
		return ErrForbidden
	}
	return nil
}

// validateRealPath is ValidatePath after following symlinks on both sides,
// so a link under the root cannot point outside it.
func validateRealPath(path, root string) error {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return ErrForbidden
	}
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return ErrForbidden
	}
	return ValidatePath(realPath, realRoot)
}

// findCaseInsensitive looks for a file in dir whose name equals base
// ignoring case.
func findCaseInsensitive(dir, base string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), base) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}
