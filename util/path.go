package util

import (
	"os"
	"path/filepath"
	"strings"
)

func home() (string, bool) {
	dir, err := os.UserHomeDir()
	if err != nil || !filepath.IsAbs(dir) {
		return "", false
	}

	return dir, true
}

// ExpandPath replaces a leading ~ with the user's home directory. Paths
// naming another user's home (~bob/...) are returned as is.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~"+string(filepath.Separator)) && !strings.HasPrefix(p, "~/") {
		return p
	}

	dir, ok := home()
	if !ok {
		return p
	}

	return filepath.Join(dir, p[1:])
}

// UnexpandPath is the inverse of ExpandPath, for showing paths to the user.
func UnexpandPath(p string) string {
	if p == "" {
		return ""
	}

	dir, ok := home()
	if !ok {
		return p
	}

	rel, err := filepath.Rel(dir, p)
	if err != nil || !filepath.IsLocal(rel) {
		return p
	}

	return filepath.Join("~", rel)
}
