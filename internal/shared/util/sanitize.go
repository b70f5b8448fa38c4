package util

import (
	"errors"
	"strings"
)

// SanitizeFileName flattens path separators in a client-supplied file name
// and errors on traversal patterns or an empty result. Upload file names pass
// through here before they are stored.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
