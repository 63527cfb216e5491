package stager

import (
	"path/filepath"
	"strings"
)

// AcceptedExtensions are the video containers the UI accepts, without dots.
var AcceptedExtensions = []string{"mp4", "mkv", "avi", "mov"}

// IsVideoFile reports whether path has one of the accepted extensions.
func IsVideoFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, format := range AcceptedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}
