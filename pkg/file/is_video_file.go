package file

import (
	"path/filepath"
	"strings"
)

var videoExtensions = []string{".mp4", ".mov", ".webm", ".mkv", ".avi", ".m4v"}

func IsVideoFile(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
