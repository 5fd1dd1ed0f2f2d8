package domain

import (
	"os"
	"path/filepath"
	"strings"
)

// Audio container formats the transcription service accepts.
var audioExtensions = map[string]struct{}{
	".mp3":  {},
	".mp4":  {},
	".mpeg": {},
	".mpga": {},
	".m4a":  {},
	".wav":  {},
	".webm": {},
}

// ValidAudioFile reports whether path points to an existing file with a
// supported audio extension. The check is syntactic only; the file content is
// never inspected.
func ValidAudioFile(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}

	_, ok := audioExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
