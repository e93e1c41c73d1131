package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// TranscriptPath derives the transcript filename from the audio output path
// by swapping the extension for .txt.
func TranscriptPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".txt"
}

// CachedTranscript returns the text of an earlier extraction when the
// transcript file exists and is non-empty.
func CachedTranscript(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}
