package tts

import "strings"

// DefaultChunkChars keeps each synthesis request comfortably inside the
// token limits of the hosted speech models.
const DefaultChunkChars = 10000

// SplitByLines splits text into chunks of at most limit characters without
// ever breaking a line. Lines are grouped in order, so joining the chunks
// with "\n" restores the input exactly. A single line longer than limit is
// kept whole and becomes an oversized chunk of its own.
func SplitByLines(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultChunkChars
	}

	var chunks []string
	var current []string
	length := 0

	for _, line := range strings.Split(text, "\n") {
		extra := len(line) + 1 // the newline restored on join
		if len(current) > 0 && length+extra > limit {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
			length = 0
		}
		current = append(current, line)
		length += extra
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n"))
	}
	return chunks
}
