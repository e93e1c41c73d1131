package storage

import "paper2audio/tts"

// Store persists the artifacts of a conversion run: the WAV output and the
// transcript sitting next to it.
type Store interface {
	SaveAudio(path string, a *tts.Audio) error
	SaveTranscript(path string, text string) error
}
