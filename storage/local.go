package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"paper2audio/audio"
	"paper2audio/tts"
)

// LocalStore writes artifacts to the local filesystem, creating parent
// directories as needed.
type LocalStore struct{}

func NewLocalStore() *LocalStore {
	return &LocalStore{}
}

// SaveAudio writes a WAV file containing the PCM data of a. A partially
// written file is removed on failure.
func (s *LocalStore) SaveAudio(path string, a *tts.Audio) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	format := audio.Format{
		SampleRate:    a.SampleRate,
		Channels:      a.Channels,
		BitsPerSample: a.BitsPerSample,
	}
	if err := audio.EncodeWAV(f, a.Data, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close audio file: %w", err)
	}
	return nil
}

// SaveTranscript writes the extracted text next to the audio output.
func (s *LocalStore) SaveTranscript(path string, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
