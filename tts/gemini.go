package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"paper2audio/audio"
	"paper2audio/gemini"
)

// GeminiModel is the default speech model.
const GeminiModel = "gemini-2.5-flash-preview-tts"

// GeminiVoice is the default prebuilt voice.
const GeminiVoice = "Kore"

// readPrefix turns a transcript chunk into a narration instruction.
const readPrefix = "Read:"

// GeminiSynthesizer speaks text through the Gemini TTS models. Long texts
// are split on line boundaries and synthesized chunk by chunk, strictly in
// order, and the returned PCM is the concatenation of all chunks.
type GeminiSynthesizer struct {
	client     *gemini.Client
	model      string
	voice      string
	chunkChars int
	log        zerolog.Logger
}

// GeminiOptions overrides the synthesizer defaults. Zero values select the
// package defaults.
type GeminiOptions struct {
	Model      string
	Voice      string
	ChunkChars int
}

func NewGeminiSynthesizer(client *gemini.Client, opts GeminiOptions, log zerolog.Logger) *GeminiSynthesizer {
	model := opts.Model
	if model == "" {
		model = GeminiModel
	}
	voice := opts.Voice
	if voice == "" {
		voice = GeminiVoice
	}
	chunkChars := opts.ChunkChars
	if chunkChars <= 0 {
		chunkChars = DefaultChunkChars
	}
	return &GeminiSynthesizer{
		client:     client,
		model:      model,
		voice:      voice,
		chunkChars: chunkChars,
		log:        log,
	}
}

func (s *GeminiSynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	chunks := SplitByLines(text, s.chunkChars)
	if len(chunks) == 0 {
		return nil, errors.New("no text to synthesize")
	}

	s.log.Info().
		Str("model", s.model).
		Str("voice", s.voice).
		Int("chunks", len(chunks)).
		Int("chars", len(text)).
		Msg("synthesizing speech")

	var pcm []byte
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		s.log.Info().
			Int("chunk", i+1).
			Int("of", len(chunks)).
			Int("chars", len(chunk)).
			Msg("synthesizing chunk")

		req := &gemini.GenerateContentRequest{
			Contents: []gemini.Content{gemini.UserText(readPrefix + chunk)},
			GenerationConfig: &gemini.GenerationConfig{
				ResponseModalities: []string{"AUDIO"},
				SpeechConfig: &gemini.SpeechConfig{
					VoiceConfig: &gemini.VoiceConfig{
						PrebuiltVoiceConfig: &gemini.PrebuiltVoiceConfig{VoiceName: s.voice},
					},
				},
			},
		}

		resp, err := s.client.GenerateContent(ctx, s.model, req)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		data, err := resp.InlineBytes()
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		pcm = append(pcm, data...)

		s.log.Debug().
			Int("chunk", i+1).
			Int("bytes", len(data)).
			Msg("chunk synthesized")
	}

	// blank chunks are skipped, so whitespace-only text reaches this point
	// without a single model call
	if len(pcm) == 0 {
		return nil, errors.New("no audio synthesized")
	}

	return &Audio{
		Data:          pcm,
		SampleRate:    audio.DefaultSampleRate,
		Channels:      audio.DefaultChannels,
		BitsPerSample: audio.DefaultBitsPerSample,
	}, nil
}
