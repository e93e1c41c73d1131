package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"paper2audio/audio"
)

// OpenAISynthesizer speaks text through the OpenAI speech endpoint. The
// response format is raw PCM at the same rate the Gemini models use, so the
// rest of the pipeline does not care which provider produced the audio.
type OpenAISynthesizer struct {
	client     *openai.Client
	model      openai.SpeechModel
	voice      openai.SpeechVoice
	speed      float64
	chunkChars int
	log        zerolog.Logger
}

// OpenAIOptions overrides the synthesizer defaults. BaseURL is mainly
// useful for pointing tests at a local server.
type OpenAIOptions struct {
	Model      string
	Voice      string
	Speed      float64
	ChunkChars int
	BaseURL    string
}

func NewOpenAISynthesizer(apiKey string, opts OpenAIOptions, log zerolog.Logger) (*OpenAISynthesizer, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required, set OPENAI_API_KEY")
	}

	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	model := openai.SpeechModel(opts.Model)
	if model == "" {
		model = openai.TTSModel1
	}
	voice := openai.SpeechVoice(opts.Voice)
	if voice == "" {
		voice = openai.VoiceNova
	}
	speed := opts.Speed
	if speed == 0 {
		speed = 1.0
	}
	chunkChars := opts.ChunkChars
	if chunkChars <= 0 {
		chunkChars = DefaultChunkChars
	}

	return &OpenAISynthesizer{
		client:     openai.NewClientWithConfig(cfg),
		model:      model,
		voice:      voice,
		speed:      speed,
		chunkChars: chunkChars,
		log:        log,
	}, nil
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	chunks := SplitByLines(text, s.chunkChars)
	if len(chunks) == 0 {
		return nil, errors.New("no text to synthesize")
	}

	s.log.Info().
		Str("model", string(s.model)).
		Str("voice", string(s.voice)).
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

		data, err := s.speak(ctx, chunk)
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

func (s *OpenAISynthesizer) speak(ctx context.Context, chunk string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          chunk,
		Voice:          s.voice,
		ResponseFormat: openai.SpeechResponseFormatPcm,
		Speed:          s.speed,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
