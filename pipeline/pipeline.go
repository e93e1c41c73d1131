package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"paper2audio/extract"
	"paper2audio/loader"
	"paper2audio/models"
	"paper2audio/storage"
	"paper2audio/tts"
)

// Pipeline drives a conversion run from PDF to spoken audio. Every step is
// sequential and blocking; the first failure aborts the run before any
// audio is written.
type Pipeline struct {
	extractor extract.Extractor
	synth     tts.Synthesizer
	store     storage.Store
	log       zerolog.Logger
}

// New wires a pipeline. Commands that only extract may pass a nil
// synthesizer, commands that only speak may pass a nil extractor.
func New(extractor extract.Extractor, synth tts.Synthesizer, store storage.Store, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		synth:     synth,
		store:     store,
		log:       log,
	}
}

type ConvertInput struct {
	PDFPath string
	OutPath string
	Prompt  string
}

type ConvertOutput struct {
	WAVPath        string
	TranscriptPath string
	Narration      *models.Narration
	Audio          *tts.Audio
	Seconds        float64
}

// Convert runs the full pipeline: load the PDF, obtain the narration (from
// the transcript cache or the extraction model), synthesize speech, and
// write the WAV file. The transcript lands next to the audio output as soon
// as extraction succeeds, so an interrupted run never pays for extraction
// twice.
func (p *Pipeline) Convert(ctx context.Context, in *ConvertInput) (*ConvertOutput, error) {
	log := p.log.With().Str("run", uuid.NewString()).Logger()

	doc, err := loader.Load(in.PDFPath)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("file", doc.FileName).
		Int64("bytes", doc.SizeBytes).
		Int("pages", doc.PageCount).
		Msg("loaded document")

	txtPath := extract.TranscriptPath(in.OutPath)
	narration, err := p.narration(ctx, log, doc, in.Prompt, txtPath)
	if err != nil {
		return nil, err
	}

	a, err := p.synth.Synthesize(ctx, narration.Text)
	if err != nil {
		return nil, err
	}

	if err := p.store.SaveAudio(in.OutPath, a); err != nil {
		return nil, err
	}

	seconds := a.Seconds()
	log.Info().
		Str("path", in.OutPath).
		Float64("seconds", seconds).
		Msg("wrote audio")

	return &ConvertOutput{
		WAVPath:        in.OutPath,
		TranscriptPath: txtPath,
		Narration:      narration,
		Audio:          a,
		Seconds:        seconds,
	}, nil
}

func (p *Pipeline) narration(ctx context.Context, log zerolog.Logger, doc *models.Document, prompt, txtPath string) (*models.Narration, error) {
	if text, ok := extract.CachedTranscript(txtPath); ok {
		log.Info().Str("path", txtPath).Msg("reusing cached transcript")
		return &models.Narration{Text: text, Cached: true}, nil
	}
	log.Debug().Str("path", txtPath).Msg("no cached transcript")

	narration, err := p.extractor.Extract(ctx, doc, prompt)
	if err != nil {
		return nil, err
	}
	if err := p.store.SaveTranscript(txtPath, narration.Text); err != nil {
		return nil, err
	}
	log.Info().Str("path", txtPath).Int("chars", len(narration.Text)).Msg("saved transcript")
	return narration, nil
}

type ExtractInput struct {
	PDFPath string
	OutPath string
	Prompt  string
}

type ExtractOutput struct {
	TranscriptPath string
	Narration      *models.Narration
}

// Extract runs only the extraction step and writes the transcript to
// OutPath. An existing non-empty transcript short-circuits the model call.
func (p *Pipeline) Extract(ctx context.Context, in *ExtractInput) (*ExtractOutput, error) {
	log := p.log.With().Str("run", uuid.NewString()).Logger()

	doc, err := loader.Load(in.PDFPath)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("file", doc.FileName).
		Int64("bytes", doc.SizeBytes).
		Int("pages", doc.PageCount).
		Msg("loaded document")

	narration, err := p.narration(ctx, log, doc, in.Prompt, in.OutPath)
	if err != nil {
		return nil, err
	}

	return &ExtractOutput{TranscriptPath: in.OutPath, Narration: narration}, nil
}

type SpeakInput struct {
	TextPath string
	OutPath  string
}

type SpeakOutput struct {
	WAVPath string
	Audio   *tts.Audio
	Seconds float64
}

// Speak synthesizes speech from an already extracted transcript file.
func (p *Pipeline) Speak(ctx context.Context, in *SpeakInput) (*SpeakOutput, error) {
	log := p.log.With().Str("run", uuid.NewString()).Logger()

	data, err := os.ReadFile(in.TextPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("text file %s is empty", in.TextPath)
	}
	log.Info().Str("file", in.TextPath).Int("chars", len(data)).Msg("loaded transcript")

	a, err := p.synth.Synthesize(ctx, string(data))
	if err != nil {
		return nil, err
	}

	if err := p.store.SaveAudio(in.OutPath, a); err != nil {
		return nil, err
	}

	seconds := a.Seconds()
	log.Info().
		Str("path", in.OutPath).
		Float64("seconds", seconds).
		Msg("wrote audio")

	return &SpeakOutput{WAVPath: in.OutPath, Audio: a, Seconds: seconds}, nil
}
