package tts

import "context"

// Audio is synthesized speech as raw linear PCM.
type Audio struct {
	Data          []byte
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// Seconds reports the playing time of the PCM data.
func (a *Audio) Seconds() float64 {
	rate := a.SampleRate * a.Channels * a.BitsPerSample / 8
	if rate == 0 {
		return 0
	}
	return float64(len(a.Data)) / float64(rate)
}

// Synthesizer converts text into spoken audio. Implementations wrap hosted
// speech APIs and are expected to handle texts of arbitrary length.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}
