package audio

import (
	"encoding/binary"
	"fmt"
	"io"
)

// PCM parameters of the audio returned by the hosted speech models.
const (
	DefaultSampleRate    = 24000
	DefaultChannels      = 1
	DefaultBitsPerSample = 16
)

const headerSize = 44

// Format describes raw linear PCM.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

func DefaultFormat() Format {
	return Format{
		SampleRate:    DefaultSampleRate,
		Channels:      DefaultChannels,
		BitsPerSample: DefaultBitsPerSample,
	}
}

// ByteRate is the number of PCM bytes per second of audio.
func (f Format) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

// Duration reports the playing time in seconds of n bytes of PCM.
func (f Format) Duration(n int) float64 {
	rate := f.ByteRate()
	if rate == 0 {
		return 0
	}
	return float64(n) / float64(rate)
}

// EncodeWAV wraps pcm in a canonical RIFF/WAVE container and writes it to w.
// The samples are written verbatim after the 44 byte header.
func EncodeWAV(w io.Writer, pcm []byte, f Format) error {
	if f.SampleRate <= 0 || f.Channels <= 0 || f.BitsPerSample <= 0 {
		return fmt.Errorf("invalid wav format: %+v", f)
	}

	blockAlign := f.Channels * f.BitsPerSample / 8
	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+len(pcm)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM, no compression
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	return nil
}
