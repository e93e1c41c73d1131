package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeWAVHeader(t *testing.T) {
	pcm := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	var buf bytes.Buffer
	err := EncodeWAV(&buf, pcm, DefaultFormat())
	require.NoError(t, err)

	b := buf.Bytes()
	require.Len(t, b, 44+len(pcm))

	require.Equal(t, "RIFF", string(b[0:4]))
	require.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(b[4:8]))
	require.Equal(t, "WAVE", string(b[8:12]))

	require.Equal(t, "fmt ", string(b[12:16]))
	require.Equal(t, uint32(16), binary.LittleEndian.Uint32(b[16:20]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(b[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(b[22:24]))
	require.Equal(t, uint32(24000), binary.LittleEndian.Uint32(b[24:28]))
	require.Equal(t, uint32(48000), binary.LittleEndian.Uint32(b[28:32]))
	require.Equal(t, uint16(2), binary.LittleEndian.Uint16(b[32:34]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(b[34:36]))

	require.Equal(t, "data", string(b[36:40]))
	require.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(b[40:44]))
	require.Equal(t, pcm, b[44:])
}

func TestEncodeWAVEmptyPCM(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeWAV(&buf, nil, DefaultFormat())
	require.NoError(t, err)
	require.Len(t, buf.Bytes(), 44)
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf.Bytes()[40:44]))
}

func TestEncodeWAVRejectsInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeWAV(&buf, []byte{0, 0}, Format{SampleRate: 0, Channels: 1, BitsPerSample: 16})
	require.Error(t, err)
	require.Zero(t, buf.Len())
}

func TestFormatDuration(t *testing.T) {
	f := DefaultFormat()
	require.Equal(t, 48000, f.ByteRate())
	require.InDelta(t, 1.0, f.Duration(48000), 1e-9)
	require.InDelta(t, 0.5, f.Duration(24000), 1e-9)
	require.Zero(t, Format{}.Duration(100))
}
