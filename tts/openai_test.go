package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestOpenAISynthesizerRequiresKey(t *testing.T) {
	_, err := NewOpenAISynthesizer("", OpenAIOptions{}, zerolog.Nop())
	require.Error(t, err)
}

func TestOpenAISynthesizerReturnsPCM(t *testing.T) {
	var gotBody map[string]any
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte("raw pcm bytes"))
	}))
	defer srv.Close()

	synth, err := NewOpenAISynthesizer("sk-test", OpenAIOptions{BaseURL: srv.URL + "/v1"}, zerolog.Nop())
	require.NoError(t, err)

	a, err := synth.Synthesize(context.Background(), "hello world")
	require.NoError(t, err)

	require.Equal(t, "/v1/audio/speech", gotPath)
	require.Equal(t, "tts-1", gotBody["model"])
	require.Equal(t, "nova", gotBody["voice"])
	require.Equal(t, "pcm", gotBody["response_format"])
	require.Equal(t, "hello world", gotBody["input"])

	require.Equal(t, []byte("raw pcm bytes"), a.Data)
	require.Equal(t, 24000, a.SampleRate)
	require.Equal(t, 1, a.Channels)
	require.Equal(t, 16, a.BitsPerSample)
}

func TestOpenAISynthesizerChunksInOrder(t *testing.T) {
	var inputs []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		inputs = append(inputs, body["input"].(string))
		w.Write([]byte(body["input"].(string)))
	}))
	defer srv.Close()

	synth, err := NewOpenAISynthesizer("sk-test", OpenAIOptions{BaseURL: srv.URL + "/v1", ChunkChars: 10}, zerolog.Nop())
	require.NoError(t, err)

	a, err := synth.Synthesize(context.Background(), "line one\nline two")
	require.NoError(t, err)

	require.Equal(t, []string{"line one", "line two"}, inputs)
	require.Equal(t, []byte("line oneline two"), a.Data)
}

func TestOpenAISynthesizerWhitespaceOnlyText(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("pcm"))
	}))
	defer srv.Close()

	synth, err := NewOpenAISynthesizer("sk-test", OpenAIOptions{BaseURL: srv.URL + "/v1"}, zerolog.Nop())
	require.NoError(t, err)

	_, err = synth.Synthesize(context.Background(), "\n \n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no audio")
	require.Zero(t, calls)
}

func TestOpenAISynthesizerAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	synth, err := NewOpenAISynthesizer("sk-bad", OpenAIOptions{BaseURL: srv.URL + "/v1"}, zerolog.Nop())
	require.NoError(t, err)

	_, err = synth.Synthesize(context.Background(), "hello")
	require.Error(t, err)
}
