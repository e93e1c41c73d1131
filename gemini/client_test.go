package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateContentRequestShape(t *testing.T) {
	var gotPath string
	var gotReq GenerateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(GenerateContentResponse{
			Candidates: []Candidate{{Content: Content{Role: "model", Parts: []Part{{Text: "ok"}}}}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	req := &GenerateContentRequest{
		Contents: []Content{UserContent(
			BlobPart("application/pdf", []byte("%PDF-1.4")),
			TextPart("read this"),
		)},
	}

	resp, err := client.GenerateContent(context.Background(), "gemini-2.5-flash", req)
	require.NoError(t, err)

	require.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	require.Len(t, gotReq.Contents, 1)
	require.Equal(t, "user", gotReq.Contents[0].Role)
	require.Len(t, gotReq.Contents[0].Parts, 2)

	blob := gotReq.Contents[0].Parts[0].InlineData
	require.NotNil(t, blob)
	require.Equal(t, "application/pdf", blob.MIMEType)
	decoded, err := base64.StdEncoding.DecodeString(blob.Data)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4"), decoded)
	require.Equal(t, "read this", gotReq.Contents[0].Parts[1].Text)

	text, err := resp.Text()
	require.NoError(t, err)
	require.Equal(t, "ok", text)
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.GenerateContent(context.Background(), "gemini-2.5-flash", &GenerateContentRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "API key not valid")
	require.Contains(t, err.Error(), "INVALID_ARGUMENT")
}

func TestGenerateContentNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.GenerateContent(context.Background(), "m", &GenerateContentRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 503")
	require.Contains(t, err.Error(), "upstream exploded")
}

func TestResponseText(t *testing.T) {
	resp := &GenerateContentResponse{
		Candidates: []Candidate{{Content: Content{Parts: []Part{
			{Text: "first"},
			{Text: "second"},
		}}}},
	}
	text, err := resp.Text()
	require.NoError(t, err)
	require.Equal(t, "first\nsecond", text)

	_, err = (&GenerateContentResponse{}).Text()
	require.Error(t, err)
}

func TestResponseInlineBytes(t *testing.T) {
	enc := func(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

	resp := &GenerateContentResponse{
		Candidates: []Candidate{{Content: Content{Parts: []Part{
			{InlineData: &InlineData{MIMEType: "audio/L16", Data: enc([]byte{1, 2})}},
			{InlineData: &InlineData{MIMEType: "audio/L16", Data: enc([]byte{3, 4})}},
		}}}},
	}
	b, err := resp.InlineBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, b)

	textOnly := &GenerateContentResponse{
		Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "no audio"}}}}},
	}
	_, err = textOnly.InlineBytes()
	require.Error(t, err)
}

func TestVertexEndpoint(t *testing.T) {
	url := VertexEndpoint("my-project", "us-central1")
	require.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/my-project/locations/us-central1/publishers/google",
		url)
}
