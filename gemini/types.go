package gemini

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Request and response shapes for the generateContent endpoint. Field names
// follow the REST API's camelCase JSON.

type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries binary payloads (PDFs in, PCM audio out) as base64.
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerationConfig struct {
	Temperature        *float64      `json:"temperature,omitempty"`
	MaxOutputTokens    *int          `json:"maxOutputTokens,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig *VoiceConfig `json:"voiceConfig,omitempty"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig *PrebuiltVoiceConfig `json:"prebuiltVoiceConfig,omitempty"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type GenerateContentResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
}

// TextPart builds a plain text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart builds an inline binary part, base64 encoding data.
func BlobPart(mimeType string, data []byte) Part {
	return Part{InlineData: &InlineData{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// UserContent wraps parts in a single user-role content entry.
func UserContent(parts ...Part) Content {
	return Content{Role: "user", Parts: parts}
}

// UserText is shorthand for a user content entry with one text part.
func UserText(text string) Content {
	return UserContent(TextPart(text))
}

// Text joins the text parts of the first candidate. It fails when the
// response carries no candidates or no text.
func (r *GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}
	var parts []string
	for _, p := range r.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("response has no text parts")
	}
	return strings.Join(parts, "\n"), nil
}

// InlineBytes concatenates the decoded inline data parts of the first
// candidate, in order. It fails when the response carries none.
func (r *GenerateContentResponse) InlineBytes() ([]byte, error) {
	if len(r.Candidates) == 0 {
		return nil, errors.New("response has no candidates")
	}
	var out []byte
	found := false
	for _, p := range r.Candidates[0].Content.Parts {
		if p.InlineData == nil {
			continue
		}
		b, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode inline data: %w", err)
		}
		out = append(out, b...)
		found = true
	}
	if !found {
		return nil, errors.New("response has no inline data parts")
	}
	return out, nil
}
