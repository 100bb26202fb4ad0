// Package speech wraps the Google Cloud Speech-to-Text API behind a small
// transcription capability. The service consumes transcripts; it never
// implements recognition itself.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	speechapi "google.golang.org/api/speech/v1"
	"google.golang.org/api/option"
)

// ITranscriber is the transcription capability boundary.
type ITranscriber interface {
	// Transcribe converts raw audio bytes into a transcript string.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Client wraps the Google Speech-to-Text API service.
type Client struct {
	service *speechapi.Service
	config  RecognitionConfig
}

var _ ITranscriber = (*Client)(nil)

// RecognitionConfig holds the fixed recognition parameters for uploads.
type RecognitionConfig struct {
	Encoding        string // e.g. "LINEAR16"
	SampleRateHertz int64  // e.g. 16000
	LanguageCode    string // e.g. "en-US"
}

// DefaultRecognitionConfig matches the WAV blobs the web recorder produces.
func DefaultRecognitionConfig() RecognitionConfig {
	return RecognitionConfig{
		Encoding:        "LINEAR16",
		SampleRateHertz: 16000,
		LanguageCode:    "en-US",
	}
}

// NewClientFromCredentialsFile creates a Speech client from a Service Account
// JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, cfg RecognitionConfig) (*Client, error) {
	svc, err := speechapi.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech service: %w", err)
	}
	return &Client{service: svc, config: cfg}, nil
}

// Transcribe runs synchronous recognition on the audio bytes and joins the
// top alternative of every result into one transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	req := &speechapi.RecognizeRequest{
		Config: &speechapi.RecognitionConfig{
			Encoding:        c.config.Encoding,
			SampleRateHertz: c.config.SampleRateHertz,
			LanguageCode:    c.config.LanguageCode,
		},
		Audio: &speechapi.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := c.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, result.Alternatives[0].Transcript)
	}

	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
