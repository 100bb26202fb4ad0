package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"echonote/pkg/gemini"
)

func TestBuildExtractionPrompt(t *testing.T) {
	transcript := "Buy milk tomorrow"
	today := "2024-01-01"

	prompt := gemini.BuildExtractionPrompt(transcript, today)

	if !strings.Contains(prompt, "extracts tasks from spoken-language transcripts") {
		t.Errorf("prompt missing system instruction")
	}
	if !strings.Contains(prompt, today) {
		t.Errorf("prompt missing current date context")
	}
	if !strings.HasSuffix(prompt, gemini.PromptDelimiter+transcript) {
		t.Errorf("prompt must end with delimiter + transcript")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock commands embedded in the prompt text
		text := req.Contents[0].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			return
		case "cause_slow":
			time.Sleep(200 * time.Millisecond)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	newReq := func(text string) gemini.GenerateRequest {
		return gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: text}}},
			},
		}
	}

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), newReq("Hello world"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text, err := resp.Text()
		if err != nil {
			t.Fatalf("unexpected Text() error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected content response: %s", text)
		}
	})

	t.Run("Server Error Is Classified", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), newReq("cause_500"))
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}

		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Quota Error Is Classified", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), newReq("cause_429"))

		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("expected status 429, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Timeout Is Classified", func(t *testing.T) {
		slow := gemini.NewClient("test-api-key")
		slow.SetAPIURL(ts.URL)
		slow.SetTimeout(50 * time.Millisecond)

		_, err := slow.GenerateContent(context.Background(), newReq("cause_slow"))
		if err == nil {
			t.Fatalf("expected timeout error")
		}

		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.Err == nil {
			t.Errorf("expected transport error to be carried")
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		empty := &gemini.GenerateResponse{}
		if _, err := empty.Text(); !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})
}
