package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestGeminiClient(srv *httptest.Server) *GeminiClient {
	return &GeminiClient{
		apiKey:     "test-key",
		model:      "test-model",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestNewGeminiClient(t *testing.T) {
	if _, err := NewGeminiClient("", "some-model"); err == nil {
		t.Error("expected error for empty api key")
	}

	c, err := NewGeminiClient("key", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.model != defaultGeminiModel {
		t.Errorf("expected default model %q, got %q", defaultGeminiModel, c.model)
	}
}

func TestGeminiGenerateRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotReq geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer srv.Close()

	c := newTestGeminiClient(srv)
	if _, err := c.Generate(context.Background(), "be concise", "What is Go?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected key %q", gotKey)
	}
	if gotReq.SystemInstruction == nil || len(gotReq.SystemInstruction.Parts) != 1 ||
		gotReq.SystemInstruction.Parts[0].Text != "be concise" {
		t.Errorf("system instruction not carried: %+v", gotReq.SystemInstruction)
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 ||
		gotReq.Contents[0].Parts[0].Text != "What is Go?" {
		t.Errorf("question not carried: %+v", gotReq.Contents)
	}
}

func TestGeminiGenerateJoinsParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Paris is the "},
					{"text": "capital of France."},
				}}},
			},
		})
	}))
	defer srv.Close()

	got, err := newTestGeminiClient(srv).Generate(context.Background(), "", "capital of France?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Paris is the capital of France." {
		t.Errorf("got %q", got)
	}
}

func TestGeminiGenerateFailures(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantAPIErr  bool
		wantContain string
	}{
		{
			name: "error body with non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":429,"message":"rate limited","status":"RESOURCE_EXHAUSTED"}}`))
			},
			wantAPIErr:  true,
			wantContain: "rate limited",
		},
		{
			name: "error body with 200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid argument","status":"INVALID_ARGUMENT"}}`))
			},
			wantAPIErr:  true,
			wantContain: "invalid argument",
		},
		{
			name: "non-JSON failure body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream gateway exploded"))
			},
			wantAPIErr:  false,
			wantContain: "unexpected status 502",
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
			wantAPIErr:  false,
			wantContain: "no candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestGeminiClient(srv).Generate(context.Background(), "sys", "question")
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if got := errors.As(err, &apiErr); got != tt.wantAPIErr {
				t.Errorf("errors.As(*APIError) = %v, want %v (err: %v)", got, tt.wantAPIErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantContain)
			}
		})
	}
}

func TestAPIErrorString(t *testing.T) {
	withStatus := &APIError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "rate limited"}
	if got := withStatus.Error(); got != "429 RESOURCE_EXHAUSTED: rate limited" {
		t.Errorf("got %q", got)
	}
	withoutStatus := &APIError{StatusCode: 500, Message: "boom"}
	if got := withoutStatus.Error(); got != "500: boom" {
		t.Errorf("got %q", got)
	}
}
