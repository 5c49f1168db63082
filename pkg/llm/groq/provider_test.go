package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legal-ai-be/pkg/llm"
)

func TestChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama-3.3-70b-versatile" {
			t.Errorf("model = %q", req.Model)
		}
		if req.MaxTokens != 2048 || req.Temperature != 0.7 {
			t.Errorf("options = %d tokens, %v temperature", req.MaxTokens, req.Temperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("messages not forwarded in order: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Article 21 applies."}},
			},
		})
	}))
	defer srv.Close()

	p := NewGroqProvider("test-key", srv.URL, "")

	answer, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "You are a legal assistant."},
		{Role: "user", Content: "What covers free speech?"},
	})
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if answer != "Article 21 applies." {
		t.Errorf("answer = %q", answer)
	}
}

func TestChatSurfacesErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded"}}`))
	}))
	defer srv.Close()

	p := NewGroqProvider("test-key", srv.URL, "")

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Errorf("error must carry the provider payload, got %q", err.Error())
	}
}

func TestChatOptionOverrides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.MaxTokens != 512 {
			t.Errorf("max_tokens = %d, want 512", req.MaxTokens)
		}
		if req.Temperature != 0.2 {
			t.Errorf("temperature = %v, want 0.2", req.Temperature)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer srv.Close()

	p := NewGroqProvider("test-key", srv.URL, "")

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}},
		llm.WithMaxTokens(512),
		llm.WithTemperature(0.2),
	)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
}
