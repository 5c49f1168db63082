package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "openai/text-embedding-3-small" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Input != "personal liberty" {
			t.Errorf("input = %q", req.Input)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float32{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer srv.Close()

	p := NewOpenRouterProvider("test-key")
	p.baseURL = srv.URL

	vec, err := p.Embed(context.Background(), "personal liberty")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(vec) != 3 {
		t.Errorf("len = %d, want 3", len(vec))
	}
}

func TestEmbedSurfacesErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider("bad-key")
	p.baseURL = srv.URL

	_, err := p.Embed(context.Background(), "query")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("error must carry the provider payload, got %q", err.Error())
	}
}

func TestEmbedRejectsEmptyInput(t *testing.T) {
	p := NewOpenRouterProvider("test-key")

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, err := p.Embed(context.Background(), input); err == nil {
			t.Errorf("input %q should be rejected before any request", input)
		}
	}
}

func TestEmbedRejectsEmptyVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]interface{}{}})
	}))
	defer srv.Close()

	p := NewOpenRouterProvider("test-key")
	p.baseURL = srv.URL

	if _, err := p.Embed(context.Background(), "query"); err == nil {
		t.Fatal("empty data must be an error")
	}
}
