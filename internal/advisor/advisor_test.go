package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func chatServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Fatalf("unexpected message shape: %+v", req.Messages)
		}
		if req.Temperature != 0.7 {
			t.Fatalf("unexpected temperature %.2f", req.Temperature)
		}
		if !strings.Contains(req.Messages[1].Content, "NVDAx (NVIDIA)") {
			t.Fatalf("user prompt does not enumerate the catalog: %s", req.Messages[1].Content)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(serverURL string, log zerolog.Logger) *Client {
	return New(serverURL, "test-key", "grok-3-mini-fast", 0.7, "TSLAx", log)
}

func TestPickResolvesSymbolFromFreeFormReply(t *testing.T) {
	server := chatServer(t, "I'd pick NVDAx for you")
	defer server.Close()

	client := newTestClient(server.URL, zerolog.Nop())
	pick, err := client.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if pick.Symbol != "NVDAx" {
		t.Fatalf("expected NVDAx, got %s", pick.Symbol)
	}
	if pick.Name != "NVIDIA" {
		t.Fatalf("expected NVIDIA display name, got %s", pick.Name)
	}
}

func TestPickExactReply(t *testing.T) {
	server := chatServer(t, "GMEx")
	defer server.Close()

	client := newTestClient(server.URL, zerolog.Nop())
	pick, err := client.Pick(context.Background())
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if pick.Symbol != "GMEx" {
		t.Fatalf("expected GMEx, got %s", pick.Symbol)
	}
}

func TestResolveFirstDeclaredSymbolWins(t *testing.T) {
	client := newTestClient("http://unused", zerolog.Nop())

	// TSLAx appears first in the reply but AAPLx is declared first in the catalog.
	pick, err := client.resolve("Either TSLAx or AAPLx would do")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if pick.Symbol != "AAPLx" {
		t.Fatalf("expected first declared symbol AAPLx, got %s", pick.Symbol)
	}
}

func TestResolveFallsBackToDefaultWithWarning(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	client := newTestClient("http://unused", log)

	pick, err := client.resolve("buy DOGE to the moon")
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if pick.Symbol != "TSLAx" {
		t.Fatalf("expected default TSLAx, got %s", pick.Symbol)
	}
	if !strings.Contains(buf.String(), "matched no catalog ticker") {
		t.Fatalf("expected warning about unmatched reply, got %q", buf.String())
	}
}

func TestResolveUnknownDefaultErrors(t *testing.T) {
	client := New("http://unused", "k", "m", 0.7, "NOPEx", zerolog.Nop())
	if _, err := client.resolve("nothing useful"); err == nil {
		t.Fatalf("expected error for default ticker outside the catalog")
	}
}

func TestPickPropagatesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, zerolog.Nop())
	if _, err := client.Pick(context.Background()); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestPickNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestClient(server.URL, zerolog.Nop())
	if _, err := client.Pick(context.Background()); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
