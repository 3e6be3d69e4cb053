package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aihub/aihub/utils/logging"
)

func TestMain(m *testing.M) {
	logging.InitTestLogger()
	m.Run()
}

// fakeTransport either fails or replays scripted chunks, recording the
// request it was handed.
type fakeTransport struct {
	name   string
	chunks []string
	err    error
	last   StreamRequest
	calls  int
}

func (f *fakeTransport) Name() string { return f.name }

func (f *fakeTransport) Stream(ctx context.Context, req StreamRequest, onChunk func(string)) error {
	f.last = req
	f.calls++
	if f.err != nil {
		return f.err
	}
	for _, c := range f.chunks {
		onChunk(c)
	}
	return nil
}

func collect(chain *Chain, req StreamRequest) (chunks []string, completions int) {
	chain.Stream(context.Background(), req,
		func(c string) { chunks = append(chunks, c) },
		func() { completions++ },
	)
	return chunks, completions
}

func TestChainPrimaryFailureFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	secondary := &fakeTransport{name: "secondary", chunks: []string{"Hello", " world"}}
	chain := NewChain(NewBackendClient(srv.URL, ""), secondary)

	req := StreamRequest{
		Model:             "gemini-2.5-flash",
		SystemInstruction: "be nice",
		AgentID:           "general_chat",
		History:           []Message{{Role: "user", Content: "hi"}, {Role: "model", Content: "hey"}},
		NewMessage:        "how are you?",
	}
	chunks, completions := collect(chain, req)

	if secondary.calls != 1 {
		t.Fatalf("secondary called %d times, want 1", secondary.calls)
	}
	if completions != 1 {
		t.Errorf("onComplete fired %d times, want exactly 1", completions)
	}

	// The secondary must receive the equivalent logical request.
	if secondary.last.NewMessage != req.NewMessage ||
		secondary.last.SystemInstruction != req.SystemInstruction ||
		len(secondary.last.History) != len(req.History) {
		t.Errorf("secondary request differs from original: %+v", secondary.last)
	}

	joined := strings.Join(chunks, "")
	if !strings.Contains(joined, "System Alert") {
		t.Errorf("expected a diagnostic chunk before fallback, got %q", joined)
	}
	if !strings.HasSuffix(joined, "Hello world") {
		t.Errorf("expected fallback reply to follow the diagnostic, got %q", joined)
	}
}

func TestChainAllTiersFail(t *testing.T) {
	a := &fakeTransport{name: "a", err: errors.New("down")}
	b := &fakeTransport{name: "b", err: errors.New("also down")}
	chain := NewChain(a, b)

	chunks, completions := collect(chain, StreamRequest{NewMessage: "hi"})

	if completions != 1 {
		t.Errorf("onComplete fired %d times, want exactly 1", completions)
	}
	joined := strings.Join(chunks, "")
	if !strings.Contains(joined, "System Alert") {
		t.Errorf("missing intermediate diagnostic: %q", joined)
	}
	if !strings.Contains(joined, "**Error:**") {
		t.Errorf("missing terminal diagnostic: %q", joined)
	}
}

func TestChainSkipsUnconfiguredTierQuietly(t *testing.T) {
	secondary := &fakeTransport{name: "secondary", chunks: []string{"ok"}}
	chain := NewChain(NewBackendClient("", ""), secondary)

	chunks, completions := collect(chain, StreamRequest{NewMessage: "hi"})

	joined := strings.Join(chunks, "")
	if strings.Contains(joined, "System Alert") {
		t.Errorf("unconfigured tier should not produce a diagnostic: %q", joined)
	}
	if joined != "ok" {
		t.Errorf("reply = %q, want %q", joined, "ok")
	}
	if completions != 1 {
		t.Errorf("onComplete fired %d times, want exactly 1", completions)
	}
}

func TestChainMockTierKeepsChatUsable(t *testing.T) {
	chain := NewChain(
		&fakeTransport{name: "a", err: errors.New("down")},
		NewMockClient(),
	)

	chunks, completions := collect(chain, StreamRequest{NewMessage: "anyone there?"})

	joined := strings.Join(chunks, "")
	if !strings.Contains(joined, "anyone there?") {
		t.Errorf("mock reply should echo the message, got %q", joined)
	}
	if completions != 1 {
		t.Errorf("onComplete fired %d times, want exactly 1", completions)
	}
}

func TestBackendClientStreamsRawBody(t *testing.T) {
	parts := []string{"Hel", "lo", " world"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		for _, p := range parts {
			fmt.Fprint(w, p)
			flusher.Flush()
		}
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL, "")
	var got []string
	err := client.Stream(context.Background(), StreamRequest{NewMessage: "hi"}, func(c string) {
		got = append(got, c)
	})
	if err != nil {
		t.Fatal(err)
	}
	if joined := strings.Join(got, ""); joined != "Hello world" {
		t.Errorf("reply = %q, want %q", joined, "Hello world")
	}
}

func TestBackendClientSendsFullTurnList(t *testing.T) {
	var received backendChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL, "")
	req := StreamRequest{
		Model:             "gemini-2.5-flash",
		SystemInstruction: "instr",
		AgentID:           "creative_writer",
		History:           []Message{{Role: "user", Content: "a"}, {Role: "model", Content: "b"}},
		NewMessage:        "c",
	}
	if err := client.Stream(context.Background(), req, func(string) {}); err != nil {
		t.Fatal(err)
	}

	if received.AgentID != "creative_writer" || received.SystemInstruction != "instr" {
		t.Errorf("payload metadata wrong: %+v", received)
	}
	// messages = history + the new user turn appended
	if len(received.Messages) != 3 {
		t.Fatalf("payload has %d messages, want 3", len(received.Messages))
	}
	last := received.Messages[2]
	if last.Role != "user" || last.Content != "c" {
		t.Errorf("last payload message = %+v, want the new user turn", last)
	}
}

func TestBackendClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL, "service-key")
	if err := client.Stream(context.Background(), StreamRequest{NewMessage: "hi"}, func(string) {}); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer service-key")
	}
}

func TestGeminiClientMissingKey(t *testing.T) {
	client := NewGeminiClient("", "http://unused")
	err := client.Stream(context.Background(), StreamRequest{NewMessage: "hi"}, func(string) {})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGeminiClientRejectsMalformedHistory(t *testing.T) {
	client := NewGeminiClient("key", "http://unused")
	// Two consecutive user turns: the classic symptom of the new message
	// leaking into history.
	req := StreamRequest{
		History:    []Message{{Role: "user", Content: "a"}, {Role: "user", Content: "b"}},
		NewMessage: "b",
	}
	err := client.Stream(context.Background(), req, func(string) {})
	if err == nil || !strings.Contains(err.Error(), "malformed history") {
		t.Errorf("expected malformed history error, got %v", err)
	}
}

func TestGeminiClientParsesSSE(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/gemini-2.5-flash") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"Hel\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"lo\"}]}}]}\n\n")
		fmt.Fprint(w, "not-a-data-line\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\" world\"}]}}]}\n\n")
	}))
	defer srv.Close()

	client := NewGeminiClient("key", srv.URL)
	var got []string
	req := StreamRequest{
		Model:             "gemini-2.5-flash",
		SystemInstruction: "instr",
		History:           []Message{{Role: "user", Content: "a"}, {Role: "model", Content: "b"}},
		NewMessage:        "c",
	}
	if err := client.Stream(context.Background(), req, func(c string) { got = append(got, c) }); err != nil {
		t.Fatal(err)
	}
	if joined := strings.Join(got, ""); joined != "Hello world" {
		t.Errorf("reply = %q, want %q", joined, "Hello world")
	}
}

func TestGeminiClientKeepsUnterminatedTailEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"Hello\"}]}}]}\n\n")
		// Final event with no trailing newline, as when the connection is
		// closed mid-stream.
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\" world\"}]}}]}")
	}))
	defer srv.Close()

	client := NewGeminiClient("key", srv.URL)
	var got []string
	req := StreamRequest{Model: "gemini-2.5-flash", NewMessage: "hi"}
	if err := client.Stream(context.Background(), req, func(c string) { got = append(got, c) }); err != nil {
		t.Fatal(err)
	}
	if joined := strings.Join(got, ""); joined != "Hello world" {
		t.Errorf("reply = %q, want %q", joined, "Hello world")
	}
}

func TestValidateHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []Message
		wantErr bool
	}{
		{"empty", nil, false},
		{"one pair", []Message{{Role: "user"}, {Role: "model"}}, false},
		{"starts with model", []Message{{Role: "model"}}, true},
		{"double user", []Message{{Role: "user"}, {Role: "user"}}, true},
		{"dangling user turn", []Message{{Role: "user"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateHistory(tt.history)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHistory() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
