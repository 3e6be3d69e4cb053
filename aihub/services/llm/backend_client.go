// aihub/services/llm/backend_client.go
package llm

import (
	"context"
	"fmt"
	"io"

	httputils "aihub/aihub/utils/http"
	"aihub/aihub/utils/logging"
)

// BackendClient is the primary transport: a multi-tenant completion backend
// that takes the whole turn list plus the agent id (so it can route per
// persona) and streams the reply back as raw text fragments.
type BackendClient struct {
	baseURL string
	apiKey  string
}

// NewBackendClient builds the primary transport. apiKey may be empty; when
// set, requests carry it as a bearer token.
func NewBackendClient(baseURL, apiKey string) *BackendClient {
	return &BackendClient{baseURL: baseURL, apiKey: apiKey}
}

func (c *BackendClient) Name() string { return "backend" }

type backendChatRequest struct {
	Model             string    `json:"model"`
	SystemInstruction string    `json:"systemInstruction"`
	AgentID           string    `json:"agentId"`
	Messages          []Message `json:"messages"`
}

func (c *BackendClient) Stream(ctx context.Context, req StreamRequest, onChunk func(string)) error {
	defer logging.LogDuration(ctx, "backend_stream")()

	if c.baseURL == "" {
		return ErrNotConfigured
	}

	payload := backendChatRequest{
		Model:             req.Model,
		SystemInstruction: req.SystemInstruction,
		AgentID:           req.AgentID,
		Messages:          append(append([]Message{}, req.History...), Message{Role: "user", Content: req.NewMessage}),
	}

	var body io.ReadCloser
	var err error
	if c.apiKey != "" {
		body, err = httputils.PostStreamWithAuth(ctx, c.baseURL, c.apiKey, payload)
	} else {
		body, err = httputils.PostStream(ctx, c.baseURL, payload)
	}
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer body.Close()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := body.Read(buf)
		if n > 0 {
			onChunk(string(buf[:n]))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("backend stream read error: %w", err)
		}
	}
}
