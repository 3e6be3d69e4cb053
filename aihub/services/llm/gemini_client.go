// aihub/services/llm/gemini_client.go
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aihub/aihub/utils/logging"

	"go.uber.org/zap"
)

// GeminiClient is the secondary transport: the direct model-provider
// endpoint, used when the backend tier is down or not configured.
type GeminiClient struct {
	apiKey  string
	baseURL string
}

func NewGeminiClient(apiKey, baseURL string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, baseURL: baseURL}
}

func (c *GeminiClient) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiStreamResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Stream(ctx context.Context, req StreamRequest, onChunk func(string)) error {
	defer logging.LogDuration(ctx, "gemini_stream")()

	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if err := validateHistory(req.History); err != nil {
		return err
	}

	contents := make([]geminiContent, 0, len(req.History)+1)
	for _, m := range req.History {
		contents = append(contents, geminiContent{Role: m.Role, Parts: []geminiPart{{Text: m.Content}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: req.NewMessage}}})

	gReq := geminiRequest{Contents: contents}
	if req.SystemInstruction != "" {
		gReq.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}

	body, err := json.Marshal(gReq)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gemini request failed: %s - %s", resp.Status, string(b))
	}

	reader := bufio.NewReader(resp.Body)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, readErr := reader.ReadString('\n')

		// A body closed mid-event hands us the final line together with
		// io.EOF; emit it before acting on the error so the tail of the
		// reply is not dropped.
		if c.emitEvent(line, onChunk) {
			return nil
		}

		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return fmt.Errorf("gemini stream read error: %w", readErr)
		}
	}
}

// emitEvent parses one SSE line and forwards its text parts. It reports
// whether the stream signalled termination.
func (c *GeminiClient) emitEvent(line string, onChunk func(string)) bool {
	line = strings.TrimSpace(line)
	if line == "" || !strings.HasPrefix(line, "data:") {
		return false
	}

	data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
	if data == "[DONE]" {
		return true
	}

	var chunk geminiStreamResponse
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		logging.ErrorLogger.Error("gemini stream JSON parse error",
			zap.Error(err), zap.String("raw_line", data))
		return false
	}

	for _, cand := range chunk.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				onChunk(part.Text)
			}
		}
	}
	return false
}
