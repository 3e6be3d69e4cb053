// aihub/services/llm/mock_client.go
package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is the terminal tier of the fallback chain. It never fails and
// produces a canned reply in word-sized chunks, so the conversation stays
// usable in a fully degraded demo mode.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) Name() string { return "mock" }

func (c *MockClient) Stream(ctx context.Context, req StreamRequest, onChunk func(string)) error {
	reply := fmt.Sprintf(
		"I am running in offline demo mode, so this is a simulated reply. You said: %q. "+
			"Configure a backend endpoint or an API key to talk to a real model.",
		req.NewMessage)

	words := strings.SplitAfter(reply, " ")
	for _, w := range words {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		onChunk(w)
	}
	return nil
}
