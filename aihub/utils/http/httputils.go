// aihub/utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// PostStream issues a JSON POST and hands back the raw response body for
// the caller to consume incrementally.
func PostStream(ctx context.Context, url string, body interface{}) (io.ReadCloser, error) {
	return postStream(ctx, url, "", body)
}

func PostStreamWithAuth(ctx context.Context, url, apiKey string, body interface{}) (io.ReadCloser, error) {
	return postStream(ctx, url, apiKey, body)
}

func postStream(ctx context.Context, url, apiKey string, body interface{}) (io.ReadCloser, error) {
	r, err := post(ctx, url, apiKey, body)
	if err != nil {
		return nil, err
	}
	if r.StatusCode != http.StatusOK {
		defer r.Body.Close()
		return nil, fmt.Errorf("bad status: %d", r.StatusCode)
	}
	return r.Body, nil
}

func post(ctx context.Context, url, apiKey string, body interface{}) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	return http.DefaultClient.Do(req)
}
