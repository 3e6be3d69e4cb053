package routes

import (
	"encoding/json"
	"testing"
)

func TestWSErrorFrameEscapesQuotes(t *testing.T) {
	msg := `backend request failed: bad status: 502 "Bad Gateway"`
	frame := wsErrorFrame(msg)

	var decoded struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(frame, &decoded); err != nil {
		t.Fatalf("frame is not valid JSON: %v (%s)", err, frame)
	}
	if decoded.Error != msg {
		t.Errorf("error = %q, want %q", decoded.Error, msg)
	}
}
