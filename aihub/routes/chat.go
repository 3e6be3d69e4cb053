// aihub/routes/chat.go
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"aihub/aihub/config"
	"aihub/aihub/controllers"
	"aihub/aihub/middlewares"
	"aihub/aihub/session"
	uttypes "aihub/aihub/utils/types"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		// POST /chat/ : send a turn, respond with the full reply
		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req uttypes.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			resp, err := ctrl.Chat(r.Context(), req)
			if err != nil {
				http.Error(w, err.Error(), chatStatus(err))
				return
			}
			json.NewEncoder(w).Encode(resp)
		})

		// POST /chat/sessions : open a new session for an agent
		gr.Post("/sessions", func(w http.ResponseWriter, r *http.Request) {
			var req uttypes.CreateSessionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			s := ctrl.CreateSession(req.AgentID)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(s)
		})

		// GET /chat/sessions : list session summaries, most recent first
		gr.Get("/sessions", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(ctrl.ListSessions())
		})

		// GET /chat/session/{session_id}/messages : full message log
		gr.Get("/session/{session_id}/messages", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "session_id")
			msgs, err := ctrl.GetMessagesForSession(sessionID)
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(msgs)
		})

		// POST /chat/session/{session_id}/select : mark a session active
		gr.Post("/session/{session_id}/select", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "session_id")
			if err := ctrl.SelectSession(sessionID); err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	// GET /chat/ws : streamed turn; the first frame carries the token
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var input struct {
			Token       string              `json:"token"`
			ChatRequest uttypes.ChatRequest `json:"chat_request"`
		}
		if err := json.Unmarshal(data, &input); err != nil {
			writeWSError(ctx, conn, "invalid json")
			return
		}

		if _, err := middlewares.ParseToken(input.Token, cfg.JWTSecret); err != nil {
			writeWSError(ctx, conn, "invalid token")
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}

		ch, errCh := ctrl.ChatStream(ctx, input.ChatRequest)
		go func() {
			if err := <-errCh; err != nil {
				writeWSError(ctx, conn, err.Error())
				conn.Close(websocket.StatusInternalError, "stream error")
			}
		}()

		for chunk := range ch {
			if err := conn.Write(ctx, websocket.MessageText, []byte(chunk)); err != nil {
				return
			}
		}
		conn.Close(websocket.StatusNormalClosure, "")
	})
	return r
}

// wsErrorFrame builds an error frame. The message goes through the JSON
// encoder so error text containing quotes stays valid JSON.
func wsErrorFrame(msg string) []byte {
	frame, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: msg})
	return frame
}

func writeWSError(ctx context.Context, conn *websocket.Conn, msg string) {
	conn.Write(ctx, websocket.MessageText, wsErrorFrame(msg))
}

func chatStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrStreamInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
