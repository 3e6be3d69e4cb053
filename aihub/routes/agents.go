// aihub/routes/agents.go
package routes

import (
	"encoding/json"
	"net/http"

	"aihub/aihub/config"
	"aihub/aihub/controllers"
	"aihub/aihub/middlewares"
	uttypes "aihub/aihub/utils/types"

	"github.com/go-chi/chi/v5"
)

func AgentRoutes(ctrl *controllers.AgentsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	// GET /agents?locale= : list system + custom agents
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("locale")
		json.NewEncoder(w).Encode(ctrl.ListAgents(locale))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))
		// POST /agents : create a custom agent
		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req uttypes.CreateAgentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			agent, err := ctrl.CreateAgent(req)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(agent)
		})
	})
	return r
}
