// aihub/routes/auth.go
package routes

import (
	"encoding/json"
	"net/http"

	"aihub/aihub/controllers"
	uttypes "aihub/aihub/utils/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req uttypes.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, err := ctrl.Login(req.Provider)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(resp)
	})
	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		ctrl.Logout()
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctrl.Current()
		if !ok {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(identity)
	})
	return r
}
