package handler

import (
	"net/http"

	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
)

type connectionStatusResponse struct {
	connecting.GuardState
	Decision connecting.Decision `json:"decision"`
}

// GetConnectionStatus responde mesmo sem sessão, indicando que o login é necessário
func GetConnectionStatus(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			state := connecting.NewGuard(nil).Sync(r.Context(), session.AuthState{})
			writeJSON(w, http.StatusOK, connectionStatusResponse{GuardState: state, Decision: state.Decide()})
			return
		}

		ws := registry.Get(sess)
		state := ws.Guard.Sync(r.Context(), session.AuthState{Session: ws.Session})

		writeJSON(w, http.StatusOK, connectionStatusResponse{GuardState: state, Decision: state.Decide()})
	})
}
