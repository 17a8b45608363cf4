package handler

import (
	"net/http"

	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
)

// ListNotifications entrega e descarta as notificações pendentes do usuário
func ListNotifications(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, ws.Inbox.Drain())
	})
}
