package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/internal/notify"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/grouping"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros das camadas internas para o formato da API
func writeServiceError(w http.ResponseWriter, err error) {
	var requestErr *buffclient.RequestError

	switch {
	case errors.As(err, &requestErr):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, notify.ErrorMessage(err), map[string]any{
			"status_code": requestErr.StatusCode,
		})
	case errors.Is(err, context.Canceled):
		apiErrors.WriteError(w, apiErrors.ErrRequestCanceled, "Requisição cancelada", nil)
	case errors.Is(err, buffclient.ErrNetworkFailure):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, notify.ErrorMessage(err), nil)
	case errors.Is(err, grouping.ErrNoSession):
		apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
	case errors.Is(err, grouping.ErrGroupIDRequired),
		errors.Is(err, grouping.ErrNoCampaigns),
		errors.Is(err, reporting.ErrProfileRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, grouping.ErrEmptyPatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidDate),
		errors.Is(err, reporting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, notify.ErrorMessage(err), nil)
	}
}

// currentWorkspace só é chamada em rotas protegidas por RequireSession
func currentWorkspace(registry *workspace.Registry, r *http.Request) (*workspace.Workspace, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return nil, false
	}
	return registry.Get(sess), true
}
