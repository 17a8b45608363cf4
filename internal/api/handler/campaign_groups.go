package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/buff-dashboard-api/internal/domain"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
)

type campaignIDsRequest struct {
	CampaignIDs []string `json:"campaignIds"`
}

func ListCampaignGroups(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		profileID := r.URL.Query().Get("profile_id")

		if err := ws.Groups.FetchAll(r.Context(), profileID); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar grupos de campanha")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ws.Groups.Snapshot())
	})
}

func CreateCampaignGroup(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		var form domain.CampaignGroupForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		form.Name = strings.TrimSpace(form.Name)
		if form.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "name is required", nil)
			return
		}
		if !form.PresetGoal.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid presetGoal", nil)
			return
		}
		if form.TargetAcos < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "targetAcos must not be negative", nil)
			return
		}

		group, err := ws.Groups.Create(r.Context(), form)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, group)
	})
}

func UpdateCampaignGroup(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patch domain.CampaignGroupPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if patch.PresetGoal != nil && !patch.PresetGoal.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid presetGoal", nil)
			return
		}

		group, err := ws.Groups.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, group)
	})
}

// DeleteCampaignGroup devolve o estado já reconciliado
func DeleteCampaignGroup(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := ws.Groups.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ws.Groups.Snapshot())
	})
}

func AssignCampaigns(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req campaignIDsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := ws.Groups.AssignCampaigns(r.Context(), id, req.CampaignIDs); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ws.Groups.Snapshot())
	})
}

// RemoveCampaigns aceita campaign_ids repetido ou separado por vírgula
func RemoveCampaigns(registry *workspace.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := currentWorkspace(registry, r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var campaignIDs []string
		for _, raw := range r.URL.Query()["campaign_ids"] {
			for _, campaignID := range strings.Split(raw, ",") {
				if campaignID = strings.TrimSpace(campaignID); campaignID != "" {
					campaignIDs = append(campaignIDs, campaignID)
				}
			}
		}

		if err := ws.Groups.RemoveCampaigns(r.Context(), id, campaignIDs); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ws.Groups.Snapshot())
	})
}
