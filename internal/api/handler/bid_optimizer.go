package handler

import (
	"net/http"

	"github.com/vfg2006/buff-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/buff-dashboard-api/pkg/filters"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
)

// GetBidOptimizerData recebe em filters a lista de condições montada na tabela
func GetBidOptimizerData(service *reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		conditions, err := filters.ParseConditions(query.Get("filters"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		data, err := service.Report(r.Context(), query.Get("profile_id"), query.Get("start_date"), query.Get("end_date"), conditions)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar dados do bid optimizer")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, data)
	})
}
