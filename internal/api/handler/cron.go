package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
)

const CronJobTypeReconcile = "reconcile"

// Reconciler é satisfeito por scheduler.ReconcileService
type Reconciler interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(reconciler Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypeReconcile {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"valid_types": []string{CronJobTypeReconcile},
			})
			return
		}

		// a rodada segue após a resposta, desvinculada do cancelamento da requisição
		started := reconciler.TriggerManualSync(context.WithoutCancel(r.Context()))

		writeJSON(w, http.StatusAccepted, map[string]any{
			"type":    cronType,
			"started": started,
		})
	})
}

func GetCronStatus(reconciler Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypeReconcile: reconciler.GetStatus(),
		})
	})
}
