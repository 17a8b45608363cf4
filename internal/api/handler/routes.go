package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/buff-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
	"github.com/vfg2006/buff-dashboard-api/pkg/middleware"
)

var authenticated = []func(http.Handler) http.Handler{middleware.RequireSession()}

func Healthcheck(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Connections(registry *workspace.Registry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connections/amazon-ads/status",
			Method:  http.MethodGet,
			Handler: GetConnectionStatus(registry),
		},
	}
}

func CampaignGroups(registry *workspace.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaign-groups",
			Method:      http.MethodGet,
			Handler:     ListCampaignGroups(registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/campaign-groups",
			Method:      http.MethodPost,
			Handler:     CreateCampaignGroup(registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/campaign-groups/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaignGroup(registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/campaign-groups/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaignGroup(registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/campaign-groups/:id/campaigns",
			Method:      http.MethodPost,
			Handler:     AssignCampaigns(registry),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/campaign-groups/:id/campaigns",
			Method:      http.MethodDelete,
			Handler:     RemoveCampaigns(registry),
			Middlewares: authenticated,
		},
	}
}

func BidOptimizer(service *reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bid-optimizer",
			Method:      http.MethodGet,
			Handler:     GetBidOptimizerData(service),
			Middlewares: authenticated,
		},
	}
}

func Notifications(registry *workspace.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(registry),
			Middlewares: authenticated,
		},
	}
}

func CronJobs(reconciler Reconciler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(reconciler),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(reconciler),
			Middlewares: authenticated,
		},
	}
}
