package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/infrastructure/integrator/buff/buffclient"
	"github.com/vfg2006/buff-dashboard-api/internal/api"
	"github.com/vfg2006/buff-dashboard-api/internal/config"
	"github.com/vfg2006/buff-dashboard-api/internal/scheduler"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
	"github.com/vfg2006/buff-dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	buffClient := buffclient.NewClient(cfg, buffclient.WithMetrics(appMetrics))

	var source reporting.Source = buffClient
	if cfg.BidOptimizer.UseMock {
		logrus.Warn("Bid optimizer usando dados simulados")
		source = reporting.NewMockSource()
	}

	workspaces := workspace.NewRegistry(buffClient, appMetrics)

	reconcileService := scheduler.NewReconcileService(workspaces, cfg)
	if err := reconcileService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação")
	}

	server, err := api.New(cfg, api.Dependencies{
		Registry:   workspaces,
		Reporting:  reporting.NewService(source),
		Reconciler: reconcileService,
		Parser:     session.NewParser(cfg.Auth.Secret),
		Metrics:    appMetrics,
		Gatherer:   registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
