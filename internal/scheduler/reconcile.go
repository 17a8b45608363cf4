// Package scheduler contém os serviços de agendamento
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/internal/config"
	"github.com/vfg2006/buff-dashboard-api/internal/workspace"
)

// WorkspaceLister é satisfeito por workspace.Registry
type WorkspaceLister interface {
	All() []*workspace.Workspace
}

type ReconcileConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReconcileService refaz periodicamente o FetchAll de todo workspace que já
// buscou seus grupos, mantendo contagens e associações alinhadas com o backend.
type ReconcileService struct {
	scheduler  *gocron.Scheduler
	workspaces WorkspaceLister
	config     ReconcileConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncReconciled  int
	lastSyncFailed      int
}

func NewReconcileService(workspaces WorkspaceLister, cfg *config.Config) *ReconcileService {
	reconcileConfig := ReconcileConfig{
		CronSchedule: cfg.Reconcile.CronSchedule,
		SyncEnabled:  cfg.Reconcile.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
		"enabled":       reconcileConfig.SyncEnabled,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &ReconcileService{
		scheduler:  gocron.NewScheduler(time.Local),
		workspaces: workspaces,
		config:     reconcileConfig,
	}
}

func (s *ReconcileService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reconciliação agendada desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ReconcileAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação")
		s.scheduler.Stop()
	}()

	return nil
}

// ReconcileAll executa uma rodada. Rodadas concorrentes são ignoradas.
func (s *ReconcileService) ReconcileAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	reconciled, failed := 0, 0

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncReconciled = reconciled
		s.lastSyncFailed = failed
		s.syncMutex.Unlock()
	}()

	for _, ws := range s.workspaces.All() {
		if ctx.Err() != nil {
			logrus.Warn("Reconciliação interrompida: contexto cancelado")
			return
		}

		profileID, fetched := ws.Groups.ProfileID()
		if !fetched {
			continue
		}

		if err := ws.Groups.FetchAll(ctx, profileID); err != nil {
			failed++
			logrus.WithError(err).WithField("user_id", ws.Session.UserID).Warn("Erro ao reconciliar grupos de campanha")
			continue
		}
		reconciled++
	}

	logrus.WithFields(logrus.Fields{
		"reconciled": reconciled,
		"failed":     failed,
	}).Info("Reconciliação concluída")
}

// TriggerManualSync inicia uma rodada fora do agendamento
func (s *ReconcileService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual")
	go s.ReconcileAll(ctx)
	return true
}

func (s *ReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_reconciled":   s.lastSyncReconciled,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
