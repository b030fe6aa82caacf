package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
)

// LookupRefresher é implementado pelo fetcher
type LookupRefresher interface {
	RefreshLookups(ctx context.Context, session *domain.SessionContext) (*domain.Lookups, error)
}

// LookupRefreshConfig representa a configuração da atualização agendada de empresas e serviços
type LookupRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
	ServiceToken string
	Timeout      time.Duration
}

// LookupRefreshService mantém os lookups aquecidos com o token de serviço
type LookupRefreshService struct {
	scheduler           *gocron.Scheduler
	config              LookupRefreshConfig
	refresher           LookupRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastCompanies       int
	lastServices        int
}

func NewLookupRefreshService(refresher LookupRefresher, appConfig *config.Config) *LookupRefreshService {
	refreshConfig := LookupRefreshConfig{
		CronSchedule: appConfig.LookupRefresh.CronSchedule,
		SyncEnabled:  appConfig.LookupRefresh.Enabled,
		ServiceToken: appConfig.VoteTrack.ServiceToken,
		Timeout:      appConfig.VoteTrack.Timeout * 2,
	}

	scheduler := gocron.NewScheduler(appConfig.App.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
		"has_token":     refreshConfig.ServiceToken != "",
	}).Info("Configuração do agendador de lookups carregada")

	return &LookupRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *LookupRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada de lookups desabilitada por configuração")
		return nil
	}
	if s.config.ServiceToken == "" {
		logrus.Warn("Atualização agendada de lookups sem VOTETRACK_SERVICE_TOKEN, agendador não iniciado")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de lookups")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshLookups()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de lookups: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de lookups")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LookupRefreshService) refreshLookups() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de lookups já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	timeout := s.config.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// sessão nova a cada execução: uma rejeição não contamina as próximas
	session := domain.NewSessionContext(s.config.ServiceToken, 0, func(err error) {
		logrus.WithError(err).Error("Token de serviço do VoteTrack rejeitado")
	})

	lookups, err := s.refresher.RefreshLookups(ctx, session)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro ao atualizar lookups")
		return
	}

	s.lastSyncError = ""
	s.lastCompanies = len(lookups.Companies)
	s.lastServices = len(lookups.Services)
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"companies": s.lastCompanies,
		"services":  s.lastServices,
	}).Info("Atualização de lookups concluída")
}

// TriggerManualSync inicia manualmente uma atualização de lookups
func (s *LookupRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de lookups já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de lookups")
	go s.refreshLookups()
}

// GetStatus retorna o status atual do agendador
func (s *LookupRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"companies":              s.lastCompanies,
		"services":               s.lastServices,
	}
}
