package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/metrics"
)

const defaultProbeTimeout = 10 * time.Second

// RemoteHealthConfig representa a configuração da verificação periódica da API do Magento
type RemoteHealthConfig struct {
	CronSchedule string
	Enabled      bool
	Timeout      time.Duration
}

// RemoteHealthService agenda a verificação da API do Magento e guarda o último resultado.
// O resultado é só informativo para /healthcheck, nenhum relatório depende dele.
type RemoteHealthService struct {
	scheduler      *gocron.Scheduler
	config         RemoteHealthConfig
	magentoService magento.MagentoIntegrator
	statusMutex    sync.RWMutex
	status         domain.RemoteHealth
	now            func() time.Time
}

func NewRemoteHealthService(magentoService magento.MagentoIntegrator, appConfig *config.Config) *RemoteHealthService {
	healthConfig := RemoteHealthConfig{
		CronSchedule: appConfig.RemoteHealthCheck.CronSchedule,
		Enabled:      appConfig.RemoteHealthCheck.Enabled,
		Timeout:      appConfig.Magento.Timeout,
	}
	if healthConfig.Timeout <= 0 {
		healthConfig.Timeout = defaultProbeTimeout
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": healthConfig.CronSchedule,
		"enabled":       healthConfig.Enabled,
	}).Info("scheduler: remote health check configured")

	return &RemoteHealthService{
		scheduler:      gocron.NewScheduler(location),
		config:         healthConfig,
		magentoService: magentoService,
		status:         domain.RemoteHealth{Enabled: healthConfig.Enabled},
		now:            time.Now,
	}
}

// Start agenda a verificação e executa a primeira imediatamente
func (s *RemoteHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: remote health check disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.CheckNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: failed to schedule remote health check: %w", err)
	}

	s.scheduler.StartAsync()
	go s.CheckNow(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping remote health check")
		s.scheduler.Stop()
	}()

	return nil
}

// CheckNow consulta a API imediatamente e atualiza o status
func (s *RemoteHealthService) CheckNow(ctx context.Context) domain.RemoteHealth {
	probeCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	err := s.magentoService.Ping(probeCtx)
	checkedAt := s.now()

	s.statusMutex.Lock()
	s.status.LastCheckedAt = &checkedAt
	s.status.Reachable = err == nil
	s.status.LastError = ""
	if err != nil {
		s.status.LastError = err.Error()
	}
	status := s.status
	s.statusMutex.Unlock()

	if err != nil {
		metrics.MagentoUp.Set(0)
		logrus.WithError(err).Warn("scheduler: magento api unreachable")
	} else {
		metrics.MagentoUp.Set(1)
		logrus.Debug("scheduler: magento api reachable")
	}

	return status
}

// Status retorna o último resultado sem consultar a API
func (s *RemoteHealthService) Status() domain.RemoteHealth {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	return s.status
}
