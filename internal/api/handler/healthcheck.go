package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/magento-reporting-api/pkg/log"
)

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"
)

type RemoteHealthChecker interface {
	Status() domain.RemoteHealth
	CheckNow(ctx context.Context) domain.RemoteHealth
}

func newHealthCheck(remote domain.RemoteHealth) domain.HealthCheck {
	status := healthStatusOK
	if remote.Enabled && remote.LastCheckedAt != nil && !remote.Reachable {
		status = healthStatusDegraded
	}

	return domain.HealthCheck{
		Status:     status,
		ServerTime: time.Now().Format(time.RFC3339),
		Magento:    remote,
	}
}

// HealthcheckHandler responde sempre 200; a API do Magento fora do ar só marca degraded
func HealthcheckHandler(checker RemoteHealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, newHealthCheck(checker.Status()))
	})
}

// RunRemoteHealthCheck executa a verificação do Magento fora do agendamento
func RunRemoteHealthCheck(checker RemoteHealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remote := checker.CheckNow(r.Context())

		log.ForContext(r.Context()).WithField("magento_reachable", remote.Reachable).Info("http: manual remote health check")

		apiErrors.WriteJSON(w, http.StatusOK, newHealthCheck(remote))
	})
}
