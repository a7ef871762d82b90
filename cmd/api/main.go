package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/magentoclient"
	"github.com/vfg2006/magento-reporting-api/internal/api"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/scheduler"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/authenticating"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/lookup"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/tooling"
	"github.com/vfg2006/magento-reporting-api/pkg/log"
)

func main() {
	issueToken := flag.String("issue-token", "", "emite um token para o subject informado e encerra")
	tokenTTL := flag.Duration("token-ttl", authenticating.DefaultTokenTTL, "validade do token emitido")
	flag.Parse()

	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("main: invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	authenticator := authenticating.NewService(cfg)

	if *issueToken != "" {
		token, err := authenticator.GenerateToken(*issueToken, *tokenTTL)
		if err != nil {
			logrus.WithError(err).Fatal("main: failed to issue token")
		}
		fmt.Println(token)
		return
	}

	if !authenticator.Enabled() {
		logrus.Warn("main: AUTH_SECRET not set, tool endpoints are public")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	magentoClient := magentoclient.NewClient(cfg)
	magentoService := magento.New(cfg, magentoClient)

	reportingService := reporting.NewReportingService(cfg, magentoService)
	lookupService := lookup.NewLookupService(cfg, magentoService)
	dispatcher := tooling.NewToolDispatcher(reportingService, lookupService)

	remoteHealthService := scheduler.NewRemoteHealthService(magentoService, cfg)
	if err := remoteHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: failed to start remote health check")
	}

	logrus.WithFields(logrus.Fields{
		"magento_base_url": cfg.Magento.BaseURL,
		"tools":            len(dispatcher.ListTools()),
		"timezone":         cfg.App.Location.String(),
	}).Info("main: services initialized")

	server, err := api.New(cfg, dispatcher, authenticator, remoteHealthService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger usa texto em desenvolvimento e JSON nos demais ambientes
func configureLogger() {
	logrus.SetOutput(os.Stdout)

	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
}
