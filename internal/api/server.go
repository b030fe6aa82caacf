package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/satisfaction-monitor-api/internal/api/handler"
	"github.com/vfg2006/satisfaction-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
	"github.com/vfg2006/satisfaction-monitor-api/internal/scheduler"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/middleware"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	httpServer *http.Server
	monitors   *monitoring.Registry
}

func New(
	config *config.Config,
	insightService insighting.Insighter,
	reportService *reporting.Service,
	monitors *monitoring.Registry,
	lookups handler.LookupSource,
	authenticator authenticating.Authenticator,
	lookupRefreshService *scheduler.LookupRefreshService,
) (*Server, error) {
	loc := config.App.Location()

	cronServices := handler.CronJobServices{
		LookupRefreshService: lookupRefreshService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Analytics(insightService, loc)...),
		router.WithRoutes(handler.Reports(reportService, loc)...),
		router.WithRoutes(handler.Monitors(monitors, handler.MonitorOptions{
			Lookups:     lookups,
			Location:    loc,
			RecentLimit: config.Monitor.RecentLimit,
		})...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return &Server{
		monitors: monitors,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

const shutdownTimeout = 15 * time.Second

// Run atende até receber SIGINT/SIGTERM ou até ctx ser cancelado
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logrus.WithField("timeout", shutdownTimeout).Info("Encerrando servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Servidor encerrado com erro")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown fecha os monitores antes do HTTP para liberar assinaturas e polls
func (s *Server) Shutdown(ctx context.Context) error {
	if s.monitors != nil {
		s.monitors.CloseAll()
	}
	return s.httpServer.Shutdown(ctx)
}
