package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/cache"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/pushclient"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/integrator/votetrack/votetrackclient"
	"github.com/vfg2006/satisfaction-monitor-api/infrastructure/repository"
	"github.com/vfg2006/satisfaction-monitor-api/internal/api"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
	"github.com/vfg2006/satisfaction-monitor-api/internal/livefeed"
	"github.com/vfg2006/satisfaction-monitor-api/internal/scheduler"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/fetching"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/monitoring"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := cfg.App.Location()

	// Redis é opcional: sem ele os lookups ficam só em memória
	var lookupStore fetching.LookupStore
	if cfg.Redis.URL != "" {
		redisCache, err := cache.New(ctx, cfg.Redis.URL)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, lookups ficarão apenas em memória")
		} else {
			defer redisCache.Close()
			lookupStore = redisCache
			logrus.Info("Conexão com Redis estabelecida com sucesso")
		}
	}

	// Histórico de relatórios é opcional: sem DATABASE_URL as exportações não são registradas
	var reportHistory reporting.HistoryRepository
	if cfg.Database.Enabled() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		historyRepo := repository.NewReportHistoryRepository(pgConn)
		if err := historyRepo.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar tabela de histórico de relatórios")
		}
		reportHistory = historyRepo
	}

	authenticator := authenticating.NewService(cfg)

	voteTrackClient := votetrackclient.NewClient(cfg)
	voteTrackIntegrator := votetrack.New(voteTrackClient)

	fetcher := fetching.New(voteTrackIntegrator, lookupStore, fetching.Config{
		MaxConcurrent: cfg.VoteTrack.MaxConcurrent,
		LookupTTL:     cfg.Redis.LookupCacheTTL,
		CacheKey:      cfg.Redis.LookupCacheKey,
	})

	// O broker entra e sai das salas do backend conforme os monitores assinam as empresas
	pushClient := pushclient.New(pushclient.Config{
		URL:   cfg.VoteTrack.PushURL,
		Token: cfg.VoteTrack.ServiceToken,
	})
	broker := livefeed.NewBroker(livefeed.WithRoomHooks(pushClient.Join, pushClient.Leave))
	defer broker.Close()
	pushClient.Attach(broker)

	if cfg.VoteTrack.PushEnabled {
		go func() {
			if err := pushClient.Run(ctx); err != nil {
				logrus.WithError(err).Error("Canal ao vivo encerrado com erro")
			}
		}()
	} else {
		logrus.Info("Canal ao vivo desabilitado, monitores dependem apenas do polling")
	}

	pollScheduler := scheduler.NewPollScheduler(loc)
	pollScheduler.Start(ctx)

	monitors := monitoring.NewRegistry(fetcher, broker, pollScheduler, monitoring.RegistryConfig{
		MaxViews:         cfg.Monitor.MaxViews,
		MaxViewsPerOwner: cfg.Monitor.MaxViewsPerUser,
		PollInterval:     cfg.Monitor.PollInterval,
		FetchTimeout:     cfg.VoteTrack.Timeout * 2,
		IdleTimeout:      cfg.Monitor.IdleTimeout,
		Location:         loc,
	})

	insightService := insighting.NewService(fetcher, insighting.Config{
		Location:    loc,
		RecentLimit: cfg.Monitor.RecentLimit,
	})

	reportService := reporting.NewService(fetcher, reportHistory, reporting.ServiceConfig{
		Title:    cfg.Report.Title,
		MaxPages: cfg.Report.MaxPages,
		Location: loc,
	})

	lookupRefreshService := scheduler.NewLookupRefreshService(fetcher, cfg)
	if err := lookupRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de lookups")
	}

	server, err := api.New(
		cfg,
		insightService,
		reportService,
		monitors,
		fetcher,
		authenticator,
		lookupRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
