// Command server runs the commute benefits console API.
//
//	@title						Commute Benefits Console API
//	@version					1.0
//	@description				Enrollment console, rewards pool and commuter flow in front of the commute-benefits API.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fleetdemo/commute-benefits/internal/api"
	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
	"github.com/fleetdemo/commute-benefits/internal/core/service"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/commuteapi"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/db/memory"
	mongodb "github.com/fleetdemo/commute-benefits/internal/infrastructure/db/mongo"
	redisdb "github.com/fleetdemo/commute-benefits/internal/infrastructure/db/redis"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/http/handlers"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/queue"
	"github.com/fleetdemo/commute-benefits/internal/pkg/config"
	"github.com/fleetdemo/commute-benefits/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "commute-console",
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := commuteapi.New(commuteapi.Config{
		BaseURL: cfg.CommuteAPI.BaseURL,
		Timeout: cfg.CommuteAPI.Timeout,
		RPS:     cfg.CommuteAPI.RPS,
	}, logger.Component("commuteapi"))
	if err != nil {
		return err
	}

	readiness := map[string]handlers.Pinger{"commute_api": client}

	// --- Session and profile state ---
	var stores ports.KeyValueStores
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			ClientName: "commute-console",
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)
		stores = redisdb.NewStores(rdb, cfg.SessionTTL, cfg.ProfileTTL)
		readiness["redis"] = handlers.RedisPinger(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session state in redis")
	} else {
		stores = memory.NewStores()
		log.Warn().Msg("REDIS_ADDR not set, session state kept in memory")
	}

	// --- Audit trail ---
	// Workers outlive the signal so requests still finishing during
	// shutdown can record their actions.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	defer stopAudit()
	var recorder ports.ActionRecorder = queue.NewLogRecorder(logger.Component("audit"))
	var dispatcher *queue.AuditDispatcher
	if cfg.Mongo.URI != "" {
		mclient, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  "commute-console",
		})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mclient.Disconnect(dctx)
		}()

		repo := mongodb.NewAuditRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("could not ensure audit indexes")
		}
		dispatcher = queue.NewAuditDispatcher(cfg.Audit.Workers, repo, logger.Component("audit"))
		dispatcher.Start(auditCtx)
		recorder = dispatcher
		readiness["mongo"] = handlers.MongoPinger(db)
	} else {
		log.Warn().Msg("MONGO_URI not set, audit trail is only logged")
	}

	// --- Services ---
	consoles := service.NewConsoleRegistry(service.ConsoleDeps{
		API:      client,
		Recorder: recorder,
		OptionID: domain.OptionID(cfg.DefaultOptionID),
		Log:      logger.Component("console"),
	}, stores)
	go consoles.Run(ctx, cfg.ConsoleSweep)
	sessions := service.NewSessionService(client, stores, consoles, cfg.JWTSecret, cfg.SessionTTL, logger.Component("session"))

	e := api.NewRouter(api.Deps{
		Log:       logger.Component("http"),
		JWTSecret: cfg.JWTSecret,
		Sessions:  sessions,
		Consoles:  consoles,
		Reports:   service.NewReportService(client, stores),
		Play:      service.NewPlayService(client, stores, logger.Component("play")),
		Readiness: readiness,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdown(e, dispatcher, stopAudit, log)
	return nil
}

// shutdown stops the HTTP server first and the audit workers after it, so
// actions recorded by requests still finishing are persisted.
func shutdown(e *echo.Echo, dispatcher *queue.AuditDispatcher, stopAudit context.CancelFunc, log zerolog.Logger) {
	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	stopAudit()
	if dispatcher != nil {
		dispatcher.Wait()
	}
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("redis close")
	}
}
