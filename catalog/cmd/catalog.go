package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/furnspace/furnspace/catalog/internal/controller"
	"github.com/furnspace/furnspace/catalog/internal/otel"
	"github.com/furnspace/furnspace/catalog/internal/service"
	"github.com/furnspace/furnspace/internal/common/constants"
	commonErrors "github.com/furnspace/furnspace/internal/common/errors"
	"github.com/furnspace/furnspace/internal/config"
	"github.com/furnspace/furnspace/internal/infra"
	"github.com/furnspace/furnspace/internal/log"
	"github.com/furnspace/furnspace/internal/middleware"
	inOtel "github.com/furnspace/furnspace/internal/otel"
	"github.com/furnspace/furnspace/internal/repository"
)

func RunCatalogService(c context.Context) {
	c, span := otel.Tracer.Start(c, "RunCatalogService")
	defer span.End()

	logger := log.InitLogger(filepath.Join("/var/log/", constants.AppCatalogService+".log")).
		With().
		Str(log.KeyAppName, constants.AppCatalogService).
		Str(log.KeyTag, "main RunCatalogService").
		Logger()
	c = logger.WithContext(c)

	cfg := config.InitConfig(c, constants.AppCatalogService)

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := inOtel.InitOtelSdk(c, constants.AppCatalogService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		c = logger.WithContext(c)
		if err := inOtel.ShutdownOtel(c, shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	db := infra.NewDatabaseClient(c, cfg.Database)
	defer func() {
		logger.Info().Msg("closing database")
		db.Close()
		logger.Info().Msg("closed database")
	}()
	queries := repository.New(db)
	logger.Info().Msg("initialized database")

	logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
	logger.Info().Msg("initializing cache")
	c = logger.WithContext(c)
	cache := infra.NewCacheClient(c, cfg.Cache)
	defer func() {
		logger.Info().Msg("closing cache")
		if err := cache.Close(); err != nil {
			err = fmt.Errorf("failed closing cache with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("closed cache")
	}()
	logger.Info().Msg("initialized cache")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(constants.AppCatalogService),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	router.Handle("/metrics", promhttp.Handler())
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing catalog service").Logger()
	logger.Info().Msg("initializing catalog service")
	c = logger.WithContext(c)
	catalogService := service.NewCatalogService(queries, cache)
	controller.AttachCatalogController(router, catalogService, cfg.Application)
	logger.Info().Msg("initialized catalog service")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	server := http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext: func(net.Listener) context.Context {
			lg := logger.With().
				Reset().
				Timestamp().
				Caller().
				Stack().
				Str(log.KeyAppName, constants.AppCatalogService).
				Logger()
			return lg.WithContext(c)
		},
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger.Info().Msgf("start listening request at %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("encounter error=%w while running server", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutting down server").Logger()
	logger.Info().Msg("received interruption signal shutting down")
	err = server.Shutdown(context.Background())
	if err != nil {
		err = fmt.Errorf("failed shutting down server with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("shutdown server")
}
