package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GulizarHanum/Birthday/internal/config"
	"github.com/GulizarHanum/Birthday/internal/handler"
	"github.com/GulizarHanum/Birthday/internal/logging"
	"github.com/GulizarHanum/Birthday/internal/repository"
	"github.com/GulizarHanum/Birthday/internal/service"
)

const shutdownTimeout = 10 * time.Second

// Usage example on the command line:
// > PORT=8080 DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
// > STORAGE=memory go run main.go -config=../../config.yaml
func main() {
	configPath := flag.String("config", "", "optional yaml configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load configuration")
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("service stopped")
	}
}

// run serves the REST API until ctx is cancelled.
func run(ctx context.Context, cfg config.Config) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.New(store, service.WithLogger(log.Logger))
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.SetupHttpRouter(svc, cfg.Server.RequestLogging),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", cfg.Storage).Str("gin_mode", gin.Mode()).
			Msg("birthday service listening")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// openStore creates the storage backend selected by the configuration. The returned function
// releases it.
func openStore(ctx context.Context, cfg config.Config) (repository.Store, func(), error) {
	if cfg.Storage == config.StorageMemory {
		return repository.NewMemoryStore(), func() {}, nil
	}

	sqlDB, err := repository.OpenMySQL(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Migrate {
		n, err := repository.Migrate(sqlDB, true)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		log.Info().Int("count", n).Msg("applied migrations")
	}
	store, err := repository.NewMySQLStore(ctx, sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("could not close database")
		}
	}, nil
}
