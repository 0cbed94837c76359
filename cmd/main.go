// @title           Model Railroad Scaler API
// @version         1.0
// @description     Scales dimensions between full size and model railroad scales.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	scaler "github.com/DrOldGuy/model-railroad-scaler"
	"github.com/DrOldGuy/model-railroad-scaler/internal/config"
	"github.com/DrOldGuy/model-railroad-scaler/internal/handlers"
	"github.com/DrOldGuy/model-railroad-scaler/internal/logger"
	"github.com/DrOldGuy/model-railroad-scaler/internal/repository"
	"github.com/DrOldGuy/model-railroad-scaler/internal/repository/db"
	"github.com/DrOldGuy/model-railroad-scaler/internal/server"
	"github.com/DrOldGuy/model-railroad-scaler/internal/service"
)

const (
	seedTimeout     = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yml")
	flag.Parse()

	// load config.yml + SCALER_* env
	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	if cfg.Auth.SigningKey == "" {
		log.Warnw("auth.signing_key is empty; sign-in and /api/v1 are disabled")
	}

	// open DB
	sqlDB, err := openDB(cfg.DB.Path, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})

	if err := seedScales(services); err != nil {
		log.Fatalw("failed to seed scales", "err", err)
	}

	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		Pages:        scaler.Pages(),
		ClientJS:     cfg.Web.ClientJS,
		FeedInterval: cfg.WS.Interval,
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func openDB(path string, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", path)
	return db.InitDB(path)
}

// seedScales makes sure the built-in scales exist before the first request.
func seedScales(services *service.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	return services.SeedScales(ctx)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
