package main

import (
	"database/sql"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"barkly-backend/internal/adapters/auth/google"
	"barkly-backend/internal/adapters/auth/jwtauth"
	"barkly-backend/internal/adapters/storage/postgres"
	"barkly-backend/internal/config"
	"barkly-backend/internal/platform/logger"
	"barkly-backend/internal/router"

	_ "barkly-backend/docs"
)

// @title Barkly API
// @version 1.0
// @description Backend de seguimiento de salud de perros.
// @BasePath /api
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	if cfg.DevMode() {
		// Sin verifier: auth por X-Debug-User-ID, solo para desarrollo.
		log.Warn("running in dev mode, requests authenticate via X-Debug-User-ID", nil)
	} else {
		tokens := jwtauth.New(cfg.JWTSecret, cfg.JWTTTL)
		opts.AuthVerifier = tokens
		opts.Issuer = tokens
		opts.Identity = google.NewClient(google.Config{
			ClientID: cfg.GoogleClientID,
			Timeout:  5 * time.Second,
		})
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("opening postgres", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Error("applying migrations", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", logger.Fields{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
}
