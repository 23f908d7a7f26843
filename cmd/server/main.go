/*
main.go - Application entry point

PURPOSE:
  Starts the payroll HTTP server: loads configuration, initialises logging,
  builds the roster store and serves the API until interrupted.

STARTUP SEQUENCE:
  1. Parse flags and load configuration (env + optional .env)
  2. Initialize logging
  3. Create the roster store (memory or in-process SQLite)
  4. Create API handler and router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides PAYROLL_PORT)
  -env     Path to a .env file

ENVIRONMENT (prefix PAYROLL_):
  PORT, STORE (memory|sqlite), CURRENCY_SYMBOL, CURRENCY_CODE,
  ALLOWED_ORIGINS, LOG_DEBUG, LOG_PRETTY

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the store (the roster is discarded)
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/logging"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/store/sqlite"
)

func main() {
	port := flag.Int("port", 0, "HTTP server port (overrides PAYROLL_PORT)")

	conf := config.MustNew[config.Server]("PAYROLL")
	if *port != 0 {
		conf.Port = *port
	}

	logging.Init(conf.Log)

	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	roster, closeStore, err := openStore(conf.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer closeStore()

	handler := api.NewHandler(roster, report.Options{
		Symbol: conf.CurrencySymbol,
		Code:   conf.CurrencyCode,
		Title:  report.DefaultOptions.Title,
	})
	router := api.NewRouter(handler, conf.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", conf.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", conf.Port).Str("store", conf.Store).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped")
}

func openStore(kind string) (payroll.Store, func(), error) {
	if kind == config.StoreSQLite {
		s, err := sqlite.New()
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}
	return store.NewMemory(), func() {}, nil
}
