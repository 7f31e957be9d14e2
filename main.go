package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	intconfig "busjo/internal/config"
	"busjo/internal/dataset"
	"busjo/internal/geometry"
	api "busjo/internal/http"
	"busjo/internal/http/handlers"
	"busjo/internal/services"
	"busjo/internal/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	appCfg, err := intconfig.LoadFile(env.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load app config")
	}

	loader := dataset.Loader{
		URL:  env.DatasetURL,
		Path: env.DatasetPath,
		Log:  log,
	}
	col, err := loader.Load(context.Background())
	if err != nil {
		// Degrade to empty collections; /api/dataset/reload can recover later.
		log.Error().Err(err).Msg("dataset unavailable, starting with empty collections")
		col = dataset.Empty()
	}
	data := dataset.NewStore(col)

	kv, err := openKV(env)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open persisted store")
	}
	sessions := store.SessionStore{KV: kv}
	tickets := store.TicketStore{KV: kv}

	trips := services.TripService{
		Data:              data,
		BoardingOverrides: appCfg.BoardingOverrides,
	}
	handler := &handlers.Handler{
		Data:   data,
		Loader: loader,
		Trips:  trips,
		Bookings: services.BookingService{
			Trips:    trips,
			Sessions: sessions,
			Tickets:  tickets,
			Log:      log,
		},
		Session: services.SessionService{
			Data:     data,
			Sessions: sessions,
			Secret:   []byte(env.JWTSecret),
		},
		Geo:         geometry.Client{BaseURL: env.RoutingURL},
		GeoTracker:  &geometry.Tracker{},
		FeatureTags: appCfg.FeatureTags,
		Log:         log,
	}

	r := api.NewRouter(handler, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.AppAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}

	log.Info().Msg("server stopped")
}

func openKV(env intconfig.Env) (store.KV, error) {
	if env.StoreDriver == "mysql" {
		return store.OpenMySQL(env.StoreDSN)
	}
	return store.NewFileStore(env.StorePath)
}
