package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/Lost-And-Found-Hub/Item-Service/internal/api"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/api/handlers"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/auth"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/configuration"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/gemini"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/logger"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/services"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/storage"
	"github.com/Lost-And-Found-Hub/Item-Service/internal/store"
)

func main() {
	logger.Init()

	cfg, err := configuration.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.TracingEnabled {
		tracer.Start(tracer.WithServiceName("item-service"))
		defer tracer.Stop()
	}

	db, err := store.New(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer db.Close()
	log.Info().Msg("[DB] connected and migrated")

	images, err := buildImageStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize image storage")
	}

	var publisher *services.EventPublisher
	if cfg.NATSURL != "" {
		publisher, err = services.ConnectEvents(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to NATS")
		}
		defer publisher.Close()
	}

	var scanner *services.Scanner
	if cfg.ClamAVURL != "" {
		scanner = services.NewScanner(cfg.ClamAVURL)
		log.Info().Str("url", cfg.ClamAVURL).Msg("upload scanning enabled")
	}

	model := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)

	h := &handlers.Handler{
		Reporter: &services.Reporter{
			Items:     db,
			Images:    images,
			Model:     model,
			Scanner:   scanner,
			Publisher: publisher,
		},
		Matcher: &services.Matcher{Items: db, Model: model},
		Claimer: &services.Claimer{
			Items:     db,
			Images:    images,
			Publisher: publisher,
		},
		Images:    images,
		Verifier:  &auth.StoreVerifier{Users: db},
		IndexFile: cfg.Uploads.PublicDir + "/index.html",
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.NewRouter(h, cfg),
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

// buildImageStore picks MinIO when an endpoint is configured, local disk
// otherwise.
func buildImageStore(cfg *configuration.Config) (storage.ImageStore, error) {
	if cfg.MinIO.Endpoint != "" {
		return storage.NewMinio(
			cfg.MinIO.Endpoint,
			cfg.MinIO.AccessKey,
			cfg.MinIO.SecretKey,
			cfg.MinIO.BucketName,
			cfg.MinIO.UseSSL,
		)
	}
	return storage.NewLocal(cfg.Uploads.Dir)
}
