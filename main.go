package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/learnpath/site/blog"
	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/config"
	"github.com/learnpath/site/db"
	h "github.com/learnpath/site/handlers"
	"github.com/learnpath/site/logger"
	"github.com/learnpath/site/server"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if !cfg.EnvLoaded {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	// Catalog comes from sqlite when configured, otherwise the built-in list
	var source catalog.Provider = catalog.NewStatic(nil)
	if cfg.CatalogDB != "" {
		if err := db.Init(cfg.CatalogDB); err != nil {
			log.Fatal().Err(err).Msg("error initializing catalog database")
		}
		defer db.Close()
		source = catalog.NewSQL(db.Get())
	}

	courses, err := catalog.NewCached(source, cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog cache")
	}
	defer courses.Close()

	posts, err := blog.NewCached(blog.NewStatic(nil), cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize blog cache")
	}
	defer posts.Close()

	h.Init(h.Options{Catalog: courses, Blog: posts, BaseURL: cfg.BaseURL})

	app := server.New(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
