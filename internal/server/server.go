// Package server exposes the chat assistant and player lookups over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/assistant"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/sirupsen/logrus"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server holds the collaborators shared by every handler.
type Server struct {
	cfg       *contract.Config
	resolver  *core.Resolver
	assistant *assistant.Assistant
	cache     contract.CacheManager
	log       *logrus.Logger
}

// New wires a server. A nil cache manager disables search counts.
func New(cfg *contract.Config, resolver *core.Resolver, cache contract.CacheManager, log *logrus.Logger) *Server {
	return &Server{
		cfg:       cfg,
		resolver:  resolver,
		assistant: assistant.New(resolver),
		cache:     cache,
		log:       log,
	}
}

// NewLogger returns a JSON logrus logger at the named level, defaulting to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// Routes builds the router with middleware and every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	// Long-lived connection, so no request timeout
	r.Get("/ws/chat", s.handleChatSocket)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))

		r.Post("/chat", s.handleChat)
		r.Post("/score", s.handleScore)
		r.Get("/trending", s.handleTrending)

		r.Get("/players/search", s.handlePlayerSearch)
		r.Get("/players/{id}", s.handlePlayer)
		r.Get("/players/{id}/seasons", s.handlePlayerSeasons)
		r.Get("/players/{id}/projection", s.handlePlayerProjection)

		r.Get("/debug/player/{name}", s.handleDebugPlayer)
	})

	return r
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.WithFields(logrus.Fields{
			"addr":        s.cfg.Addr,
			"players":     s.resolver.Directory().Len(),
			"leaderboard": s.resolver.Leaderboard().Len(),
		}).Info("gridiron server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.WithError(err).Warn("graceful shutdown failed")
		return srv.Close()
	}
	s.log.Info("shutdown complete")
	return nil
}

// searchStore returns the configured search store, or nil.
func (s *Server) searchStore() contract.SearchStore {
	if s.cache == nil {
		return nil
	}
	return s.cache.GetSearchStore()
}
