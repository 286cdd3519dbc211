package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	logger   *slog.Logger
	handlers Handlers
}

func New(logger *slog.Logger, handlers Handlers) *Server {
	return &Server{
		logger:   logger,
		handlers: handlers,
	}
}

// Router - builds the chi router with every HTTP route of the service.
func (that *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(handlerTimeout))

	r.Get("/ping", that.handlers.PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/tictac/play", that.handlers.PlayHandler)
		r.Get("/tictac/games/{id}", that.handlers.GetGameHandler)
		r.Get("/turnlogs/{cid}", that.handlers.TurnLogHandler)
		r.Get("/tournaments/{id}/entries", that.handlers.LeaderboardHandler)
	})

	return r
}

// Start - serves HTTP until the context is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
