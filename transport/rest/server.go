package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type matchUseCase interface {
	CreateMatch(ctx context.Context) (*entity.Match, error)
	GetMatch(ctx context.Context, id string) (*entity.Match, error)
	MakeMove(ctx context.Context, id, square, mark string) (*entity.Match, error)
	MakeBotMove(ctx context.Context, id string) (*entity.Match, error)
	DeleteMatch(ctx context.Context, id string) error
	RenderBoard(ctx context.Context, id string) (string, error)
}

type Server struct {
	logger *slog.Logger
	router chi.Router
}

// NewServer - builds the router. pinger backs /ping and may be nil.
func NewServer(logger *slog.Logger, matches matchUseCase, pinger handlers.Pinger) *Server {
	h := &matchHandlers{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", handlers.PingHandler(pinger))

	r.Route("/matches", func(r chi.Router) {
		r.Post("/", h.createMatch)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getMatch)
			r.Delete("/", h.deleteMatch)
			r.Get("/board", h.getBoard)
			r.Post("/moves", h.makeMove)
			r.Post("/bot-move", h.makeBotMove)
		})
	})

	return &Server{
		logger: logger,
		router: r,
	}
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves on port until ctx is done, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
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
