// Package api exposes rounds over a small JSON HTTP API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"blackjack/internal/game"
	"blackjack/internal/render"
	"blackjack/internal/session"
)

const keyPrefix = "http:"

type Server struct {
	games  *session.Service
	logger *log.Logger
}

type gameResponse struct {
	ID string `json:"id"`
	render.Table
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(games *session.Service, logger *log.Logger) *Server {
	return &Server{games: games, logger: logger}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Delete("/", s.handleDelete)
			r.Post("/hit", s.handleHit)
			r.Post("/stand", s.handleStand)
			r.Post("/reset", s.handleReset)
		})
	})

	return r
}

// ListenAndServe blocks until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	g, err := s.games.Deal(r.Context(), keyPrefix+id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view(id, g))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, s.games.Get)
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, s.games.Hit)
}

func (s *Server) handleStand(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, s.games.Stand)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.withGame(w, r, s.games.Redeal)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	if err := s.games.Delete(r.Context(), keyPrefix+id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) withGame(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (game.State, error)) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	g, err := fn(r.Context(), keyPrefix+id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view(id, g))
}

func gameID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid game id"})
		return "", false
	}
	return id.String(), true
}

func view(id string, g game.State) gameResponse {
	return gameResponse{ID: id, Table: render.Snapshot(g)}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
	case errors.Is(err, session.ErrNotPlayerTurn):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, game.ErrDeckExhausted):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
