package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

type moveRequest struct {
	Square string `json:"square"`
	Mark   string `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type matchHandlers struct {
	logger  *slog.Logger
	matches matchUseCase
}

func (that *matchHandlers) createMatch(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.CreateMatch(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, match)
}

func (that *matchHandlers) getMatch(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.GetMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match)
}

func (that *matchHandlers) getBoard(w http.ResponseWriter, r *http.Request) {
	rendered, err := that.matches.RenderBoard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(rendered)); err != nil {
		that.logger.Error("failed to write board", "error", err)
	}
}

func (that *matchHandlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	match, err := that.matches.MakeMove(r.Context(), chi.URLParam(r, "id"), req.Square, req.Mark)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match)
}

func (that *matchHandlers) makeBotMove(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.MakeBotMove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, match)
}

func (that *matchHandlers) deleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := that.matches.DeleteMatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps use case errors to HTTP codes. Rule violations are conflicts, malformed input is a bad request.
func statusFor(err error) int {
	var setErr *game.SetError

	switch {
	case errors.Is(err, apperror.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.As(err, &setErr),
		errors.Is(err, apperror.ErrMatchFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *matchHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		that.writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *matchHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
