// Package httpserver exposes games and the engine over JSON and pushes game
// updates to websocket watchers.
package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"krojanty/internal/config"
	"krojanty/internal/engine"
	"krojanty/internal/krojanty"
	"krojanty/internal/server/game"
)

const maxBodyBytes = 1 << 16

type Handler struct {
	cfg   *config.Store
	games *game.Manager
	hub   *Hub
}

// NewHandler wires games to hub so that every move reaches the watchers.
func NewHandler(cfg *config.Store, games *game.Manager, hub *Hub) *Handler {
	games.OnChange = hub.Publish
	return &Handler{cfg: cfg, games: games, hub: hub}
}

func (h *Handler) Games() *game.Manager { return h.games }

// Router builds the full route table. Static files come last so /api wins.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})
		r.Get("/config", h.handleGetConfig)
		r.Put("/config", h.handlePutConfig)
		r.Post("/analyze", h.handleAnalyze)

		r.Post("/games", h.handleNewGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", h.handleState)
			r.Post("/moves", h.handlePlay)
			r.Post("/ai", h.handleAiMove)
			r.Get("/ws", h.handleWS)
		})
	})

	RegisterStaticRoutes(r, h.cfg.Get().WebDir)
	return r
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	writeJSON(w, http.StatusCreated, snapshotToDTO(g.Snapshot()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshotToDTO(g.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	mv, err := krojanty.ParseMove(req.Move)
	if err != nil {
		writeError(w, err)
		return
	}

	snap, caps, err := h.games.Play(chi.URLParam(r, "id"), mv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PlayResponse{
		Game:     snapshotToDTO(snap),
		Move:     mv.String(),
		Captures: capturesToDTO(caps),
	})
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	depth, err := h.depth(req.MaxDepth)
	if err != nil {
		writeError(w, err)
		return
	}

	snap, res, err := h.games.EngineMove(chi.URLParam(r, "id"), depth)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AiMoveResponse{
		Game:     snapshotToDTO(snap),
		BestMove: res.BestMove.String(),
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
	})
}

// handleAnalyze searches an arbitrary position without recording a game.
func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	pos, err := krojanty.DecodePosition(req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	depth, err := h.depth(req.MaxDepth)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := AnalyzeResponse{
		Position: pos.Encode(),
		ToMove:   pos.SideToMove.String(),
		Eval:     engine.Evaluate(&pos.Board),
		BestMove: krojanty.NoMove.String(),
	}
	if winner := krojanty.Winner(&pos.Board); winner != krojanty.NoSide {
		resp.Winner = winner.String()
		writeJSON(w, http.StatusOK, resp)
		return
	}

	res := h.games.Engine(depth).Search(&pos.Board, pos.SideToMove)
	resp.BestMove = res.BestMove.String()
	resp.Score = res.Score
	resp.Depth = res.Depth
	resp.Nodes = res.Nodes
	resp.TimeMs = res.TimeUsed.Milliseconds()
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.serveWS(w, r, g.Snapshot())
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cfg.Get())
}

// handlePutConfig overlays the body on the current config. Address and
// table size only take effect on restart.
func (h *Handler) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg.Get()
	if !decodeJSON(w, r, &cfg) {
		return
	}
	if err := h.cfg.Update(cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	cfg.SetupLogging()
	log.Info().Int("max_depth", cfg.MaxDepth).Str("log_level", cfg.LogLevel).Msg("config-updated")
	writeJSON(w, http.StatusOK, cfg)
}

var errBadDepth = errors.New("max_depth out of range")

// depth falls back to the configured depth for 0 and rejects anything the
// config would reject.
func (h *Handler) depth(requested int) (int, error) {
	if requested == 0 {
		return h.cfg.Get().MaxDepth, nil
	}
	cfg := h.cfg.Get()
	cfg.MaxDepth = requested
	if err := cfg.Validate(); err != nil {
		return 0, errors.Wrapf(errBadDepth, "%d", requested)
	}
	return requested, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad json: " + err.Error()})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, krojanty.ErrIllegalMove):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, krojanty.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, krojanty.ErrInvalidSquare),
		errors.Is(err, krojanty.ErrInvalidPosition),
		errors.Is(err, errBadDepth):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).Msg("request-failed")
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Debug().Err(err).Msg("write-json")
	}
}
