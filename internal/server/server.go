// Package server exposes board generation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chosenoffset.com/hexboard/internal/config"
	"chosenoffset.com/hexboard/internal/world/board"
)

// BoardRequest is the body of POST /api/board. Omitted fields keep the
// configured defaults.
type BoardRequest struct {
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Seed       int64                  `json:"seed"`
	Generation board.GenerationConfig `json:"generation"`
}

// BoardResponse describes a generated board
type BoardResponse struct {
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Seed   int64             `json:"seed"` // Resolved seed; replays the same board
	Rows   board.Matrix      `json:"rows"`
	Counts []board.RowCounts `json:"counts"`
}

// BoardHandler generates boards on request
type BoardHandler struct {
	cfg *config.Config
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(cfg *config.Config) *BoardHandler {
	return &BoardHandler{cfg: cfg}
}

// NewRouter configures all routes and returns the router
func NewRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	boardHandler := NewBoardHandler(cfg)

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", boardHandler.GetBoard)
		r.Post("/board", boardHandler.PostBoard)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// GetBoard handles GET /api/board?width=&height=&seed=&format=
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	req := h.defaultRequest()
	query := r.URL.Query()

	var err error
	if req.Width, err = intParam(query.Get("width"), req.Width); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid width")
		return
	}
	if req.Height, err = intParam(query.Get("height"), req.Height); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid height")
		return
	}
	if s := query.Get("seed"); s != "" {
		if req.Seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
	}

	resp, status, err := h.generate(req)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}

	if query.Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, resp.Rows.String())
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// PostBoard handles POST /api/board
func (h *BoardHandler) PostBoard(w http.ResponseWriter, r *http.Request) {
	req := h.defaultRequest()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, status, err := h.generate(req)
	if err != nil {
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *BoardHandler) defaultRequest() BoardRequest {
	return BoardRequest{
		Width:      h.cfg.Board.Width,
		Height:     h.cfg.Board.Height,
		Seed:       h.cfg.Board.Seed,
		Generation: h.cfg.Generation,
	}
}

// generate builds the board for a request and picks the status code for
// any failure
func (h *BoardHandler) generate(req BoardRequest) (*BoardResponse, int, error) {
	if req.Width > h.cfg.Server.MaxWidth || req.Height > h.cfg.Server.MaxHeight {
		return nil, http.StatusUnprocessableEntity,
			fmt.Errorf("board %dx%d exceeds limit %dx%d", req.Width, req.Height, h.cfg.Server.MaxWidth, h.cfg.Server.MaxHeight)
	}

	rng := board.NewRandSource(req.Seed)
	matrix, err := board.GenerateMatrix(req.Width, req.Height, req.Generation, rng)
	if err != nil {
		if errors.Is(err, board.ErrInvalidDimensions) ||
			errors.Is(err, board.ErrInvalidConfig) ||
			errors.Is(err, board.ErrRowOverflow) {
			return nil, http.StatusUnprocessableEntity, err
		}
		log.Printf("Error generating board: %v", err)
		return nil, http.StatusInternalServerError, err
	}

	return &BoardResponse{
		Width:  req.Width,
		Height: req.Height,
		Seed:   rng.Seed(),
		Rows:   matrix,
		Counts: matrix.Counts(),
	}, http.StatusOK, nil
}

// intParam parses an optional integer query parameter
func intParam(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
