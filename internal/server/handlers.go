package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JakeOShannessy/minotaur/pkg/cache"
	"github.com/JakeOShannessy/minotaur/pkg/maze"
	"github.com/JakeOShannessy/minotaur/pkg/pipeline"
)

// cacheTTL bounds how long rendered artifacts live in the cache. Entries
// never go stale, the TTL just keeps an idle deployment from accumulating
// them forever.
const cacheTTL = 24 * time.Hour

// mazeResponse is the JSON body for format=json requests. Cells holds the
// raw passage flags in row-major order.
type mazeResponse struct {
	ID        string  `json:"id"`
	Algorithm string  `json:"algorithm"`
	Seed      uint64  `json:"seed"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Cells     []uint8 `json:"cells"`
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": maze.Algorithms()})
}

// handleMaze generates a maze from query parameters.
//
// Query parameters:
//
//	algorithm  generation algorithm (default AldousBroder)
//	width      columns, >= 1 (default 5)
//	height     rows, >= 1 (default 5)
//	seed       RNG seed; omitted means a fresh one per request
//	format     json (default), text, png or svg
func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	req, err := parseMazeRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.opts.Width*req.opts.Height > s.maxCells {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("maze too large: %dx%d exceeds %d cells",
				req.opts.Width, req.opts.Height, s.maxCells))
		return
	}

	// Seeded requests are deterministic, so the rendered artifact can be
	// served from cache. Unseeded requests produce a new maze each time.
	var key string
	if req.opts.Seed != nil && req.format != pipeline.FormatJSON {
		key = cache.Key("maze", req.opts.Algorithm, req.opts.Width,
			req.opts.Height, *req.opts.Seed, req.format)
		if data, ok, err := s.cache.Get(r.Context(), key); err != nil {
			s.logger.Warn("cache get failed", "err", err)
		} else if ok {
			writeArtifact(w, req.format, data)
			return
		}
	}

	result, err := s.runner.Execute(r.Context(), req.opts)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimension) || errors.Is(err, maze.ErrUnknownAlgorithm) {
			writeError(w, http.StatusBadRequest, err)
		} else {
			s.logger.Error("pipeline failed", "err", err)
			writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		}
		return
	}

	if req.format == pipeline.FormatJSON {
		cells := result.Grid.Cells()
		raw := make([]uint8, len(cells))
		for i, c := range cells {
			raw[i] = uint8(c)
		}
		writeJSON(w, http.StatusOK, mazeResponse{
			ID:        uuid.NewString(),
			Algorithm: result.Stats.Algorithm,
			Seed:      result.Seed,
			Width:     result.Grid.Width(),
			Height:    result.Grid.Height(),
			Cells:     raw,
		})
		return
	}

	data := result.Artifacts[req.format]
	if key != "" {
		if err := s.cache.Set(r.Context(), key, data, cacheTTL); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		}
	}
	writeArtifact(w, req.format, data)
}

// mazeRequest is a parsed and partially validated maze request.
type mazeRequest struct {
	opts   pipeline.Options
	format string
}

func parseMazeRequest(r *http.Request) (mazeRequest, error) {
	q := r.URL.Query()
	req := mazeRequest{format: pipeline.FormatJSON}

	req.opts.Algorithm = q.Get("algorithm")

	var err error
	if req.opts.Width, err = intParam(q.Get("width"), pipeline.DefaultWidth); err != nil {
		return req, fmt.Errorf("width: %w", err)
	}
	if req.opts.Height, err = intParam(q.Get("height"), pipeline.DefaultHeight); err != nil {
		return req, fmt.Errorf("height: %w", err)
	}

	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("seed: %w", err)
		}
		req.opts.Seed = &seed
	}

	if f := q.Get("format"); f != "" {
		switch f {
		case pipeline.FormatJSON, pipeline.FormatText, pipeline.FormatPNG, pipeline.FormatSVG:
			req.format = f
		default:
			return req, fmt.Errorf("invalid format: %q (must be json, text, png or svg)", f)
		}
	}
	if req.format != pipeline.FormatJSON {
		req.opts.Formats = []string{req.format}
	} else {
		// The JSON response is built from the grid directly; render the
		// cheapest artifact to keep pipeline validation uniform.
		req.opts.Formats = []string{pipeline.FormatText}
	}
	return req, nil
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: got %d", maze.ErrInvalidDimension, v)
	}
	return v, nil
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case pipeline.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	case pipeline.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
