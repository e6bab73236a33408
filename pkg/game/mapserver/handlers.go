package mapserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/mapfile"
)

// point is a position on the wire: [x, y]
type point [2]int

func toPoint(p world.Position) point {
	return point{p.X, p.Y}
}

type listResponse struct {
	Maps []string `json:"maps"`
}

type createResponse struct {
	Name string `json:"name"`
}

type pathResponse struct {
	Algo  pathfind.Algorithm `json:"algo"`
	From  point              `json:"from"`
	To    *point             `json:"to"`
	Steps int                `json:"steps"`
	Path  []point            `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encoding response")
	}
}

func respondErr(w http.ResponseWriter, status int, err error) {
	respond(w, status, errorResponse{Error: err.Error()})
}

// loadStatus maps a store error to its HTTP status
func loadStatus(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, mapfile.ErrMalformed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// mapName accepts names with or without the .json extension
func mapName(r *http.Request) string {
	name := way.Param(r.Context(), "name")
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

func (s *Server) handleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := s.store.List()
		if err != nil {
			respondErr(w, http.StatusInternalServerError, err)
			return
		}
		respond(w, http.StatusOK, listResponse{Maps: names})
	}
}

func (s *Server) handleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.genMu.Lock()
		grid, report := s.gen.Generate()
		name, err := s.store.Save(grid)
		s.genMu.Unlock()

		switch {
		case errors.Is(err, mapfile.ErrSaturated):
			respondErr(w, http.StatusInsufficientStorage, err)
			return
		case err != nil:
			respondErr(w, http.StatusInternalServerError, err)
			return
		}

		log.WithFields(log.Fields{
			"map":     name,
			"walls":   report.Walls,
			"repairs": report.Repairs,
		}).Info("map created")
		respond(w, http.StatusCreated, createResponse{Name: name})
	}
}

func (s *Server) handleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, mf, err := s.store.Load(mapName(r))
		if err != nil {
			respondErr(w, loadStatus(err), err)
			return
		}
		respond(w, http.StatusOK, mf)
	}
}

// parseEndpoint reads a "x,y" query value; missing values use def
func parseEndpoint(r *http.Request, key string, g *world.Grid, def func() (world.Position, bool)) (world.Position, bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		p, ok := def()
		return p, ok, nil
	}
	p, err := world.ParsePosition(raw)
	if err != nil {
		return world.Position{}, false, fmt.Errorf("%s: %w", key, err)
	}
	if !g.InBounds(p) {
		return world.Position{}, false, fmt.Errorf("%s: %s outside the %dx%d grid", key, p, g.Size(), g.Size())
	}
	return p, true, nil
}

func (s *Server) handlePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grid, _, err := s.store.Load(mapName(r))
		if err != nil {
			respondErr(w, loadStatus(err), err)
			return
		}

		algo, err := pathfind.ParseAlgorithm(r.URL.Query().Get("algo"))
		if err != nil {
			respondErr(w, http.StatusBadRequest, err)
			return
		}

		from, _, err := parseEndpoint(r, "from", grid, grid.Player)
		if err != nil {
			respondErr(w, http.StatusBadRequest, err)
			return
		}
		to, hasTarget, err := parseEndpoint(r, "to", grid, func() (world.Position, bool) {
			return gameplay.NearestTreasure(grid, from)
		})
		if err != nil {
			respondErr(w, http.StatusBadRequest, err)
			return
		}

		resp := pathResponse{Algo: algo, From: toPoint(from), Steps: -1}
		if hasTarget {
			target := toPoint(to)
			resp.To = &target

			path := algo.Find(grid, from, to)
			resp.Steps = path.Steps()
			for _, p := range path {
				resp.Path = append(resp.Path, toPoint(p))
			}
		}
		respond(w, http.StatusOK, resp)
	}
}
