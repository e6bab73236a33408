// Package mapserver serves a map directory over HTTP: listing, generating and
// fetching maps, and running path searches on them.
package mapserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/mapfile"
)

// RequestIDHeader carries the id every response is tagged with
const RequestIDHeader = "X-Request-Id"

// Server routes map requests to a store
type Server struct {
	router *way.Router
	store  *mapfile.Store

	// genMu serialises generation; the generator's random source is not
	// safe for concurrent use
	genMu sync.Mutex
	gen   generator.GridGenerator
}

// New creates a server over store that generates new maps with gen
func New(store *mapfile.Store, gen generator.GridGenerator) *Server {
	s := &Server{store: store, gen: gen}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/maps", s.handleList())
	s.router.HandleFunc("POST", "/maps", s.handleCreate())
	s.router.HandleFunc("GET", "/maps/:name", s.handleGet())
	s.router.HandleFunc("GET", "/maps/:name/path", s.handlePath())
}

// statusRecorder remembers the status code written through it
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ServeHTTP tags the request with an id, dispatches it and logs the result
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.New().String()
	}
	w.Header().Set(RequestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.router.ServeHTTP(rec, r)

	entry := log.WithFields(log.Fields{
		"request_id": id,
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     rec.status,
		"duration":   time.Since(start).String(),
	})
	if rec.status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Info("request")
	}
}
