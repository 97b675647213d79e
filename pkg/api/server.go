package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/config"
	"github.com/cuemby/hutch/pkg/href"
	"github.com/cuemby/hutch/pkg/inventory"
	"github.com/cuemby/hutch/pkg/log"
	"github.com/cuemby/hutch/pkg/metrics"
	"github.com/cuemby/hutch/pkg/netview"
	"github.com/cuemby/hutch/pkg/types"
	"github.com/cuemby/hutch/pkg/wire"
)

// Server is the versioned HTTP front over the normalization layer. It
// resolves the API version from the path, dispatches the servers,
// metadata and addresses resources, negotiates the wire format, and
// translates typed failures into responses.
type Server struct {
	store     *inventory.Store
	assembler *netview.Assembler
	cfg       config.Config
	mux       *http.ServeMux
	logger    zerolog.Logger
}

// NewServer creates the API server over the given collaborator store.
func NewServer(store *inventory.Store, cfg config.Config) *Server {
	s := &Server{
		store:     store,
		assembler: netview.NewAssembler(store, cfg.NetviewConfig()),
		cfg:       cfg,
		mux:       http.NewServeMux(),
		logger:    log.WithComponent("api"),
	}

	// Register endpoints
	s.mux.Handle("/metrics", metrics.Handler())
	s.mux.HandleFunc("/healthz", s.healthHandler)
	s.mux.HandleFunc("/", s.route)

	return s
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("API listening")
	return server.ListenAndServe()
}

// statusWriter captures the response status for metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(data)
}

// route resolves the version segment and dispatches to a resource
// handler. The version segment is required on every resource path.
func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	sw := &statusWriter{ResponseWriter: w}

	version := href.ParseVersion(r.URL.Path)
	resource := s.dispatch(sw, r, version)

	metrics.ObserveRequest(resource, version.String(), sw.status, time.Since(started))
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, version types.Version) string {
	stripped, err := href.StripVersion(r.URL.Path)
	if err != nil {
		s.writeError(w, err)
		return "unversioned"
	}
	if version != types.V10 && version != types.V11 {
		s.writeError(w, &apierr.NotFoundError{Kind: "API version", Name: version.String()})
		return "unversioned"
	}

	segments := splitPath(stripped)
	if len(segments) == 0 || segments[0] != "servers" {
		s.writeError(w, &apierr.NotFoundError{Kind: "resource", Name: stripped})
		return "unknown"
	}

	switch {
	case len(segments) == 1:
		s.serveOnly(w, r, http.MethodGet, func() error {
			return s.listServers(w, r, version)
		})
		return "servers"

	case len(segments) == 2:
		id, err := parseInstanceID(segments[1])
		if err != nil {
			s.writeError(w, err)
			return "servers"
		}
		s.serveOnly(w, r, http.MethodGet, func() error {
			return s.showServer(w, r, version, id)
		})
		return "servers"

	case segments[2] == "ips":
		id, err := parseInstanceID(segments[1])
		if err != nil {
			s.writeError(w, err)
			return "ips"
		}
		s.serveAddresses(w, r, version, id, segments[3:])
		return "ips"

	case segments[2] == "metadata":
		id, err := parseInstanceID(segments[1])
		if err != nil {
			s.writeError(w, err)
			return "metadata"
		}
		s.serveMetadata(w, r, version, id, segments[3:])
		return "metadata"

	default:
		s.writeError(w, &apierr.NotFoundError{Kind: "resource", Name: segments[2]})
		return "unknown"
	}
}

// serveOnly runs handler for the one allowed method and rejects the rest.
func (s *Server) serveOnly(w http.ResponseWriter, r *http.Request, method string, handler func() error) {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := handler(); err != nil {
		s.writeError(w, err)
	}
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func parseInstanceID(segment string) (int, error) {
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, &apierr.NotFoundError{Kind: "instance", Name: segment}
	}
	return id, nil
}

// wantsXML reports whether the client negotiated the XML wire format.
func wantsXML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/xml")
}

// bodyIsXML reports whether the request body is the XML wire format.
func bodyIsXML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/xml")
}

func writeJSON(w http.ResponseWriter, status int, doc any) error {
	data, err := wire.SerializeJSON(doc)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	return nil
}

func writeXML(w http.ResponseWriter, status int, doc string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(doc))
}

// writeError translates a typed failure into a response. The error body
// is always JSON; transports that need XML faults can layer that on.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := apierr.HTTPStatus(err)
	for name, value := range apierr.Headers(err) {
		w.Header().Set(name, value)
	}

	var invalid *apierr.InvalidParameterError
	if errors.As(err, &invalid) {
		metrics.PaginationRejects.WithLabelValues(invalid.Param).Inc()
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Msg("request failed")
	} else {
		s.logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": err.Error(),
		},
	})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
