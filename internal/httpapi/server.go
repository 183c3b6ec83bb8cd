// Package httpapi serves field validation for the operations of one OpenAPI
// document over HTTP.
//
//	GET  /healthz
//	GET  /operations
//	POST /validate/{operationID}
//
// Validation answers 200 with {"valid": true} or 422 with the report payload,
// so form backends can forward the errors object unchanged.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-fieldcheck/pkg/orchestrator"
)

// DefaultMaxBodyBytes bounds request bodies accepted by the validate route.
const DefaultMaxBodyBytes int64 = 1 << 20

// DefaultShutdownTimeout bounds graceful shutdown in Run.
const DefaultShutdownTimeout = 5 * time.Second

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes. Non-positive values are
// ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// Server routes validation requests to precompiled field sets. The endpoint
// map is read-only after New, so handlers need no locking.
type Server struct {
	endpoints       map[string]orchestrator.Endpoint
	logger          *slog.Logger
	maxBody         int64
	shutdownTimeout time.Duration
	router          chi.Router
}

// New builds a Server over endpoints, typically the result of
// Orchestrator.Endpoints.
func New(endpoints map[string]orchestrator.Endpoint, opts ...Option) *Server {
	s := &Server{
		endpoints:       endpoints,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody:         DefaultMaxBodyBytes,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("http server started", slog.String("addr", addr), slog.Int("operations", len(s.endpoints)))

	var runErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = fmt.Errorf("httpapi: shutdown: %w", err)
		}
		if err := <-errCh; runErr == nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return fmt.Errorf("httpapi: serve %s: %w", addr, runErr)
	}
	s.logger.Info("http server stopped", slog.String("addr", addr))
	return nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/operations", s.handleOperations)
	r.Post("/validate/*", s.handleValidate)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// OperationSummary describes one validatable operation.
type OperationSummary struct {
	ID      string   `json:"id"`
	Method  string   `json:"method"`
	Path    string   `json:"path"`
	Summary string   `json:"summary,omitempty"`
	Fields  []string `json:"fields"`
}

// ValidationResponse is the body of every validate answer.
type ValidationResponse struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOperations(w http.ResponseWriter, _ *http.Request) {
	ids := make([]string, 0, len(s.endpoints))
	for id := range s.endpoints {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]OperationSummary, 0, len(ids))
	for _, id := range ids {
		op := s.endpoints[id].Operation
		names := make([]string, 0, len(op.Fields))
		for _, field := range op.Fields {
			names = append(names, field.Name)
		}
		out = append(out, OperationSummary{
			ID:      id,
			Method:  op.Method,
			Path:    op.Path,
			Summary: op.Summary,
			Fields:  names,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "operation id is required")
		return
	}
	endpoint, ok := s.endpoints[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("operation %q not found", id))
		return
	}

	values, status, err := s.decodeBody(w, r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	report, err := endpoint.Set.Validate(values)
	if err != nil {
		s.logger.Error("validate failed", slog.String("operation", id), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "operation spec is malformed")
		return
	}
	if !report.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: report.Payload()})
		return
	}
	writeJSON(w, http.StatusOK, ValidationResponse{Valid: true})
}

// decodeBody reads exactly one JSON object. null, scalars, arrays and
// trailing data are rejected.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, int, error) {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	decoder.UseNumber()

	var values map[string]any
	err := decoder.Decode(&values)
	if err == nil && values == nil {
		err = errNotObject
	}
	if err == nil {
		var extra json.RawMessage
		if trailing := decoder.Decode(&extra); !errors.Is(trailing, io.EOF) {
			err = trailing
			if err == nil {
				err = errNotObject
			}
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, errors.New("request body too large")
		}
		return nil, http.StatusBadRequest, errNotObject
	}
	return values, http.StatusOK, nil
}

var errNotObject = errors.New("request body must be a single JSON object")

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
