package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/hupe1980/chatmesh/core"
	"github.com/hupe1980/chatmesh/engine"
	"github.com/hupe1980/chatmesh/gate"
	"github.com/hupe1980/chatmesh/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CredentialHeader carries the caller's shared secret.
const CredentialHeader = "X-API-Key"

// Options configures a Server.
type Options struct {
	// Gate admits or rejects every chat request before the engine runs.
	Gate *gate.Gate

	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// Server routes HTTP requests to the engine.
type Server struct {
	engine *engine.Engine
	opts   Options
}

// New creates a Server for the given engine.
func New(e *engine.Engine, optFns ...func(o *Options)) *Server {
	opts := Options{
		Gate:   gate.New(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.Logger = logging.OrNoOp(opts.Logger)
	return &Server{engine: e, opts: opts}
}

// Handler returns the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleClearSession)
	return s.withLogging(withCORS(mux))
}

// chatRequest is the JSON body of POST /chat.
type chatRequest struct {
	Message     string   `json:"message"`
	SessionID   string   `json:"session_id,omitempty"`
	ModelName   string   `json:"model_name,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int64   `json:"max_tokens,omitempty"`
}

// chatResponse is the JSON body of a successful POST /chat.
type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Gate.Admit(r.Header.Get(CredentialHeader)); err != nil {
		s.writeError(w, err)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message must not be empty"})
		return
	}
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 2) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "temperature must be between 0 and 2"})
		return
	}
	if req.MaxTokens != nil && *req.MaxTokens <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_tokens must be positive"})
		return
	}

	resp, err := s.engine.Chat(r.Context(), engine.Request{
		Message:   req.Message,
		SessionID: req.SessionID,
		Overrides: core.GenerationOverrides{
			ModelName:   req.ModelName,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: resp.Reply, SessionID: resp.SessionID})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Gate.Admit(r.Header.Get(CredentialHeader)); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.engine.ClearSession(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes. Configuration errors
// and dispatch failures surface as 500s with a generic body so internals
// never leak to callers.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid API key"})
	case errors.Is(err, core.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
	default:
		s.opts.Logger.Error("request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.opts.Logger.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+CredentialHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe starts the HTTP server on addr and blocks until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.opts.Logger.Info("server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
