// Package server exposes the textrank operations over HTTP.
//
// Routes:
//
//	POST /v1/rank      every vertex with its score
//	POST /v1/keywords  the top keywords
//	POST /v1/phrases   the top key phrases
//	POST /v1/graph     the scored graph as JSON, or DOT with ?format=dot
//	GET  /healthz
//	GET  /metrics      Prometheus exposition
//
// Request bodies are JSON: {"text": "...", "top": 5, "window": 2,
// "pos": ["NN", "JJ"], "damping": 0.85, "weighting": "count"}. Only text is
// required; other fields override the server's extraction defaults.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/az-ai-labs/textrank/internal/config"
	"github.com/az-ai-labs/textrank/textrank"
)

// Server serves extraction requests with a fixed base configuration.
type Server struct {
	base    textrank.Config
	opts    config.Server
	log     *zap.Logger
	metrics *Metrics
}

// New returns a Server that extracts with cfg.Extraction. A nil log
// disables logging.
func New(cfg *config.File, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	base := cfg.Extraction
	base.Logger = log.Named("textrank")
	return &Server{
		base:    base,
		opts:    cfg.Server,
		log:     log,
		metrics: NewMetrics(),
	}
}

// Handler returns the router with all middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(s.metrics.middleware)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/rank", s.handleRank)
		r.Post("/keywords", s.handleKeywords)
		r.Post("/phrases", s.handlePhrases)
		r.Post("/graph", s.handleGraph)
	})
	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// request is the body of every /v1 route.
type request struct {
	Text      string   `json:"text" validate:"required"`
	Top       int      `json:"top" validate:"gte=0"`
	Window    *int     `json:"window,omitempty"`
	POS       []string `json:"pos,omitempty"`
	Damping   *float64 `json:"damping,omitempty"`
	Weighting string   `json:"weighting,omitempty"`
}

// overlay applies the request's parameters on base. Out-of-range values
// are left for textrank's own validation.
func (req *request) overlay(base textrank.Config) textrank.Config {
	cfg := base
	if req.Window != nil {
		cfg.Window = *req.Window
	}
	if req.POS != nil {
		cfg.POSTags = req.POS
	}
	if req.Damping != nil {
		cfg.Damping = *req.Damping
	}
	if req.Weighting != "" {
		cfg.Weighting = textrank.Weighting(req.Weighting)
	}
	return cfg
}

type rankResponse struct {
	Keywords   []textrank.RankedKeyword `json:"keywords"`
	Iterations int                      `json:"iterations"`
	Converged  bool                     `json:"converged"`
}

type phrasesResponse struct {
	Phrases    []textrank.RankedPhrase `json:"phrases"`
	Iterations int                     `json:"iterations"`
	Converged  bool                    `json:"converged"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	if a, ok := s.analyze(w, r); ok {
		writeJSON(w, http.StatusOK, rankResponse{
			Keywords:   a.Ranking,
			Iterations: a.Iterations,
			Converged:  a.Converged,
		})
	}
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	req, a, ok := s.analyzeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{
		Keywords:   a.Keywords(req.Top),
		Iterations: a.Iterations,
		Converged:  a.Converged,
	})
}

func (s *Server) handlePhrases(w http.ResponseWriter, r *http.Request) {
	req, a, ok := s.analyzeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, phrasesResponse{
		Phrases:    a.Phrases(req.Top),
		Iterations: a.Iterations,
		Converged:  a.Converged,
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	a, ok := s.analyze(w, r)
	if !ok {
		return
	}
	x := a.Export()

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, x)
	case "dot":
		b, err := x.DOT("textrank")
		if err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown format %q", format)})
	}
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*textrank.Analysis, bool) {
	_, a, ok := s.analyzeRequest(w, r)
	return a, ok
}

// analyzeRequest decodes and validates the body, then runs the analysis.
// On failure it has already written the error response.
func (s *Server) analyzeRequest(w http.ResponseWriter, r *http.Request) (*request, *textrank.Analysis, bool) {
	var req request
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return nil, nil, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return nil, nil, false
	}
	if err := validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: describeRequestError(err)})
		return nil, nil, false
	}

	a, err := textrank.Analyze(req.Text, req.overlay(s.base))
	if err != nil {
		s.fail(w, r, err)
		return nil, nil, false
	}
	s.metrics.observe(len(req.Text), a.Graph.Len(), a.Iterations, a.Converged)
	return &req, a, true
}

// fail maps textrank errors to status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, textrank.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, textrank.ErrConfiguration):
		status = http.StatusUnprocessableEntity
	default:
		s.log.Error("extraction failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var validate = validator.New()

func describeRequestError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "text is required"
		case "gte":
			return fmt.Sprintf("top must be at least %s", fe.Param())
		}
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())))
		})
	}
}
