package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/scoring"
)

const (
	defaultMaxBodyBytes = 64 << 10
	shutdownTimeout     = 10 * time.Second
)

// Options tune the HTTP surface. A non-positive RequestsPerMinute disables
// rate limiting. TrustedProxies lists addresses or CIDR ranges whose
// X-Forwarded-For header names the client.
type Options struct {
	RequestsPerMinute int
	Burst             int
	MaxBodyBytes      int64
	Version           string
	TrustedProxies    []string
}

// Server exposes the scoring and skill-gap engines over JSON.
type Server struct {
	engine  *scoring.Engine
	logger  *zap.Logger
	opts    Options
	limiter *clientLimiter
	proxies proxyList
	metrics *metrics
	handler http.Handler
}

// New builds a server with its own metrics registry.
func New(engine *scoring.Engine, opts Options, logger *zap.Logger) (*Server, error) {
	if engine == nil {
		return nil, errors.New("scoring engine is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	proxies, err := parseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		engine:  engine,
		logger:  logger,
		opts:    opts,
		proxies: proxies,
		metrics: newMetrics(reg),
	}
	if opts.RequestsPerMinute > 0 {
		s.limiter = newClientLimiter(opts.RequestsPerMinute, opts.Burst)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /v1/assessments", s.limit(http.HandlerFunc(s.handleAssessment)))
	mux.Handle("POST /v1/skill-gap", s.limit(http.HandlerFunc(s.handleSkillGap)))
	mux.HandleFunc("GET /v1/questions", s.handleQuestions)
	mux.HandleFunc("GET /v1/careers", s.handleCareers)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	s.handler = s.instrument(mux)
	return s, nil
}

// Handler returns the root handler, suitable for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.limiter != nil {
		go s.limiter.run(ctx, time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		s.metrics.observe(route, rec.status, elapsed)

		s.logger.Debug("http request",
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed),
		)
	})
}

func (s *Server) limit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := s.proxies.clientKey(r)
		if !s.limiter.allow(key) {
			s.metrics.throttled.Inc()
			s.logger.Info("rate limit exceeded", zap.String("client", key), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
