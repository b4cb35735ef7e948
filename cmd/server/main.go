// Package main is the entry point for the NFT collection dashboard
// backend: it serves search, collection view-model and leaderboard data
// aggregated from the upstream statistics API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourorg/nft-collection-dashboard/internal/config"
	"github.com/yourorg/nft-collection-dashboard/internal/fetch"
	"github.com/yourorg/nft-collection-dashboard/internal/model"
	"github.com/yourorg/nft-collection-dashboard/internal/orchestrate"
	"github.com/yourorg/nft-collection-dashboard/internal/otel"
	"github.com/yourorg/nft-collection-dashboard/internal/rank"
	"github.com/yourorg/nft-collection-dashboard/internal/shape"
)

// startTime records when the service was initialized for uptime reporting
var startTime = time.Now()

const version = "1.0.0"

// ServerConfig holds the configuration for the dashboard server
type ServerConfig struct {
	// HTTP port to listen on
	Port string

	// Request timeout for upstream aggregate fetches
	Timeout time.Duration

	// Whether to enable Prometheus metrics
	EnableMetrics bool

	// Whether to rate limit the API routes
	EnableRateLimit bool
}

// Server represents the dashboard server instance
type Server struct {
	config ServerConfig

	client       *fetch.Client
	orchestrator *orchestrate.Orchestrator
	board        *rank.Fetcher

	server    *http.Server
	metrics   *serverMetrics
	rateLimit *rate.Limiter
}

// serverMetrics holds Prometheus metrics for the server
type serverMetrics struct {
	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	supersededBuilds prometheus.Counter
	boardEntries     prometheus.Gauge
}

// registerMetrics sets up Prometheus metrics collection
func registerMetrics() *serverMetrics {
	m := &serverMetrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of API requests processed",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		upstreamErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_upstream_errors_total",
				Help: "Total number of upstream API errors",
			},
			[]string{"endpoint"},
		),
		supersededBuilds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_superseded_builds_total",
				Help: "View-model builds discarded because a newer request took over",
			},
		),
		boardEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_leaderboard_entries",
				Help: "Number of entries in the last served leaderboard",
			},
		),
	}

	prometheus.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.upstreamErrors,
		m.supersededBuilds,
		m.boardEntries,
	)

	return m
}

// main is the entry point for the application
func main() {
	setupLogging()

	cfg := config.Load()
	if cfg.APIKey == "" {
		logrus.Warn("API_KEY not set; upstream requests will be rejected")
	}

	shutdownTracing := otel.InitTracer(cfg.OtelEndpoint)
	defer shutdownTracing()

	client := fetch.NewClient(cfg)
	server := NewServer(loadServerConfig(cfg), client,
		orchestrate.New(client),
		rank.NewFetcher(client, cfg.BoardFetchLimit, cfg.BoardTopN),
		cfg,
	)
	server.Start()
}

// setupLogging configures the logging for the application
func setupLogging() {
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	logLevel := strings.ToLower(os.Getenv("LOG_LEVEL"))

	switch logFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch logLevel {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.Info("Logging configured")
}

// loadServerConfig loads server configuration from environment variables
func loadServerConfig(cfg config.Config) ServerConfig {
	return ServerConfig{
		Port:            cfg.Port,
		Timeout:         cfg.RequestTimeout,
		EnableMetrics:   getEnvBool("ENABLE_METRICS", true),
		EnableRateLimit: getEnvBool("ENABLE_RATE_LIMIT", true),
	}
}

// NewServer creates a new server instance
func NewServer(serverCfg ServerConfig, client *fetch.Client, orchestrator *orchestrate.Orchestrator, board *rank.Fetcher, cfg config.Config) *Server {
	s := &Server{
		config:       serverCfg,
		client:       client,
		orchestrator: orchestrator,
		board:        board,
	}

	if serverCfg.EnableMetrics {
		s.metrics = registerMetrics()
	}
	if serverCfg.EnableRateLimit {
		s.rateLimit = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		logrus.Infof("Rate limiting initialized: %v req/s, burst: %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	logrus.WithFields(logrus.Fields{
		"port":       serverCfg.Port,
		"timeout":    serverCfg.Timeout,
		"metrics":    serverCfg.EnableMetrics,
		"rate_limit": serverCfg.EnableRateLimit,
	}).Info("Server initialized")

	return s
}

// Start begins the HTTP server and sets up graceful shutdown
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", s.withAPIRequest("search", s.handleSearch))
	mux.HandleFunc("/api/collection/", s.withAPIRequest("collection", s.handleCollection))
	mux.HandleFunc("/api/leaderboard", s.withAPIRequest("leaderboard", s.handleLeaderboard))
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/metrics", s.handleMetrics)

	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.Infof("Server starting on port %s", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Error starting server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server shutdown failed: %v", err)
	}

	logrus.Info("Server stopped")
}

// withAPIRequest wraps an API handler with method checks, rate limiting,
// request identifiers and metrics.
func (s *Server) withAPIRequest(route string, handler func(http.ResponseWriter, *http.Request) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if s.rateLimit != nil && !s.rateLimit.Allow() {
			s.errorResponse(w, route, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		status, err := handler(w, r)
		if err != nil {
			otel.RecordError(r.Context(), err)
			s.countUpstreamError(err)
			logrus.WithFields(logrus.Fields{
				"route":      route,
				"request_id": requestID,
			}).Warnf("Request failed: %v", err)
			s.errorResponse(w, route, status, err.Error())
			return
		}

		if s.metrics != nil {
			s.metrics.requestCounter.WithLabelValues(route, "success").Inc()
			s.metrics.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		}
	}
}

// handleSearch serves collection name search results.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) (int, error) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		return http.StatusBadRequest, errors.New("missing query parameter q")
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.Timeout)
	defer cancel()

	results, err := s.client.Search(ctx, query)
	if err != nil {
		return upstreamStatus(err), err
	}
	writeJSON(w, results)
	return http.StatusOK, nil
}

// handleCollection serves the composite view-model for one collection.
func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) (int, error) {
	collectionID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/collection/"), "/")
	if collectionID == "" || strings.Contains(collectionID, "/") {
		return http.StatusBadRequest, errors.New("missing or malformed collection id")
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.Timeout)
	defer cancel()

	vm, err := s.orchestrator.Build(ctx, collectionID)
	if err != nil {
		if errors.Is(err, orchestrate.ErrSuperseded) {
			if s.metrics != nil {
				s.metrics.supersededBuilds.Inc()
			}
			return http.StatusConflict, err
		}
		return upstreamStatus(err), err
	}
	writeJSON(w, vm)
	return http.StatusOK, nil
}

// handleLeaderboard serves the four-category top-collections board.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) (int, error) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.Timeout)
	defer cancel()

	board, err := s.board.Fetch(ctx)
	if err != nil {
		return upstreamStatus(err), err
	}

	if s.metrics != nil {
		s.metrics.boardEntries.Set(float64(
			len(board.FloorPrice) + len(board.Volume) + len(board.Holders) + len(board.WashTrading),
		))
	}
	writeJSON(w, board)
	return http.StatusOK, nil
}

// handleHealth is a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "OK",
		"version":   version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleStatus provides detailed service status information
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "operational",
		"uptime":  time.Since(startTime).String(),
		"version": version,
		"configuration": map[string]interface{}{
			"timeout":    s.config.Timeout.String(),
			"metrics":    s.config.EnableMetrics,
			"rate_limit": s.config.EnableRateLimit,
		},
	}

	if vm, ok := s.orchestrator.Latest(); ok {
		status["last_collection"] = vm.CollectionID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// handleMetrics exposes Prometheus metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !s.config.EnableMetrics {
		http.Error(w, "Metrics disabled", http.StatusServiceUnavailable)
		return
	}
	promhttp.Handler().ServeHTTP(w, r)
}

// errorResponse returns the single human-readable failure message for an
// aggregate operation.
func (s *Server) errorResponse(w http.ResponseWriter, route string, statusCode int, errorMsg string) {
	if s.metrics != nil {
		s.metrics.requestCounter.WithLabelValues(route, "error").Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "error",
		"error":  errorMsg,
	})
}

// countUpstreamError tracks upstream failures by endpoint when the error
// chain carries one.
func (s *Server) countUpstreamError(err error) {
	if s.metrics == nil {
		return
	}
	var remoteErr *fetch.RemoteError
	if errors.As(err, &remoteErr) {
		s.metrics.upstreamErrors.WithLabelValues(remoteErr.Endpoint).Inc()
	}
}

// upstreamStatus maps an aggregate failure onto the response status.
func upstreamStatus(err error) int {
	var remoteErr *fetch.RemoteError
	if errors.As(err, &remoteErr) {
		if remoteErr.StatusCode == http.StatusTooManyRequests {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	}
	var shapeErr *shape.ShapeError
	if errors.As(err, &shapeErr) {
		return http.StatusBadGateway
	}
	var aggErr *model.AggregateError
	if errors.As(err, &aggErr) {
		return http.StatusBadGateway
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeJSON encodes a successful payload.
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
