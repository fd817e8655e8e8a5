package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ats"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/cache"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/config"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/logging"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/server/middleware"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/server/ratelimit"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// HistoryStore persists and lists scores. *db.DB implements it.
type HistoryStore interface {
	SaveScore(ctx context.Context, input db.ScoreInput) (*db.ScoreRecord, error)
	ListScores(ctx context.Context, resumeID string, limit int) ([]db.ScoreRecord, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer      *http.Server
	logger          *logrus.Logger
	history         HistoryStore
	cache           cache.Store
	tokens          middleware.TokenValidator
	rateLimiter     *ratelimit.Limiter
	verbs           ats.VerbPicker
	now             func() time.Time
	shutdownTimeout time.Duration
	closers         []func()
}

// Config holds server configuration. Every dependency except Port is optional: without
// History the history endpoint answers 503 and scores are not saved, without Cache every
// request is scored, and without Tokens all callers are free tier.
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Logger     *logrus.Logger
	History    HistoryStore
	Cache      cache.Store
	Tokens     middleware.TokenValidator
	RateLimit  *ratelimit.Config
	VerbPicker ats.VerbPicker
	Now        func() time.Time
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		logger:          cfg.Logger,
		history:         cfg.History,
		cache:           cfg.Cache,
		tokens:          cfg.Tokens,
		verbs:           cfg.VerbPicker,
		now:             cfg.Now,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.verbs == nil {
		s.verbs = ats.HashVerbPicker{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = 30 * time.Second
	}

	rl := cfg.RateLimit
	if rl == nil {
		rl = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rl)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  durationOr(cfg.ReadTimeout, 30*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 60*time.Second),
	}
	return s
}

// Open connects the optional backends named in appCfg and returns a server using them.
// A missing DATABASE_URL, REDIS_URL or JWT_SECRET disables the matching feature; a
// configured backend that cannot be reached is an error.
func Open(ctx context.Context, appCfg *config.Config, logger *logrus.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := Config{
		Port:            appCfg.Server.Port,
		ReadTimeout:     appCfg.Server.ReadTimeout,
		WriteTimeout:    appCfg.Server.WriteTimeout,
		IdleTimeout:     appCfg.Server.IdleTimeout,
		ShutdownTimeout: appCfg.Server.ShutdownTimeout,
		Logger:          logger,
	}

	verbs, err := ats.NewVerbPicker(appCfg.Scoring.VerbStrategy)
	if err != nil {
		return nil, err
	}
	cfg.VerbPicker = verbs

	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if appCfg.Database.URL != "" {
		database, err := db.Connect(ctx, appCfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		cfg.History = database
		closers = append(closers, database.Close)
		logger.Info("score history enabled")
	} else {
		logger.Warn("DATABASE_URL not set; score history disabled")
	}

	if appCfg.Redis.URL != "" {
		store, err := cache.NewRedisStore(appCfg.Redis.URL, appCfg.Redis.TTL)
		if err != nil {
			closeAll()
			return nil, err
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			closeAll()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cfg.Cache = store
		closers = append(closers, func() { _ = store.Close() })
		logger.WithField("ttl", store.TTL().String()).Info("score cache enabled")
	}

	jwtConfig, err := config.NewJWTConfig()
	switch {
	case err == nil:
		cfg.Tokens = NewJWTService(jwtConfig).AsTokenValidator()
	case errors.Is(err, config.ErrJWTSecretMissing):
		logger.Warn("JWT_SECRET not set; all callers are scored in free mode")
	default:
		closeAll()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := New(cfg)
	s.closers = closers
	return s, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/ats/score", s.handleScore)
	mux.HandleFunc("POST /v1/ats/autofix", s.handleAutoFix)
	mux.HandleFunc("POST /v1/ats/analysis", s.handleAnalysis)
	mux.HandleFunc("GET /v1/resumes/{resume_id}/scores", s.handleListScores)

	auth := middleware.OptionalAuth(s.tokens, func(w http.ResponseWriter, r *http.Request, err error) {
		s.logger.WithError(err).WithField("request_id", requestID(r)).Debug("rejected bearer token")
		s.writeError(w, &ErrUnauthorized{Reason: "invalid or expired token"})
	})

	return s.withRequestID(s.withRateLimit(s.withLogging(s.withCORS(auth(mux)))))
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases the rate limiter and any backends opened by Open.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	for _, c := range s.closers {
		c()
	}
	s.closers = nil
}

type requestIDKey struct{}

// withRequestID assigns a request ID, honouring one supplied by the caller.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		entry := s.logger.WithFields(logrus.Fields{
			"request_id":  requestID(r),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_addr": r.RemoteAddr,
		})
		if rec.status >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Info("request completed")
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"history": s.history != nil,
		"cache":   s.cache != nil,
		"auth":    s.tokens != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status with HTTPStatus. Internal errors are logged and hidden.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("internal error")
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// clientID extracts the client identifier (the remote IP) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Round(time.Second).Seconds())
		seconds = max(seconds, 1)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": requestID(r),
		"client":     clientID(r),
		"path":       r.URL.Path,
		"limit":      info.Limit,
	}).Warn("rate limit exceeded")

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
