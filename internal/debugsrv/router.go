// internal/debugsrv/router.go
package debugsrv

import (
	"encoding/json"
	"net/http"
	"path"
	"time"

	"hexnav/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SnapshotSource — откуда сервер берёт состояние сессии.
// Реализация обязана быть безопасной для вызова из любой горутины.
type SnapshotSource interface {
	Snapshot() *app.Snapshot
}

// RouterConfig — зависимости роутера
type RouterConfig struct {
	Source         SnapshotSource
	Log            *zap.SugaredLogger
	CORSOrigins    []string
	RateLimit      float64 // запросов в секунду на весь сервер
	Burst          int
	StreamInterval time.Duration // период рассылки снимков по /ws, 0 = 100ms
}

type handlers struct {
	source   SnapshotSource
	log      *zap.SugaredLogger
	origins  []string
	interval time.Duration
	done     <-chan struct{}
}

// NewRouter собирает роутер. Не запускает горутин и не открывает сокетов,
// поэтому годится для httptest.
func NewRouter(cfg RouterConfig, done <-chan struct{}) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Log))
	r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	interval := cfg.StreamInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	h := &handlers{
		source:   cfg.Source,
		log:      cfg.Log,
		origins:  cfg.CORSOrigins,
		interval: interval,
		done:     done,
	}

	r.Get("/healthz", h.handleHealth)
	r.Get("/state", h.handleState)
	r.Get("/ws", h.handleStream)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) handleState(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	if snap == nil {
		http.Error(w, "session not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		h.log.Warnw("state encode failed", "err", err)
	}
}

// allowedOrigin — пустой Origin (не браузер) разрешён всегда
func (h *handlers) allowedOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	for _, pattern := range h.origins {
		if pattern == "*" || pattern == origin {
			return true
		}
		if ok, _ := path.Match(pattern, origin); ok {
			return true
		}
	}
	return false
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugw("debug request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
