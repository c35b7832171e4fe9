// internal/debugsrv/server.go
package debugsrv

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"hexnav/internal/config"

	"go.uber.org/zap"
)

// Server — отладочный HTTP-сервер: /healthz, /metrics, /state, /ws.
type Server struct {
	http *http.Server
	log  *zap.SugaredLogger
	done chan struct{}
}

func New(cfg config.DebugConfig, source SnapshotSource, log *zap.SugaredLogger) *Server {
	done := make(chan struct{})
	router := NewRouter(RouterConfig{
		Source:      source,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		Burst:       cfg.Burst,
	}, done)
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log:  log,
		done: done,
	}
}

// Start открывает сокет синхронно и обслуживает запросы в фоне.
// Ошибка занятого адреса возвращается сразу.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("debugsrv: listen %s: %w", s.http.Addr, err)
	}
	s.log.Infow("debug server listening", "addr", ln.Addr().String())
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorw("debug server stopped", "err", err)
		}
	}()
	return nil
}

// Shutdown закрывает потоки /ws и дожидается завершения запросов
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.done)
	return s.http.Shutdown(ctx)
}
