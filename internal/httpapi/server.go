// Package httpapi is the daemon's HTTP surface: the login validation gate,
// the websocket endpoint and prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lgrossi/banter/internal/config"
	"github.com/lgrossi/banter/internal/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server manages the HTTP listener lifecycle.
type Server struct {
	httpSrv *http.Server
	logger  *zap.Logger
}

type loginRequest struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

// New builds the server and its routes.
func New(cfg *config.Config, h *hub.Hub, reg *prometheus.Registry, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", handleLogin(logger))
	mux.HandleFunc("/ws", h.ServeWS)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		httpSrv: &http.Server{Addr: cfg.ListenAddr, Handler: mux},
		logger:  logger,
	}
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start begins serving. Blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("http server starting", zap.String("addr", s.httpSrv.Addr))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the listener down gracefully.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("http server stopping")
	_ = s.httpSrv.Shutdown(ctx)
}

// handleLogin is a pure validation gate: a non-empty username gets
// {"success":true}, anything else a bare 400. No token or session is
// issued; the websocket join carries the name again.
func handleLogin(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		logger.Info("login accepted", zap.String("name", req.Username))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{Success: true})
	}
}
