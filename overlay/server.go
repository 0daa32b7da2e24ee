package overlay

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lxzan/gws"
)

// Server exposes the event stream at /ws and a liveness document at /.
type Server struct {
	hub      *Hub
	token    string
	logger   *slog.Logger
	httpSrv  *http.Server
	upgrader *gws.Upgrader
}

// NewServer wires the hub behind token auth on addr.
func NewServer(addr, token string, hub *Hub, logger *slog.Logger) *Server {
	s := &Server{hub: hub, token: token, logger: logger}
	s.upgrader = gws.NewUpgrader(hub, &gws.ServerOption{
		ParallelEnabled: false,
		Recovery:        gws.Recovery,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", s.handleStatus)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if subtle.ConstantTimeCompare([]byte(r.URL.Query().Get("token")), []byte(s.token)) != 1 {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	socket, err := s.upgrader.Upgrade(w, r)
	if err != nil {
		s.logger.Warn("overlay upgrade failed", "error", err)
		return
	}
	go socket.ReadLoop()
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"service": "padbind-overlay",
		"clients": s.hub.ClientCount(),
	})
}

// Run serves until ctx is canceled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.ListenAndServe()
	}()
	s.logger.Info("overlay listening", "addr", s.httpSrv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}
