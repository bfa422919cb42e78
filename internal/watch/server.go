package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 5 * time.Second
	shutdownTimeout = 2 * time.Second
)

// Server exposes a Hub over HTTP.
//
//	GET /status           last state of every machine
//	GET /events           websocket stream of Records
//	GET /dot/{machine}    Graphviz view of one machine
type Server struct {
	hub      *Hub
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer returns a server for hub.
func NewServer(hub *Hub, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	return &Server{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			// the feed is read-only and meant for local tools
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/status", s.handleStatus)
	r.Get("/events", s.handleEvents)
	r.Get("/dot/{machine}", s.handleDOT)

	return r
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("watch server listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("watch server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// websocket connections are hijacked and not closed by Shutdown
		s.hub.Close()

		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.hub.Status()); err != nil {
		s.log.Warn("watch: failed to write status", "error", err)
	}
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "machine")

	dot, ok := s.hub.DOT(name)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown machine %q", name), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("watch: websocket upgrade failed", "error", err)
		return
	}

	c := s.hub.subscribe()
	s.log.Debug("watch: client connected", "client", c.id)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.readLoop(conn)
	}()

	s.writeLoop(conn, c, done)

	s.hub.unsubscribe(c)
	_ = conn.Close()
	s.log.Debug("watch: client disconnected", "client", c.id)
}

// writeLoop forwards records until the hub drops the client or the peer goes away.
func (s *Server) writeLoop(conn *websocket.Conn, c *client, done <-chan struct{}) {
	for {
		select {
		case msg, ok := <-c.ch:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readLoop discards client messages; it returns when the connection closes.
func (s *Server) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("watch: websocket read failed", "error", err)
			}
			return
		}
	}
}
