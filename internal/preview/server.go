// Package preview serves the rendered document to a browser over a local
// HTTP server with websocket push. The desktop window is the primary
// surface; the server exists for reading on a second screen and for
// checking how the export looks in a real browser.
package preview

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"mdflex/internal/logger"
)

//go:embed static
var staticFS embed.FS

// RenderFunc produces the full HTML page for the current document.
type RenderFunc func() (title, html string, err error)

// Server pushes the rendered document to connected browsers. Publish is
// called by the application whenever the document changes; the debouncer
// keeps render churn off the keystroke path.
type Server struct {
	addr     string
	render   RenderFunc
	hub      *Hub
	debounce *Debouncer
	srv      *http.Server
	log      logger.Logger

	upgrader websocket.Upgrader
}

func NewServer(port int, render RenderFunc, log logger.Logger) *Server {
	s := &Server{
		addr:   fmt.Sprintf("127.0.0.1:%d", port),
		render: render,
		hub:    NewHub(log),
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.debounce = NewDebouncer(DefaultDebounce, s.publishNow)
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// URL returns the browsable address of the preview.
func (s *Server) URL() string { return "http://" + s.addr }

// Start begins serving. It returns once the listener is bound; serving
// continues in the background until Shutdown.
func (s *Server) Start() error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("preview assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.handleWS)

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("preview listen on %s: %w", s.addr, err)
	}

	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("preview", err, map[string]interface{}{
				"address": s.addr,
			})
		}
	}()

	s.log.Info("preview", "server started", map[string]interface{}{
		"url": s.URL(),
	})
	return nil
}

// Publish schedules a push of the current document to all clients.
func (s *Server) Publish() {
	s.debounce.Trigger()
}

func (s *Server) publishNow() {
	title, page, err := s.render()
	if err != nil {
		s.hub.Broadcast(Message{Title: title, Error: err.Error()})
		return
	}
	s.hub.Broadcast(Message{Title: title, HTML: page})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warning("preview", "websocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	s.hub.Register(conn)

	// Drain reads to detect disconnects; the protocol is push-only.
	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Shutdown stops the server and disconnects all clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.debounce.Stop()
	s.hub.Close()

	if s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("preview shutdown: %w", err)
	}
	return nil
}

// Name identifies the server to the shutdown manager.
func (s *Server) Name() string { return "preview-server" }
