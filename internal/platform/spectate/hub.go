// Package spectate streams game snapshots to remote renderers over WebSocket.
// Every session publishes into its own channel; clients of a channel receive
// only that session's JSON frames and never send input.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tapball/internal/logging"
)

const (
	writeWait   = 2 * time.Second
	sendBuffer  = 4
	DefaultRate = 15 // Frames per second sent to spectators of one channel
	basePath    = "/ws"
)

// Hub routes spectators to per-session channels.
// The unnamed channel at /ws carries local play; named channels live at /ws/<id>.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	interval time.Duration
	main     *Channel

	mu       sync.Mutex
	channels map[string]*Channel
	closed   bool
}

// Channel is the stream of one session, with its own latest frame and rate limit.
// Publish is safe to call from the game loop; slow clients drop frames instead of blocking it.
type Channel struct {
	id  string
	hub *Hub

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	sentAt  time.Time
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub whose channels forward at most rate frames per second.
// A rate of 0 or less forwards every published frame.
func NewHub(rate int, logger *log.Logger) *Hub {
	if logger == nil {
		logger = logging.Discard()
	}
	var interval time.Duration
	if rate > 0 {
		interval = time.Second / time.Duration(rate)
	}
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Spectators are read-only
			},
		},
		logger:   logger,
		interval: interval,
		channels: make(map[string]*Channel),
	}
	h.main = h.newChannel("")
	return h
}

func (h *Hub) newChannel(id string) *Channel {
	return &Channel{id: id, hub: h, clients: make(map[*client]struct{})}
}

// Publish sends v on the unnamed channel.
func (h *Hub) Publish(v any) {
	h.main.Publish(v)
}

// Open returns the channel for a session, creating it on first use.
func (h *Hub) Open(id string) *Channel {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.channels[id]; ok {
		return c
	}
	c := h.newChannel(id)
	if h.closed {
		c.closed = true
		return c
	}
	h.channels[id] = c
	h.logger.Debug("spectator channel opened", "path", c.Path())
	return c
}

func (h *Hub) lookup(id string) (*Channel, bool) {
	if id == "" {
		return h.main, true
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.channels[id]
	return c, ok
}

func (h *Hub) forget(c *Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[c.id] == c {
		delete(h.channels, c.id)
	}
}

// Sessions returns the ids of the open named channels, sorted.
func (h *Hub) Sessions() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.channels))
	for id := range h.channels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clients returns the number of spectators across all channels.
func (h *Hub) Clients() int {
	n := h.main.Clients()
	h.mu.Lock()
	chans := make([]*Channel, 0, len(h.channels))
	for _, c := range h.channels {
		chans = append(chans, c)
	}
	h.mu.Unlock()
	for _, c := range chans {
		n += c.Clients()
	}
	return n
}

// ServeHTTP upgrades requests for /ws and /ws/<id> and streams that channel's frames.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, basePath), "/")
	c, ok := h.lookup(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	c.serve(conn, r.RemoteAddr)
}

// Close disconnects every spectator and stops accepting new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	chans := []*Channel{h.main}
	for _, c := range h.channels {
		chans = append(chans, c)
	}
	h.channels = make(map[string]*Channel)
	h.mu.Unlock()

	for _, c := range chans {
		c.shut()
	}
}

// ID returns the session id, empty for the unnamed channel.
func (c *Channel) ID() string {
	return c.id
}

// Path returns the URL path spectators connect to.
func (c *Channel) Path() string {
	if c.id == "" {
		return basePath
	}
	return basePath + "/" + c.id
}

// Publish encodes v as JSON and queues it for every client of the channel.
func (c *Channel) Publish(v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	now := time.Now()
	if c.hub.interval > 0 && now.Sub(c.sentAt) < c.hub.interval {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		c.hub.logger.Warn("could not encode snapshot", "channel", c.Path(), "error", err)
		return
	}
	c.last = data
	c.sentAt = now

	for cl := range c.clients {
		queue(cl, data)
	}
}

// Clients returns the number of spectators on this channel.
func (c *Channel) Clients() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.clients)
}

// Close ends the session's stream and disconnects its spectators.
func (c *Channel) Close() {
	c.hub.forget(c)
	c.shut()
}

func (c *Channel) shut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for cl := range c.clients {
		delete(c.clients, cl)
		close(cl.send)
	}
}

// queue hands data to the client, dropping its oldest frame when it lags.
func queue(c *client, data []byte) {
	select {
	case c.send <- data:
		return
	default:
	}
	select {
	case <-c.send:
	default:
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *Channel) serve(conn *websocket.Conn, remote string) {
	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !c.add(cl) {
		//nolint:errcheck // Closing anyway
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"))
		conn.Close()
		return
	}
	logger := c.hub.logger.With("channel", c.Path(), "remote", remote)
	logger.Info("spectator connected", "clients", c.Clients())

	done := make(chan struct{})
	go readLoop(cl, done)
	writeLoop(cl, done, logger)

	c.remove(cl)
	conn.Close()
	logger.Info("spectator disconnected", "clients", c.Clients())
}

func (c *Channel) add(cl *client) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.clients[cl] = struct{}{}
	// Late joiners get the latest frame right away
	if c.last != nil {
		queue(cl, c.last)
	}
	return true
}

func (c *Channel) remove(cl *client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.clients[cl]; ok {
		delete(c.clients, cl)
		close(cl.send)
	}
}

// readLoop discards client messages and reports when the connection drops.
func readLoop(cl *client, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeLoop(cl *client, done <-chan struct{}, logger *log.Logger) {
	for {
		select {
		case <-done:
			return
		case data, ok := <-cl.send:
			if !ok {
				//nolint:errcheck // Best-effort close frame
				cl.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			//nolint:errcheck // A failed deadline surfaces on the write
			cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Debug("write failed", "error", err)
				return
			}
		}
	}
}

// Serve listens on addr and serves the hub until ctx is cancelled.
// The index page lists the open session channels.
func Serve(ctx context.Context, addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle(basePath, hub)
	mux.Handle(basePath+"/", hub)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		var b strings.Builder
		b.WriteString("Tap the Ball spectator stream\n\n")
		fmt.Fprintf(&b, "  %s  local play\n", basePath)
		for _, id := range hub.Sessions() {
			fmt.Fprintf(&b, "  %s/%s\n", basePath, id)
		}
		//nolint:errcheck // Best-effort response
		w.Write([]byte(b.String()))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		hub.logger.Info("spectator stream listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
