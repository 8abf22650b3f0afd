// Package share serves a read-only live view of the canvas on the local
// network and lets viewers find and follow it.
package share

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	peerBacklog  = 16
)

// Hub fans document snapshots out to every connected viewer. New viewers get
// the latest snapshot first. Viewers cannot send edits; anything they send is
// discarded.
type Hub struct {
	mu       sync.RWMutex
	peers    map[string]*peer
	latest   []byte
	upgrader websocket.Upgrader
	log      *slog.Logger
}

type peer struct {
	id   string
	conn *websocket.Conn
	out  chan []byte
}

// NewHub creates a hub with no viewers.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		peers: make(map[string]*peer),
		upgrader: websocket.Upgrader{
			// viewers are read-only, any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: logger.With("component", "share"),
	}
}

// ServeHTTP upgrades the request to a websocket and streams snapshots to it
// until either side closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	p := &peer{id: uuid.NewString(), conn: conn, out: make(chan []byte, peerBacklog)}

	h.mu.Lock()
	h.peers[p.id] = p
	if h.latest != nil {
		p.out <- h.latest
	}
	count := len(h.peers)
	h.mu.Unlock()

	h.log.Info("viewer connected", "peer", p.id, "remote", r.RemoteAddr, "viewers", count)

	go h.writeLoop(p)
	defer h.remove(p)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Info("viewer disconnected", "peer", p.id, "err", err)
			return
		}
	}
}

func (h *Hub) writeLoop(p *peer) {
	defer p.conn.Close()
	for data := range p.out {
		_ = p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("send failed", "peer", p.id, "err", err)
			h.remove(p)
			p.conn.Close()
		}
	}
}

// Publish records data as the latest snapshot and queues it for every
// viewer. It never blocks; a viewer too far behind is dropped.
func (h *Hub) Publish(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = data
	for _, p := range h.peers {
		select {
		case p.out <- data:
		default:
			h.log.Warn("viewer too slow, dropping", "peer", p.id)
			h.removeLocked(p)
		}
	}
}

// Latest returns the last published snapshot.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.peers {
		h.removeLocked(p)
	}
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(p)
}

func (h *Hub) removeLocked(p *peer) {
	if _, ok := h.peers[p.id]; !ok {
		return
	}
	delete(h.peers, p.id)
	close(p.out)
}
