package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/hashicorp/mdns"
)

// Path is where the hub is mounted.
const Path = "/ws"

// Host serves a Hub over HTTP and optionally advertises it with mDNS.
type Host struct {
	Hub *Hub

	port int
	ln   net.Listener
	srv  *http.Server
	zone *mdns.Server
	log  *slog.Logger
}

// NewHost creates a host for port. Port 0 picks a free port at Start.
func NewHost(port int, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		Hub:  NewHub(logger),
		port: port,
		log:  logger.With("component", "share"),
	}
}

// Start begins listening. A failed advertisement is logged; the host keeps
// serving so viewers can still connect by link.
func (h *Host) Start(advertise bool) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", h.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", h.port, err)
	}
	h.ln = ln
	h.port = ln.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle(Path, h.Hub)
	h.srv = &http.Server{Handler: mux}

	go func() {
		if err := h.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Error("share server stopped", "err", err)
		}
	}()
	h.log.Info("sharing canvas", "port", h.port, "link", h.Link())

	if advertise {
		zone, err := Advertise(h.port)
		if err != nil {
			h.log.Warn("mDNS advertisement unavailable", "err", err)
		} else {
			h.zone = zone
		}
	}
	return nil
}

// Port returns the listening port.
func (h *Host) Port() int { return h.port }

// Link returns the URL viewers on the network should dial.
func (h *Host) Link() string {
	return Link(OutgoingIP(), h.port)
}

// Shutdown stops advertising, disconnects viewers and stops the server.
func (h *Host) Shutdown(ctx context.Context) error {
	if h.zone != nil {
		if err := h.zone.Shutdown(); err != nil {
			h.log.Warn("mDNS shutdown", "err", err)
		}
		h.zone = nil
	}
	h.Hub.Close()
	if h.srv == nil {
		return nil
	}
	return h.srv.Shutdown(ctx)
}
