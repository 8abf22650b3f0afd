package share

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"

	"MyLocalPaint/internal/store"
)

// Viewer follows a shared canvas.
type Viewer struct {
	// OnDocument is called with every snapshot received, in order.
	OnDocument func(store.Document)

	log *slog.Logger
}

// NewViewer creates a viewer that delivers snapshots to onDocument.
func NewViewer(onDocument func(store.Document), logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{OnDocument: onDocument, log: logger.With("component", "viewer")}
}

// Run dials link and delivers snapshots until ctx is done or the host goes
// away. Snapshots that fail to decode are logged and skipped.
func (v *Viewer) Run(ctx context.Context, link string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, link, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", link, err)
	}
	defer conn.Close()
	v.log.Info("following canvas", "link", link)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read from %s: %w", link, err)
		}
		doc, err := store.Decode(bytes.NewReader(data))
		if err != nil {
			v.log.Warn("skipping snapshot", "err", err)
			continue
		}
		if v.OnDocument != nil {
			v.OnDocument(doc)
		}
	}
}
