package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"MyLocalPaint/internal/board"
	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/share"
	"MyLocalPaint/internal/store"
	"MyLocalPaint/internal/ui"
)

const (
	appID         = "io.mylocalpaint"
	browseTimeout = 3 * time.Second
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		config.Usage(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	a := app.NewWithID(appID)
	if cfg.View != "" {
		runViewer(a, cfg, logger)
		return
	}
	runEditor(a, cfg, logger)
}

func runEditor(a fyne.App, cfg config.Config, logger *slog.Logger) {
	logger.Info("starting editor", "width", cfg.Width, "height", cfg.Height, "tool", cfg.Tool)

	b := board.New(cfg.Width, cfg.Height, logger)
	b.SetTool(cfg.Tool)
	b.SetColor(cfg.Color)

	editor := ui.NewEditor(a, b, logger)
	if cfg.Open != "" {
		doc, err := store.Load(cfg.Open)
		if err != nil {
			logger.Error("could not open document", "err", err)
			editor.SetStatus("Could not open " + cfg.Open)
		} else {
			editor.Open(doc)
		}
	}

	if cfg.Share {
		host := share.NewHost(cfg.Port, logger)
		if err := host.Start(!cfg.NoMDNS); err != nil {
			logger.Error("sharing unavailable", "err", err)
			editor.SetStatus("Sharing unavailable: " + err.Error())
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := host.Shutdown(ctx); err != nil {
					logger.Warn("share shutdown", "err", err)
				}
			}()
			editor.OnChange = publish(b, host.Hub, logger)
			editor.SetSubtitle("sharing")
			editor.SetStatus("Sharing at " + host.Link())
		}
	}

	editor.ShowAndRun()
}

// publish sends the board to viewers when the drawing changed since the last
// call. Previews are not published.
func publish(b *board.Board, hub *share.Hub, logger *slog.Logger) func() {
	var last uint64
	var sent bool
	send := func() {
		rev := b.Revision()
		if sent && rev == last {
			return
		}
		data, err := store.Marshal(b.Snapshot())
		if err != nil {
			logger.Error("encoding snapshot", "err", err)
			return
		}
		hub.Publish(data)
		last, sent = rev, true
	}
	send()
	return send
}

func runViewer(a fyne.App, cfg config.Config, logger *slog.Logger) {
	v := ui.NewViewerWindow(a, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		link := cfg.View
		if link == "auto" {
			links, err := share.Browse(browseTimeout)
			if len(links) == 0 {
				if err == nil {
					err = errors.New("no shared canvas found")
				}
				logger.Error("discovery failed", "err", err)
				fyne.Do(func() { v.SetStatus("No shared canvas found") })
				return
			}
			link = links[0]
		}

		viewer := share.NewViewer(func(doc store.Document) {
			fyne.Do(func() { v.Show(doc) })
		}, logger)
		err := viewer.Run(ctx, link)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("viewer stopped", "err", err)
			fyne.Do(func() { v.SetStatus("Disconnected: " + err.Error()) })
		}
	}()

	v.Window().ShowAndRun()
}
