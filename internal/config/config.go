// Package config parses the command line into the application settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"MyLocalPaint/internal/board"
	"MyLocalPaint/internal/store"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultPort   = 8888
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything main needs to start the editor or a viewer.
type Config struct {
	Width  int
	Height int
	Color  color.RGBA
	Tool   board.Tool

	// Share serves the canvas read-only to LAN viewers on Port.
	Share  bool
	Port   int
	NoMDNS bool

	// View, when set, starts a viewer instead of the editor. It is a
	// ws:// link or "auto" to discover a host via mDNS.
	View string

	LogLevel slog.Level

	// Open is a document to load on start.
	Open string
}

// Parse reads args (without the program name).
func Parse(args []string) (Config, error) {
	return parse(args, io.Discard)
}

func parse(args []string, output io.Writer) (Config, error) {
	fs := pflag.NewFlagSet("mylocalpaint", pflag.ContinueOnError)
	fs.SetOutput(output)

	width := fs.Int("width", DefaultWidth, "canvas width in pixels")
	height := fs.Int("height", DefaultHeight, "canvas height in pixels")
	col := fs.String("color", "red", "initial pen color (CSS color)")
	tool := fs.String("tool", board.ToolFreeHand.String(), "initial tool: freehand, eraser, rectangle, line, triangle, circle")
	share := fs.Bool("share", false, "share the canvas read-only on the local network")
	port := fs.IntP("port", "p", DefaultPort, "port to share on")
	noMDNS := fs.Bool("no-mdns", false, "do not advertise the shared canvas over mDNS")
	view := fs.String("view", "", `view a shared canvas: ws://host:port/ws or "auto"`)
	level := fs.String("log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Config{
		Width:  *width,
		Height: *height,
		Share:  *share,
		Port:   *port,
		NoMDNS: *noMDNS,
		View:   *view,
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: port %d", ErrInvalidConfig, cfg.Port)
	}
	if cfg.Share && cfg.View != "" {
		return Config{}, fmt.Errorf("%w: --share and --view are exclusive", ErrInvalidConfig)
	}

	var err error
	if cfg.Color, err = store.ParseColor(*col); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Tool, err = board.ParseTool(*tool); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, *level)
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.Open = rest[0]
	default:
		return Config{}, fmt.Errorf("%w: expected at most one document, got %s",
			ErrInvalidConfig, strings.Join(rest, " "))
	}

	return cfg, nil
}

// Usage prints the flag help to w.
func Usage(w io.Writer) {
	_, _ = parse([]string{"--help"}, w)
}

// NewLogger builds the text logger used across the application.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}
