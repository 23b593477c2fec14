package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/todo-popup/internal/app"
	"github.com/atomicstack/todo-popup/internal/config"
	"github.com/atomicstack/todo-popup/internal/logging"
	"github.com/atomicstack/todo-popup/internal/logging/events"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("todo-popup needs an interactive terminal on stdin and stdout")

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Sync()

	tty := probeTerminal(os.Stdin.Fd(), os.Stdout.Fd())
	events.App.Start(startupPayload(cfg, tty))
	if !tty.Interactive {
		logging.Error(errNoTerminal)
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNoTerminal)
		return 1
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// terminal describes the controlling terminal as seen at startup.
type terminal struct {
	Interactive bool   `json:"interactive"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	SizeError   string `json:"size_error,omitempty"`
}

// probeTerminal reports whether both in and out are terminals and, if so,
// the size of out.
func probeTerminal(in, out uintptr) terminal {
	var t terminal
	if !term.IsTerminal(int(in)) || !term.IsTerminal(int(out)) {
		return t
	}
	t.Interactive = true
	width, height, err := term.GetSize(int(out))
	if err != nil {
		t.SizeError = err.Error()
		return t
	}
	t.Width, t.Height = width, height
	return t
}

func startupPayload(cfg config.Config, tty terminal) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"config":   cfg,
		"seeded":   len(cfg.App.Seed),
		"terminal": tty,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}
