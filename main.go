package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config, err := utils.ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(config, os.Stderr)
	if err = run(config, logger, os.Stdout); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

// newLogger logs to w; the full-screen renderer owns the terminal so only warnings get through
func newLogger(config utils.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case config.Renderer == utils.RendererScreen:
		level = slog.LevelWarn
	case config.Verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run plays one game from config to its end-of-run summary
func run(config utils.Config, logger *slog.Logger, out io.Writer) error {
	g, err := newGame(config, logger, out)
	if err != nil {
		return err
	}
	displayGameInfo(logger, config, g.engine.Initial())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var result runResult
	if config.Renderer == utils.RendererWindow {
		result, err = g.runWindow(sigChan)
	} else {
		result, err = g.run(sigChan)
	}

	// the screen must be released before the summary is printed
	if closeErr := g.renderer.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	displaySummary(out, logger, result, g.stats, g.history)
	return nil
}
