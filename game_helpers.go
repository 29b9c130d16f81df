package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	// generations kept for oscillation detection
	historySize = 16
	// frames saved to the animation file when no frame limit is set
	defaultAnimationFrames = 100
)

// runResult describes why a run ended
type runResult struct {
	Reason     string
	Signal     rules.Signal
	Generation int
}

// game drives an engine and feeds every generation to the renderers
type game struct {
	config    utils.Config
	logger    *slog.Logger
	out       io.Writer
	engine    *model.Engine
	renderer  render.Renderer
	animation *render.GIFEncoder
	quit      <-chan struct{}
	stats     *utils.Stats
	history   *utils.History

	lastFrame time.Time
}

// newGame sets up the initial game state
func newGame(config utils.Config, logger *slog.Logger, out io.Writer) (*game, error) {
	grid, err := initializeGrid(config)
	if err != nil {
		return nil, err
	}

	renderer, animation, quit, err := buildRenderer(config, out)
	if err != nil {
		return nil, err
	}

	return &game{
		config:    config,
		logger:    logger,
		out:       out,
		engine:    model.NewEngine(grid, model.WithWorkers(config.Workers)),
		renderer:  renderer,
		animation: animation,
		quit:      quit,
		stats:     utils.NewStats(),
		history:   utils.NewHistory(historySize),
		lastFrame: time.Now(),
	}, nil
}

// initializeGrid builds the starting grid for the configured pattern
func initializeGrid(config utils.Config) (*model.Grid, error) {
	if config.Pattern == utils.PatternGlider {
		grid, err := model.NewGrid(config.GridSize)
		if err != nil {
			return nil, err
		}
		if err = grid.PlaceGlider(config.GliderTop, config.GliderLeft); err != nil {
			return nil, err
		}
		return grid, nil
	}
	return model.NewRandomGrid(config.GridSize, config.AliveProbability, model.NewRNG(config.Seed))
}

// buildRenderer assembles the display and the optional animation file.
// The window renderer owns the main loop and is started separately.
// Without a frame limit the animation keeps the first defaultAnimationFrames frames.
func buildRenderer(config utils.Config, out io.Writer) (render.Multi, *render.GIFEncoder, <-chan struct{}, error) {
	var (
		renderers render.Multi
		animation *render.GIFEncoder
		quit      <-chan struct{}
	)

	switch config.Renderer {
	case utils.RendererText:
		renderers = append(renderers, render.NewTextRenderer(out, true))
	case utils.RendererScreen:
		screen, err := render.NewScreenRenderer()
		if err != nil {
			return nil, nil, nil, err
		}
		renderers = append(renderers, screen)
		quit = screen.Quit()
	}

	if config.MovFile != "" {
		animation = render.NewGIFEncoder(config.MovFile, config.Scale, config.Interval, config.Interpolation)
		if config.Frames == 0 {
			animation.SetFrameLimit(defaultAnimationFrames)
		}
		renderers = append(renderers, animation)
	}
	return renderers, animation, quit, nil
}

// frameDelay is the pause between generations; headless runs go as fast as possible
func (g *game) frameDelay() time.Duration {
	if g.config.Renderer == utils.RendererNone {
		return 0
	}
	return g.config.Interval
}

// frame renders one generation and records its statistics
func (g *game) frame(gen model.Generation) error {
	if err := g.renderer.Render(gen); err != nil {
		return err
	}

	now := time.Now()
	g.stats.Update(gen.Index, gen.Living, gen.Changed, now.Sub(g.lastFrame))
	g.lastFrame = now
	g.history.Push(gen.View.Hash())

	displayGameStatus(g.logger, gen, g.stats)
	return nil
}

// run advances the engine until a terminal signal, the frame limit, an OS signal or a quit key
func (g *game) run(sigChan <-chan os.Signal) (runResult, error) {
	initial := g.engine.Initial()
	if err := g.frame(initial); err != nil {
		return runResult{Generation: initial.Index}, err
	}

	for gen := range g.engine.Generations() {
		if err := g.frame(gen); err != nil {
			return runResult{Generation: gen.Index}, err
		}

		if stop, reason := checkStopConditions(gen, g.config); stop {
			return runResult{Reason: reason, Signal: gen.Signal, Generation: gen.Index}, nil
		}
		if g.animationComplete() {
			return runResult{Reason: "animation complete", Generation: gen.Index}, nil
		}

		if reason, interrupted := g.wait(sigChan); interrupted {
			return runResult{Reason: reason, Generation: gen.Index}, nil
		}
	}

	return runResult{Reason: "engine stopped", Generation: g.engine.Generation()}, nil
}

// animationComplete reports whether a headless run has nothing left to produce
func (g *game) animationComplete() bool {
	return g.config.Renderer == utils.RendererNone && g.animation != nil && g.animation.Full()
}

// wait sleeps for the frame delay unless interrupted
func (g *game) wait(sigChan <-chan os.Signal) (string, bool) {
	select {
	case <-sigChan:
		return "interrupted", true
	case <-g.quit:
		return "quit", true
	default:
	}

	delay := g.frameDelay()
	if delay <= 0 {
		return "", false
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-sigChan:
		return "interrupted", true
	case <-g.quit:
		return "quit", true
	case <-timer.C:
		return "", false
	}
}

// checkStopConditions determines if the run should end after gen
func checkStopConditions(gen model.Generation, config utils.Config) (bool, string) {
	if gen.Signal.Terminal() {
		return true, gen.Signal.String()
	}
	if config.Frames > 0 && gen.Index >= config.Frames {
		return true, "frame limit"
	}
	return false, ""
}

// displayGameInfo shows the initial game information
func displayGameInfo(logger *slog.Logger, config utils.Config, initial model.Generation) {
	attrs := []any{
		"grid", fmt.Sprintf("%dx%d", config.GridSize, config.GridSize),
		"pattern", config.Pattern,
		"living", initial.Living,
		"renderer", config.Renderer,
		"workers", config.Workers,
	}
	if config.Pattern == utils.PatternRandom {
		attrs = append(attrs, "probability", config.AliveProbability, "seed", config.Seed)
	}
	if config.MovFile != "" {
		attrs = append(attrs, "movfile", config.MovFile)
	}
	logger.Info("starting game of life", attrs...)
}

// displayGameStatus logs the current generation
func displayGameStatus(logger *slog.Logger, gen model.Generation, stats *utils.Stats) {
	size := gen.View.Size()
	density := float64(gen.Living) / float64(size*size) * 100

	logger.Debug("generation",
		"gen", gen.Index,
		"living", gen.Living,
		"changed", gen.Changed,
		"density", fmt.Sprintf("%.1f%%", density),
		"gen_per_sec", fmt.Sprintf("%.1f", stats.GenerationsPerSecond),
	)
}

// displaySummary prints how the run ended
func displaySummary(out io.Writer, logger *slog.Logger, result runResult, stats *utils.Stats, history *utils.History) {
	if result.Signal.Terminal() {
		fmt.Fprintln(out, result.Signal.Summary())
	} else {
		fmt.Fprintf(out, "Stopped after %d generations (%s)\n", result.Generation, result.Reason)
	}

	attrs := []any{
		"reason", result.Reason,
		"generations", result.Generation,
		"peak_population", stats.PeakPopulation,
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		"total_changes", stats.TotalChanges,
		"runtime", stats.Runtime().Round(time.Millisecond),
	}
	if period := history.Period(); period > 1 {
		attrs = append(attrs, "oscillation_period", period)
	}
	logger.Info("run finished", attrs...)
}
