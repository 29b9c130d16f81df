//go:build ebiten

package main

import (
	"iter"
	"os"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
)

// runWindow hands the main loop to ebiten, which pulls one generation per tick
func (g *game) runWindow(sigChan <-chan os.Signal) (runResult, error) {
	initial := g.engine.Initial()
	result := runResult{Reason: "window closed", Generation: initial.Index}
	if err := g.frame(initial); err != nil {
		return result, err
	}

	next, stop := iter.Pull(g.engine.Generations())
	defer stop()

	stopped := false
	pull := func() (model.Generation, bool) {
		if stopped {
			return model.Generation{}, false
		}
		select {
		case <-sigChan:
			stopped = true
			result.Reason = "interrupted"
			return model.Generation{}, false
		default:
		}
		return next()
	}

	onFrame := func(gen model.Generation) error {
		if err := g.frame(gen); err != nil {
			return err
		}
		result.Generation = gen.Index
		if done, reason := checkStopConditions(gen, g.config); done {
			stopped = true
			result.Reason = reason
			result.Signal = gen.Signal
		}
		return nil
	}

	err := render.RunWindow("go-life", initial, pull, onFrame, g.config.Scale, g.config.Interval, g.config.Interpolation)
	return result, err
}
