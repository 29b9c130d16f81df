package model

import (
	"iter"

	"github.com/sheikhrachel/go-life/rules"
)

// Generation is one step of a run together with the counters computed while producing it
type Generation struct {
	Index   int // 0 is the initial grid
	View    View
	Living  int
	Changed int
	Signal  rules.Signal
}

// Engine owns a grid and advances it one generation at a time until a terminal signal
type Engine struct {
	grid       *Grid
	workers    int
	generation int
	last       Generation
	done       bool
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithWorkers sets the number of row bands evaluated concurrently per step
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		e.workers = max(1, n)
	}
}

// NewEngine creates an engine starting from a private copy of grid
func NewEngine(grid *Grid, opts ...EngineOption) *Engine {
	e := &Engine{
		grid:    grid.Clone(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initial describes the current grid without evaluating it. Before the first Step it is the starting grid.
func (e *Engine) Initial() Generation {
	return Generation{
		Index:  e.generation,
		View:   e.Current(),
		Living: e.grid.CountLivingCells(),
		Signal: rules.Continue,
	}
}

// Current returns a read-only view of the latest generation
func (e *Engine) Current() View {
	return e.grid.View()
}

// Generation returns the number of steps taken so far
func (e *Engine) Generation() int {
	return e.generation
}

// Done reports whether a terminal signal has been raised
func (e *Engine) Done() bool {
	return e.done
}

// Step advances the grid by one generation and evaluates the termination policy.
// Once a terminal signal has been raised Step keeps returning that generation.
func (e *Engine) Step() Generation {
	if e.done {
		return e.last
	}

	next, living, changed := e.grid.NextGeneration(e.workers)
	e.grid = next
	e.generation++

	signal := rules.Evaluate(living, changed)
	e.last = Generation{
		Index:   e.generation,
		View:    next.View(),
		Living:  living,
		Changed: changed,
		Signal:  signal,
	}
	e.done = signal.Terminal()
	return e.last
}

// Generations yields successive generations, ending after the terminal one.
// The sequence is not restartable; build a new Engine to run again.
func (e *Engine) Generations() iter.Seq[Generation] {
	return func(yield func(Generation) bool) {
		for !e.done {
			if !yield(e.Step()) {
				return
			}
		}
	}
}
