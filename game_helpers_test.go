package main

import (
	"bytes"
	"image/gif"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.GridSize = 8
	config.Pattern = utils.PatternGlider
	config.Renderer = utils.RendererNone
	config.Workers = 2
	config.Seed = 1
	return config
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunFrameLimit(t *testing.T) {
	config := testConfig()
	config.Frames = 10

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)
	result, err := g.run(nil)
	require.NoError(t, err)

	assert.Equal(t, "frame limit", result.Reason)
	assert.Equal(t, 10, result.Generation)
	assert.Equal(t, rules.Continue, result.Signal)
	assert.Equal(t, 5, g.stats.PeakPopulation)
}

func TestRunAllDead(t *testing.T) {
	config := testConfig()
	config.Pattern = utils.PatternRandom
	config.AliveProbability = 0

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)
	result, err := g.run(nil)
	require.NoError(t, err)

	assert.Equal(t, rules.AllDead, result.Signal)
	assert.Equal(t, 1, result.Generation)
}

func TestRunStagnant(t *testing.T) {
	g, err := newGame(testConfig(), discardLogger(), io.Discard)
	require.NoError(t, err)

	block, err := model.NewGrid(6)
	require.NoError(t, err)
	for _, rc := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		block.Set(rc[0], rc[1], true)
	}
	g.engine = model.NewEngine(block)

	result, err := g.run(nil)
	require.NoError(t, err)
	assert.Equal(t, rules.Stagnant, result.Signal)
	assert.Equal(t, "stagnant", result.Reason)
	assert.Equal(t, 1, result.Generation)
}

func TestRunOvercrowded(t *testing.T) {
	config := testConfig()
	config.Pattern = utils.PatternRandom
	config.AliveProbability = 1
	config.GridSize = 3

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)
	result, err := g.run(nil)
	require.NoError(t, err)
	assert.Equal(t, rules.AllDead, result.Signal)
	assert.Equal(t, 9, g.stats.TotalChanges)
}

func TestRunQuit(t *testing.T) {
	config := testConfig()
	quit := make(chan struct{})
	close(quit)

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)
	g.quit = quit
	g.config.Interval = time.Hour
	g.config.Renderer = utils.RendererText

	result, err := g.run(nil)
	require.NoError(t, err)
	assert.Equal(t, "quit", result.Reason)
	assert.Equal(t, 1, result.Generation)
}

func TestRunInterrupted(t *testing.T) {
	sigChan := make(chan os.Signal, 1)
	sigChan <- os.Interrupt

	g, err := newGame(testConfig(), discardLogger(), io.Discard)
	require.NoError(t, err)
	result, err := g.run(sigChan)
	require.NoError(t, err)
	assert.Equal(t, "interrupted", result.Reason)
}

func TestRunWritesAnimation(t *testing.T) {
	config := testConfig()
	config.Frames = 4
	config.MovFile = filepath.Join(t.TempDir(), "glider.gif")

	var out bytes.Buffer
	require.NoError(t, run(config, discardLogger(), &out))
	assert.Contains(t, out.String(), "Stopped after 4 generations (frame limit)")

	info, err := os.Stat(config.MovFile)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRunAnimationDefaultFrameCount(t *testing.T) {
	config := testConfig()
	config.MovFile = filepath.Join(t.TempDir(), "glider.gif")

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)

	done := make(chan struct{})
	var result runResult
	go func() {
		defer close(done)
		result, err = g.run(nil)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("a glider run with an animation file and no frame limit did not end")
	}
	require.NoError(t, err)
	require.NoError(t, g.renderer.Close())

	assert.Equal(t, "animation complete", result.Reason)
	assert.Equal(t, defaultAnimationFrames-1, result.Generation)
	assert.Equal(t, defaultAnimationFrames, g.animation.Frames())

	f, err := os.Open(config.MovFile)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, defaultAnimationFrames)
}

func TestRunAnimationFollowsFrameLimit(t *testing.T) {
	config := testConfig()
	config.Frames = defaultAnimationFrames + 20
	config.MovFile = filepath.Join(t.TempDir(), "glider.gif")

	g, err := newGame(config, discardLogger(), io.Discard)
	require.NoError(t, err)
	result, err := g.run(nil)
	require.NoError(t, err)

	assert.Equal(t, "frame limit", result.Reason)
	assert.Equal(t, defaultAnimationFrames+21, g.animation.Frames(), "an explicit limit replaces the default")
}

func TestRunPrintsSignalSummary(t *testing.T) {
	config := testConfig()
	config.Pattern = utils.PatternRandom
	config.AliveProbability = 0

	var out bytes.Buffer
	require.NoError(t, run(config, discardLogger(), &out))
	assert.Equal(t, "Game Over: all died\n", out.String())
}

func TestRunTextRenderer(t *testing.T) {
	config := testConfig()
	config.Renderer = utils.RendererText
	config.Interval = time.Millisecond
	config.Frames = 2

	var out bytes.Buffer
	require.NoError(t, run(config, discardLogger(), &out))
	assert.Contains(t, out.String(), "Gen: 0 | Living: 5 | Changed: 0")
	assert.Contains(t, out.String(), "Gen: 2 | Living: 5")
}

func TestRunInvalidConfig(t *testing.T) {
	config := testConfig()
	config.GridSize = 0
	err := run(config, discardLogger(), io.Discard)
	assert.True(t, errors.Is(err, model.ErrInvalidDimension), "%v", err)

	config = testConfig()
	config.GliderTop = 7
	err = run(config, discardLogger(), io.Discard)
	assert.True(t, errors.Is(err, model.ErrOutOfBounds), "%v", err)

	config = testConfig()
	config.Pattern = utils.PatternRandom
	config.AliveProbability = 2
	err = run(config, discardLogger(), io.Discard)
	assert.True(t, errors.Is(err, model.ErrInvalidProbability), "%v", err)
}

func TestCheckStopConditions(t *testing.T) {
	config := testConfig()
	config.Frames = 5

	stop, reason := checkStopConditions(model.Generation{Index: 2, Signal: rules.Stagnant}, config)
	assert.True(t, stop)
	assert.Equal(t, "stagnant", reason)

	stop, _ = checkStopConditions(model.Generation{Index: 4}, config)
	assert.False(t, stop)

	stop, reason = checkStopConditions(model.Generation{Index: 5}, config)
	assert.True(t, stop)
	assert.Equal(t, "frame limit", reason)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := testConfig()
	config.Verbose = true
	newLogger(config, &buf).Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	buf.Reset()
	config.Renderer = utils.RendererScreen
	newLogger(config, &buf).Info("hidden")
	assert.Empty(t, buf.String())
}
