package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

func gliderGeneration(t *testing.T, size int) model.Generation {
	t.Helper()
	g, err := model.NewGrid(size)
	require.NoError(t, err)
	require.NoError(t, g.PlaceGlider(0, 0))
	return model.NewEngine(g).Initial()
}

type recorder struct {
	frames  int
	closed  bool
	failing error
}

func (r *recorder) Render(model.Generation) error {
	r.frames++
	return r.failing
}

func (r *recorder) Close() error {
	r.closed = true
	return r.failing
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)
	gen := gliderGeneration(t, 4)
	gen.Index = 3
	gen.Changed = 2

	require.NoError(t, r.Render(gen))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Gen: 3 | Living: 5 | Changed: 2", lines[0])
	assert.Equal(t, "    ██  ", lines[1])
	assert.Equal(t, "██  ██  ", lines[2])
	assert.Equal(t, "  ████  ", lines[3])
	assert.Equal(t, "        ", lines[4])
	assert.NoError(t, r.Close())
}

func TestTextRendererClears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf, true).Render(gliderGeneration(t, 3)))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, b}
	gen := model.Generation{Signal: rules.Continue}

	require.NoError(t, m.Render(gen))
	require.NoError(t, m.Render(gen))
	require.NoError(t, m.Close())
	assert.Equal(t, 2, a.frames)
	assert.Equal(t, 2, b.frames)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestMultiErrors(t *testing.T) {
	boom := errors.New("boom")
	a, b := &recorder{failing: boom}, &recorder{}
	m := Multi{a, b}

	assert.ErrorIs(t, m.Render(model.Generation{}), boom)
	assert.Zero(t, b.frames, "fan-out stops at the first failure")

	assert.ErrorIs(t, m.Close(), boom)
	assert.True(t, b.closed, "every renderer is closed")
}
