package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorRed)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// ScreenRenderer draws generations full screen with tcell: red cells on a black background.
// Pressing q, Esc or Ctrl-C closes the channel returned by Quit.
type ScreenRenderer struct {
	screen tcell.Screen
	quit   chan struct{}

	quitOnce  sync.Once
	closeOnce sync.Once
}

// NewScreenRenderer takes over the terminal
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return newScreenRenderer(screen)
}

func newScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.SetStyle(deadStyle)
	screen.Clear()

	r := &ScreenRenderer{
		screen: screen,
		quit:   make(chan struct{}),
	}
	go r.pollEvents()
	return r, nil
}

func (r *ScreenRenderer) pollEvents() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.quitOnce.Do(func() { close(r.quit) })
			}
		}
	}
}

// Quit is closed once the user asks to stop
func (r *ScreenRenderer) Quit() <-chan struct{} {
	return r.quit
}

// Render draws the grid, two terminal columns per cell, with a status line underneath.
// Cells beyond the terminal are clipped.
func (r *ScreenRenderer) Render(gen model.Generation) error {
	width, height := r.screen.Size()
	v := gen.View
	rows := min(v.Size(), height-1)
	cols := min(v.Size(), width/2)

	r.screen.Clear()
	for row := range rows {
		for col := range cols {
			style := deadStyle
			if v.Alive(row, col) {
				style = aliveStyle
			}
			r.screen.SetContent(col*2, row, ' ', nil, style)
			r.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("Gen: %d | Living: %d | Changed: %d | q to quit", gen.Index, gen.Living, gen.Changed)
	for i, ch := range []rune(status) {
		if i >= width {
			break
		}
		r.screen.SetContent(i, max(rows, 0), ch, nil, textStyle)
	}

	r.screen.Show()
	return nil
}

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.closeOnce.Do(r.screen.Fini)
	return nil
}
