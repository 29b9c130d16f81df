//go:build ebiten

package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Window adapts a pull-based generation source to the ebiten.Game interface.
// It advances one generation per tick and keeps showing the last one once the source is exhausted.
type Window struct {
	next    func() (model.Generation, bool)
	onFrame func(model.Generation) error

	img    *ebiten.Image
	pixels []byte
	size   int
	scale  int
	filter ebiten.Filter
	done   bool
}

// RunWindow opens a window showing first and then every generation returned by next.
// onFrame is called for each generation after it is shown. Pressing q or Esc closes the window.
func RunWindow(
	title string,
	first model.Generation,
	next func() (model.Generation, bool),
	onFrame func(model.Generation) error,
	scale int,
	interval time.Duration,
	interpolation string,
) error {
	size := first.View.Size()
	w := &Window{
		next:    next,
		onFrame: onFrame,
		img:     ebiten.NewImage(size, size),
		pixels:  make([]byte, size*size*4),
		size:    size,
		scale:   max(1, scale),
		filter:  ebiten.FilterLinear,
	}
	if interpolation == utils.InterpolationNearest {
		w.filter = ebiten.FilterNearest
	}
	w.fill(first.View)

	tps := ebiten.DefaultTPS
	if interval > 0 {
		tps = max(1, int(time.Second/interval))
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size*w.scale, size*w.scale)

	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// fill converts cell intensities into red-on-black RGBA pixels
func (w *Window) fill(v model.View) {
	for i, intensity := range v.Intensities() {
		base := i * 4
		w.pixels[base+0] = intensity
		w.pixels[base+1] = 0
		w.pixels[base+2] = 0
		w.pixels[base+3] = 0xff
	}
}

// Update handles input and advances the simulation by one generation
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.done {
		return nil
	}

	gen, ok := w.next()
	if !ok {
		w.done = true
		return nil
	}
	w.fill(gen.View)
	if err := w.onFrame(gen); err != nil {
		return err
	}
	w.done = gen.Signal.Terminal()
	return nil
}

// Draw renders the latest generation
func (w *Window) Draw(screen *ebiten.Image) {
	w.img.WritePixels(w.pixels)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	op.Filter = w.filter
	screen.DrawImage(w.img, op)
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.size * w.scale, w.size * w.scale
}
