package render

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	paletteShades = 32
	// used when no interval is configured, roughly 30 frames per second
	defaultDelay = 3
)

// redRamp fades from black (dead) to red (alive) so smoothed edges keep intermediate shades
var redRamp = func() color.Palette {
	p := make(color.Palette, paletteShades)
	for i := range p {
		p[i] = color.RGBA{R: uint8(i * 255 / (paletteShades - 1)), A: 0xff}
	}
	return p
}()

// Interpolator maps an interpolation name to a scaling kernel.
// There is no gaussian kernel in x/image; Catmull-Rom is the closest smoothing one.
func Interpolator(name string) draw.Interpolator {
	switch name {
	case utils.InterpolationNearest:
		return draw.NearestNeighbor
	case utils.InterpolationBilinear:
		return draw.ApproxBiLinear
	default:
		return draw.CatmullRom
	}
}

// GIFEncoder collects generations and writes them as an animated GIF on Close
type GIFEncoder struct {
	path   string
	scale  int
	delay  int // 100ths of a second
	kernel draw.Interpolator
	limit  int // 0 keeps every frame
	anim   gif.GIF
}

// NewGIFEncoder writes to path; every cell becomes a scale x scale block smoothed by the named interpolation
func NewGIFEncoder(path string, scale int, interval time.Duration, interpolation string) *GIFEncoder {
	delay := int(interval / (10 * time.Millisecond))
	if delay <= 0 {
		delay = defaultDelay
	}
	return &GIFEncoder{
		path:   path,
		scale:  max(1, scale),
		delay:  delay,
		kernel: Interpolator(interpolation),
	}
}

// Frames returns the number of frames collected so far
func (e *GIFEncoder) Frames() int {
	return len(e.anim.Image)
}

// SetFrameLimit stops buffering after n frames; n <= 0 removes the limit
func (e *GIFEncoder) SetFrameLimit(n int) {
	e.limit = max(0, n)
}

// Full reports whether the frame limit has been reached
func (e *GIFEncoder) Full() bool {
	return e.limit > 0 && len(e.anim.Image) >= e.limit
}

// Render appends the generation as a frame. Frames past the limit are dropped.
func (e *GIFEncoder) Render(gen model.Generation) error {
	if e.Full() {
		return nil
	}
	e.anim.Image = append(e.anim.Image, e.frame(gen.View))
	e.anim.Delay = append(e.anim.Delay, e.delay)
	return nil
}

func (e *GIFEncoder) frame(v model.View) *image.Paletted {
	n := v.Size()
	src := image.NewRGBA(image.Rect(0, 0, n, n))
	for i, intensity := range v.Intensities() {
		src.Pix[i*4] = intensity
		src.Pix[i*4+3] = 0xff
	}

	scaled := image.NewRGBA(image.Rect(0, 0, n*e.scale, n*e.scale))
	e.kernel.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	dst := image.NewPaletted(scaled.Bounds(), redRamp)
	draw.Draw(dst, dst.Bounds(), scaled, image.Point{}, draw.Src)
	return dst
}

// Close writes the collected frames. Nothing is written when no frame was rendered.
func (e *GIFEncoder) Close() error {
	if len(e.anim.Image) == 0 {
		return nil
	}

	f, err := os.Create(e.path)
	if err != nil {
		return errors.Wrapf(err, "[GIFEncoder.Close] failed to create file: %+v", e.path)
	}
	if err = gif.EncodeAll(f, &e.anim); err != nil {
		f.Close()
		return errors.Wrapf(err, "[GIFEncoder.Close] failed to encode animation: %+v", e.path)
	}
	return errors.Wrapf(f.Close(), "[GIFEncoder.Close] failed to close file: %+v", e.path)
}
