package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
)

// TextRenderer prints each generation as text, clearing the terminal between frames
type TextRenderer struct {
	out   io.Writer
	clear bool
}

// NewTextRenderer writes frames to out. When clear is set each frame starts with an ANSI clear.
func NewTextRenderer(out io.Writer, clear bool) *TextRenderer {
	return &TextRenderer{out: out, clear: clear}
}

// Render writes the generation header followed by the grid
func (r *TextRenderer) Render(gen model.Generation) error {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "Gen: %d | Living: %d | Changed: %d\n", gen.Index, gen.Living, gen.Changed)

	v := gen.View
	for row := range v.Size() {
		for col := range v.Size() {
			if v.Alive(row, col) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, b.String())
	return errors.Wrap(err, "[TextRenderer.Render] failed to write frame")
}

func (r *TextRenderer) Close() error { return nil }
