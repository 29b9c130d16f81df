// Package render draws generations produced by the engine: to a terminal, a
// desktop window or an animated GIF file.
package render

import "github.com/sheikhrachel/go-life/model"

// Renderer consumes generations one at a time
type Renderer interface {
	Render(gen model.Generation) error
	Close() error
}

// Multi fans every generation out to several renderers
type Multi []Renderer

func (m Multi) Render(gen model.Generation) error {
	for _, r := range m {
		if err := r.Render(gen); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every renderer and returns the first error
func (m Multi) Close() error {
	var first error
	for _, r := range m {
		if err := r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
