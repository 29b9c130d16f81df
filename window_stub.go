//go:build !ebiten

package main

import (
	"os"

	"github.com/pkg/errors"
)

// runWindow is only available in builds with the ebiten tag
func (g *game) runWindow(<-chan os.Signal) (runResult, error) {
	return runResult{}, errors.New("the window renderer requires the ebiten build tag: go build -tags ebiten")
}
