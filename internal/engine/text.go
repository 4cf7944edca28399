package engine

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-miner/internal/registry"
)

// TextRenderer writes the game's text dump after every frame.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render writes the dump followed by a blank line.
func (r *TextRenderer) Render(g registry.Game) error {
	_, err := fmt.Fprintf(r.w, "%s\n", g.Dump())
	return err
}
