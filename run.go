package paper

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height default to the paper's size.
	Width, Height int
	// Update, when set, runs once per frame before the paper processes input.
	// A non-nil error stops the loop and is returned from Run.
	Update func() error
}

type game struct {
	paper  *Paper
	update func() error
}

func (g *game) Update() error {
	if g.update != nil {
		if err := g.update(); err != nil {
			return err
		}
	}
	g.paper.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.paper.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.paper.Layout(outsideWidth, outsideHeight)
}

// Run opens a window and drives the paper's Update and Draw until the window
// is closed.
func Run(p *Paper, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		pw, ph := p.Size()
		w, h = int(pw), int(ph)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(&game{paper: p, update: cfg.Update})
}
