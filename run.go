package pinchcam

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title string
	// Width and Height are the initial window size. Zero uses the
	// controller's configured viewport.
	Width, Height int
	// ShowDebug draws camera and pointer state in the top-left corner.
	ShowDebug bool
	// Source overrides the polled input. Nil uses EbitenSource.
	Source InputSource
	// Update runs once per tick after the controller has processed input.
	// A non-nil error stops the game loop.
	Update func(c *Controller) error
	// Draw renders the host's scene with the controller's camera.
	Draw func(screen *ebiten.Image, cam *Camera)
}

// game adapts a Controller to ebiten.Game.
type game struct {
	c             *Controller
	cfg           RunConfig
	width, height int
}

func (g *game) Update() error {
	g.c.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.cfg.Update != nil {
		return g.cfg.Update(g.c)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen, g.c.camera)
	}
	if g.cfg.ShowDebug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f\n%s", ebiten.ActualFPS(), g.c.debugLine()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.c.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the controller from ebiten's game
// loop. It blocks until the window is closed.
func Run(c *Controller, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = c.cfg.Width, c.cfg.Height
	}
	src := cfg.Source
	if src == nil {
		src = EbitenSource{}
	}
	c.SetInputSource(src)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{c: c, cfg: cfg})
}
