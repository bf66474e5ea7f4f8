//go:build !tinygo && cgo

package hal

import (
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"wings/internal/buildinfo"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width, Height int
	// Scale is the number of screen pixels per framebuffer pixel.
	Scale int
}

// RunWindow starts a resizable desktop window that displays the framebuffer
// and forwards keyboard input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	h := newHostHAL(cfg.Width, cfg.Height, os.Stdout)
	step := newApp(h)

	g := &hostGame{h: h, step: step, scale: cfg.Scale}
	ebiten.SetWindowTitle("Wings (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
	scale int
}

func (g *hostGame) Update() error {
	g.h.fb.applyResize()
	g.h.kbd.poll()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.img = g.h.fb.image(g.img)
	b := g.img.Bounds()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != b.Dx() || g.fbImg.Bounds().Dy() != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale, 1)
	h := max(outsideHeight/g.scale, 1)
	g.h.fb.requestResize(w, h)
	return w, h
}
