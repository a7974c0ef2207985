//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sparse-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windowProvider interface {
	Window() core.Size
}

type anchorProvider interface {
	Anchors() []core.Point
}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles the simulation window border, key 2 the header anchors.
type Overlay struct {
	sim         core.Sim
	scale       int
	showWindow  bool
	showAnchors bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWindow = !o.showWindow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAnchors = !o.showAnchors
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showAnchors {
		if p, ok := o.sim.(anchorProvider); ok {
			for _, r := range anchorRects(p.Anchors(), o.sim.Size(), o.scale) {
				o.fill(screen, r, color.RGBA{R: 64, G: 164, B: 223, A: 160})
			}
		}
	}
	if o.showWindow {
		if p, ok := o.sim.(windowProvider); ok {
			for _, r := range windowFrame(p.Window(), o.scale, 1) {
				o.fill(screen, r, color.RGBA{R: 255, G: 120, B: 40, A: 200})
			}
		}
	}
}

func (o *Overlay) fill(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
