package quarkgl

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// FromColorful converts a colorful.Color with channels in [0,1]. Channels
// outside that range are clamped.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// FromRGBA converts a color from the tinyfont drawing path.
func FromRGBA(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }
