package ribbon

import (
	"image/color"

	"tinygo.org/x/drivers"

	"wings/hal"
	"wings/spiral/quarkgl"
)

// fbDisplayer lets tinyfont draw into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	t := quarkgl.RGB565Target{
		Buf:    d.fb.Buffer(),
		Stride: d.fb.StrideBytes(),
		W:      d.fb.Width(),
		H:      d.fb.Height(),
	}
	t.SetPixel(int(x), int(y), quarkgl.FromRGBA(c))
}

func (d *fbDisplayer) Display() error { return nil }
