//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	// pendingW/pendingH hold a resize requested by the host loop; it is
	// applied between app steps.
	pendingW, pendingH int

	present func() error
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.setSize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present()
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := packRGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		p.store(f.buf[i:])
	}
}

func (f *hostFramebuffer) setSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.width = width
	f.height = height
	f.stride = width * 2
	if n := f.stride * height; cap(f.buf) >= n {
		f.buf = f.buf[:n]
		clear(f.buf)
	} else {
		f.buf = make([]byte, n)
	}
}

// requestResize records a new size to apply at the next step boundary. It is
// safe to call from the host's event goroutine.
func (f *hostFramebuffer) requestResize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingW, f.pendingH = width, height
}

// applyResize applies a pending resize. It reports whether the size changed.
func (f *hostFramebuffer) applyResize() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pendingW == 0 && f.pendingH == 0 {
		return false
	}
	w, h := f.pendingW, f.pendingH
	f.pendingW, f.pendingH = 0, 0
	if w == f.width && h == f.height {
		return false
	}
	f.setSize(w, h)
	return true
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// pixel returns the RGB888 color at x, y.
func (f *hostFramebuffer) pixel(x, y int) (r, g, b uint8) {
	off := y*f.stride + x*2
	if x < 0 || y < 0 || x >= f.width || y >= f.height || off+1 >= len(f.buf) {
		return 0, 0, 0
	}
	return loadRGB565(f.buf[off:]).rgb888()
}

// image converts the framebuffer into dst, reallocating it on a size change.
func (f *hostFramebuffer) image(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	src := f.buf
	pix := dst.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(pix); i += 2 {
		r, g, b := loadRGB565(src[i:]).rgb888()
		j := (i / 2) * 4
		pix[j+0] = r
		pix[j+1] = g
		pix[j+2] = b
		pix[j+3] = 0xFF
	}
	return dst
}
