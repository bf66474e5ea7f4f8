package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderSolidFlat RenderMode = iota
	RenderWireframe
)

// DepthFunc selects the depth comparison.
type DepthFunc uint8

const (
	// DepthLess passes fragments strictly nearer than the stored depth.
	DepthLess DepthFunc = iota
	// DepthLessEqual also passes fragments at the stored depth.
	DepthLessEqual
)
