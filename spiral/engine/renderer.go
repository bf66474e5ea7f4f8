package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"wings/spiral/wing"
)

// Pass selects how a wing is drawn.
type Pass uint8

const (
	// PassFill draws filled wings in their surface color with depth test
	// LESS and depth writes on.
	PassFill Pass = iota
	// PassOutline draws wing edges in the edge color with depth test LEQUAL
	// and depth writes off, so edges sit on the filled surface instead of
	// fighting it.
	PassOutline
)

func (p Pass) String() string {
	switch p {
	case PassFill:
		return "fill"
	case PassOutline:
		return "outline"
	default:
		return "unknown"
	}
}

// Renderer owns the per-slot draw resources and issues draw calls.
//
// Calls arrive from one goroutine at a time.
type Renderer interface {
	// Populate rebuilds the resource in slot for s, including its cached
	// static transform. It is called once for every pushed state, before
	// that state can be drawn.
	Populate(slot wing.Slot, s wing.State) error

	// Begin starts a frame with the current camera.
	Begin(width, height int, proj, view mgl32.Mat4) error

	// Draw draws the wing in slot with cumulative applied outside its static
	// transform.
	Draw(pass Pass, slot wing.Slot, cumulative mgl32.Mat4, c colorful.Color)

	End() error
}
