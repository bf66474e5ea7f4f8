// Package wing keeps the recent history of animation ticks.
//
// Each tick produces one State. A History holds the newest N states and
// recycles the render slot of the state it evicts, so at steady state the
// renderer owns exactly N resources and never allocates per tick.
package wing

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Slot indexes one of a History's preallocated render resources, 0..Cap()-1.
type Slot int

// State is one tick's wing. It is never mutated after Push returns it.
type State struct {
	// Seq is the 1-based tick that produced the state.
	Seq uint64

	Radius     float64
	Angle      float64
	DeltaAngle float64
	DeltaZ     float64
	Roll       float64
	Pitch      float64
	Yaw        float64

	Color     colorful.Color
	EdgeColor colorful.Color

	Slot Slot

	// Static places the wing from Radius, Angle, Roll, Pitch and Yaw. It is
	// computed once, when the state is pushed. The inter-wing delta transform
	// depends on the whole history and is recomputed per frame instead.
	Static mgl32.Mat4
}

// StaticFunc computes State.Static from the state's motion parameters.
type StaticFunc func(s *State) mgl32.Mat4
