// Package xform holds the transform math for the wing spiral.
//
// Matrices are mgl32 column-major 4x4s in the OpenGL convention: a product
// A.Mul4(B) applies B first. The same matrices feed the software rasterizer
// and any shader-based renderer as uniforms.
//
// Two rates:
//
//	Static      once per wing, when it is pushed (radius, angle, roll, pitch, yaw)
//	Cumulative  every frame, running sums of deltaAngle/deltaZ over the history
package xform

import (
	"github.com/go-gl/mathgl/mgl32"

	"wings/spiral/wing"
)

// View volume. The half extent is measured at the near plane and applies to
// the shorter viewport side; at EyeDistance it covers Radius.Max plus a wing.
const (
	Near        = 10
	Far         = 120
	HalfExtent  = 5
	EyeDistance = 35
)

func rad(deg float64) float32 { return mgl32.DegToRad(float32(deg)) }

// Static places a wing: rotate by angle about Z, move out by radius along X,
// then tilt by -yaw (Z), -pitch (Y) and roll (X) in the wing's own frame.
func Static(s *wing.State) mgl32.Mat4 {
	m := mgl32.HomogRotate3DZ(rad(s.Angle))
	m = m.Mul4(mgl32.Translate3D(float32(s.Radius), 0, 0))
	m = m.Mul4(mgl32.HomogRotate3DZ(rad(-s.Yaw)))
	m = m.Mul4(mgl32.HomogRotate3DY(rad(-s.Pitch)))
	m = m.Mul4(mgl32.HomogRotate3DX(rad(s.Roll)))
	return m
}

// Delta is translate(0, 0, z) · rotate(angle, Z).
func Delta(angle, z float64) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, float32(z)).Mul4(mgl32.HomogRotate3DZ(rad(angle)))
}

// Cumulative writes one delta transform per frame into dst and returns it.
// frames must be newest first. Each wing's own delta is added to the running
// sums before its transform is taken, so frame k carries the sum of frames
// 0..k.
func Cumulative(frames []wing.State, dst []mgl32.Mat4) []mgl32.Mat4 {
	dst = dst[:0]
	var angle, z float64
	for i := range frames {
		angle += frames[i].DeltaAngle
		z += frames[i].DeltaZ
		dst = append(dst, Delta(angle, z))
	}
	return dst
}

// Sums returns the running deltaAngle and deltaZ through frames[i].
func Sums(frames []wing.State, i int) (angle, z float64) {
	for k := 0; k <= i && k < len(frames); k++ {
		angle += frames[k].DeltaAngle
		z += frames[k].DeltaZ
	}
	return angle, z
}

// Compose applies the static transform first, then the cumulative one.
func Compose(cumulative, static mgl32.Mat4) mgl32.Mat4 {
	return cumulative.Mul4(static)
}

// Projection returns the frustum for a viewport. The shorter side keeps
// HalfExtent and the longer side grows with the aspect ratio, so the world
// volume that is always visible does not depend on the window shape.
func Projection(width, height int) mgl32.Mat4 {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	hw, hh := float32(HalfExtent), float32(HalfExtent)
	if aspect >= 1 {
		hw *= aspect
	} else {
		hh /= aspect
	}
	return mgl32.Frustum(-hw, hw, -hh, hh, Near, Far)
}

// View moves the world back so the newest wing sits EyeDistance in front of
// the camera.
func View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -EyeDistance)
}
