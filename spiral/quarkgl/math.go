package quarkgl

import "github.com/go-gl/mathgl/mgl32"

type (
	Vec3 = mgl32.Vec3
	Vec4 = mgl32.Vec4
	// Mat4 is column-major: m[col*4+row].
	Mat4 = mgl32.Mat4
)

func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

type ndcPoint struct {
	X, Y, Z float32
}

// project maps a model-space point to NDC. Points in front of the near plane
// are rejected, which keeps screen coordinates bounded as w approaches 0.
func project(mvp Mat4, p Vec3) (ndcPoint, bool) {
	c := mvp.Mul4x1(p.Vec4(1))
	w := c.W()
	if w <= 0 || c.Z() < -w {
		return ndcPoint{}, false
	}
	inv := 1 / w
	return ndcPoint{X: c.X() * inv, Y: c.Y() * inv, Z: c.Z() * inv}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
