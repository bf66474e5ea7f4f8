package quarkgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMat4IdentityMatchesMgl(t *testing.T) {
	if Mat4Identity() != mgl32.Ident4() {
		t.Fatalf("identity mismatch")
	}
}

func TestProjectRejectsBehindEye(t *testing.T) {
	persp := mgl32.Perspective(1, 1, 0.1, 100)
	if _, ok := project(persp, V3(0, 0, 5)); ok {
		t.Fatalf("point behind the eye projected")
	}
	p, ok := project(persp, V3(0, 0, -5))
	if !ok {
		t.Fatalf("point in front of the eye rejected")
	}
	if p.Z <= -1 || p.Z >= 1 {
		t.Fatalf("ndc z out of range: %v", p.Z)
	}
}

func TestProjectRejectsInsideNearPlane(t *testing.T) {
	persp := mgl32.Perspective(1, 1, 0.1, 100)
	if _, ok := project(persp, V3(0, 0, -0.05)); ok {
		t.Fatalf("point between eye and near plane projected")
	}
	if _, ok := project(persp, V3(0, 0, -0.1001)); !ok {
		t.Fatalf("point just past the near plane rejected")
	}
}

func TestNDCToScreenCorners(t *testing.T) {
	x, y := ndcToScreen(ndcPoint{X: -1, Y: 1}, 10, 20)
	if x != 0 || y != 0 {
		t.Fatalf("top-left = %d,%d", x, y)
	}
	x, y = ndcToScreen(ndcPoint{X: 1, Y: -1}, 10, 20)
	if x != 9 || y != 19 {
		t.Fatalf("bottom-right = %d,%d", x, y)
	}
}
