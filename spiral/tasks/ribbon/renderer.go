package ribbon

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"wings/spiral/engine"
	"wings/spiral/quarkgl"
	"wings/spiral/wing"
	"wings/spiral/xform"
)

var errNoTarget = errors.New("ribbon: no render target")

// The wing quad in its local XY plane. xform.Static moves it out to its
// radius and tilts it.
var (
	wingVertices = []quarkgl.Vec3{
		quarkgl.V3(-1, -1, 0),
		quarkgl.V3(1, -1, 0),
		quarkgl.V3(1, 1, 0),
		quarkgl.V3(-1, 1, 0),
	}
	wingIndices = []uint16{0, 1, 2, 0, 2, 3}
	wingEdges   = []uint16{0, 1, 1, 2, 2, 3, 3, 0}
)

// wingRenderer implements engine.Renderer on quarkgl. Each slot owns one
// mesh in a fixed scene; repopulating a slot replaces the mesh's baked
// static transform.
type wingRenderer struct {
	r *quarkgl.Renderer
	s *quarkgl.Scene

	// target is set by the task before every engine.Render.
	target quarkgl.Target

	// wireframe draws the fill pass as edges in the surface color.
	wireframe bool
}

var _ engine.Renderer = (*wingRenderer)(nil)

func newWingRenderer(slots, w, h int) *wingRenderer {
	r := quarkgl.NewRenderer(w, h, true)
	r.ClearColor = quarkgl.RGB(0x05, 0x08, 0x12)
	return &wingRenderer{
		r: r,
		s: quarkgl.CreateScene(slots),
	}
}

func (wr *wingRenderer) Populate(slot wing.Slot, s wing.State) error {
	ok := wr.s.SetMesh(int(slot), quarkgl.Mesh{
		Vertices:  wingVertices,
		Indices:   wingIndices,
		Edges:     wingEdges,
		Transform: s.Static,
	})
	if !ok {
		return fmt.Errorf("slot %d outside scene of %d meshes", slot, wr.s.Cap())
	}
	return nil
}

func (wr *wingRenderer) Begin(width, height int, proj, view mgl32.Mat4) error {
	if wr.target == nil {
		return errNoTarget
	}
	wr.r.ViewProj = proj.Mul4(view)
	if !wr.r.Begin(wr.target) {
		return fmt.Errorf("ribbon: empty target for %dx%d viewport", width, height)
	}
	return nil
}

func (wr *wingRenderer) Draw(pass engine.Pass, slot wing.Slot, cumulative mgl32.Mat4, c colorful.Color) {
	m, ok := wr.s.Mesh(int(slot))
	if !ok {
		return
	}
	switch pass {
	case engine.PassFill:
		wr.r.Mode = quarkgl.RenderSolidFlat
		if wr.wireframe {
			wr.r.Mode = quarkgl.RenderWireframe
		}
		wr.r.DepthFunc = quarkgl.DepthLess
		wr.r.DepthWrite = true
	case engine.PassOutline:
		wr.r.Mode = quarkgl.RenderWireframe
		wr.r.DepthFunc = quarkgl.DepthLessEqual
		wr.r.DepthWrite = false
	}
	wr.r.DrawMesh(m, xform.Compose(cumulative, m.Transform), quarkgl.FromColorful(c))
}

func (wr *wingRenderer) End() error {
	wr.r.DepthFunc = quarkgl.DepthLess
	wr.r.DepthWrite = true
	return nil
}
