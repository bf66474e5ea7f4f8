package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	DepthFunc  DepthFunc
	DepthWrite bool
	ClearColor Color

	// ViewProj is applied after each draw's model matrix.
	ViewProj Mat4

	t        Target
	w, h     int
	depthBuf []float32
}

// Edges are pulled toward the viewer by this much (in [0,1] depth units) so
// that an edge drawn over its own filled triangle passes LEQUAL despite the
// two rasterizers interpolating depth slightly differently.
const edgeDepthBias = 1.0 / (1 << 14)

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		DepthWrite: true,
		ClearColor: RGB(0, 0, 0),
		ViewProj:   Mat4Identity(),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1
	}
}

// Begin starts a frame on t: the target is cleared to ClearColor and the
// depth buffer to the far plane. It reports false for an empty target.
func (r *Renderer) Begin(t Target) bool {
	if r == nil || t == nil {
		return false
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		r.t = nil
		return false
	}
	r.t, r.w, r.h = t, w, h
	t.Clear(r.ClearColor)
	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}
	return true
}

// DrawMesh draws m under ViewProj·model in color c using the current mode
// and depth state.
func (r *Renderer) DrawMesh(m *Mesh, model Mat4, c Color) {
	if r == nil || r.t == nil || m == nil || !m.Enabled || len(m.Vertices) == 0 {
		return
	}
	mvp := r.ViewProj.Mul4(model)

	if r.Mode == RenderWireframe {
		if len(m.Edges) >= 2 {
			for i := 0; i+1 < len(m.Edges); i += 2 {
				r.drawEdge(mvp, m.Vertices, m.Edges[i], m.Edges[i+1], c)
			}
			return
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			r.drawEdge(mvp, m.Vertices, m.Indices[i], m.Indices[i+1], c)
			r.drawEdge(mvp, m.Vertices, m.Indices[i+1], m.Indices[i+2], c)
			r.drawEdge(mvp, m.Vertices, m.Indices[i+2], m.Indices[i], c)
		}
		return
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}
		n0, ok0 := project(mvp, m.Vertices[i0])
		n1, ok1 := project(mvp, m.Vertices[i1])
		n2, ok2 := project(mvp, m.Vertices[i2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		x0, y0 := ndcToScreen(n0, r.w, r.h)
		x1, y1 := ndcToScreen(n1, r.w, r.h)
		x2, y2 := ndcToScreen(n2, r.w, r.h)
		r.fillTriangle(x0, y0, n0.Z, x1, y1, n1.Z, x2, y2, n2.Z, c)
	}
}

func (r *Renderer) drawEdge(mvp Mat4, verts []Vec3, a, b uint16, c Color) {
	if int(a) >= len(verts) || int(b) >= len(verts) {
		return
	}
	na, okA := project(mvp, verts[a])
	nb, okB := project(mvp, verts[b])
	if !okA || !okB {
		return
	}
	x0, y0 := ndcToScreen(na, r.w, r.h)
	x1, y1 := ndcToScreen(nb, r.w, r.h)
	r.drawLine(x0, y0, na.Z, x1, y1, nb.Z, c)
}

// depthTest maps NDC z to [0,1] and compares it against the depth buffer,
// writing it back when DepthWrite is set. Fragments outside the near/far
// range are dropped.
func (r *Renderer) depthTest(x, y int, z, bias float32) bool {
	d := z*0.5 + 0.5
	if d < 0 || d > 1 {
		return false
	}
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*r.w + x
	if x < 0 || x >= r.w || idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	d -= bias
	cur := r.depthBuf[idx]
	switch r.DepthFunc {
	case DepthLessEqual:
		if d > cur {
			return false
		}
	default:
		if d >= cur {
			return false
		}
	}
	if r.DepthWrite {
		r.depthBuf[idx] = d
	}
	return true
}

// drawLine is Bresenham with depth interpolated along the major axis.
func (r *Renderer) drawLine(x0, y0 int, z0 float32, x1, y1 int, z1 float32, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := dx
	if -dy > steps {
		steps = -dy
	}
	// Lines wholly off screen would otherwise walk every step.
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= r.w && x1 >= r.w) || (y0 >= r.h && y1 >= r.h) {
		return
	}

	err := dx + dy
	for i := 0; ; i++ {
		if x0 >= 0 && y0 >= 0 && x0 < r.w && y0 < r.h {
			z := z0
			if steps > 0 {
				z = z0 + (z1-z0)*float32(i)/float32(steps)
			}
			if r.depthTest(x0, y0, z, edgeDepthBias) {
				r.t.SetPixel(x0, y0, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes a flat triangle of either winding.
func (r *Renderer) fillTriangle(x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, z1, x2, y2, z2 = x2, y2, z2, x1, y1, z1
		area = -area
	}

	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= r.w {
		maxX = r.w - 1
	}
	if maxY >= r.h {
		maxY = r.h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := float32(w0)*invArea*z0 + float32(w1)*invArea*z1 + float32(w2)*invArea*z2
			if !r.depthTest(x, y, z, 0) {
				continue
			}
			r.t.SetPixel(x, y, c)
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}
