package quarkgl

// Mesh is cached geometry plus the transform that was baked for it.
type Mesh struct {
	Enabled bool

	Vertices []Vec3
	Indices  []uint16 // triangle list
	// Edges is a line list drawn in wireframe mode. When empty the triangle
	// edges are drawn instead.
	Edges []uint16

	Transform Mat4
}

// Scene is a fixed-capacity arena of meshes addressed by id 0..Cap()-1.
type Scene struct {
	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

func (s *Scene) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.meshes)
}

// SetMesh stores m at id, replacing any mesh there. It reports false when id
// is outside the arena.
func (s *Scene) SetMesh(id int, m Mesh) bool {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return false
	}
	if m.Transform == (Mat4{}) {
		m.Transform = Mat4Identity()
	}
	m.Enabled = true
	s.meshes[id] = m
	s.alive[id] = true
	return true
}

// Mesh returns the live mesh at id.
func (s *Scene) Mesh(id int) (*Mesh, bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return nil, false
	}
	return &s.meshes[id], true
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
