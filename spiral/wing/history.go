package wing

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"wings/spiral/curve"
)

// DefaultCapacity is the number of wings kept when none is configured.
const DefaultCapacity = 40

// History is a fixed-capacity, newest-first sequence of States.
//
// It is not safe for concurrent use; callers that tick and render from
// different goroutines must hold one lock around Push and Frames.
type History struct {
	buf  []State
	head int // index of the newest state
	size int
	seq  uint64

	edge   colorful.Color
	static StaticFunc
}

// NewHistory returns an empty history holding at most capacity states.
// A non-positive capacity selects DefaultCapacity. static may be nil.
func NewHistory(capacity int, edge colorful.Color, static StaticFunc) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		buf:    make([]State, capacity),
		edge:   edge,
		static: static,
	}
}

// Push creates the state for p at the front.
//
// Below capacity the new state gets the next unused slot. At capacity the
// oldest state is removed first and its slot is handed to the new state.
func (h *History) Push(p curve.Sample) State {
	n := len(h.buf)

	var slot Slot
	if h.size < n {
		slot = Slot(h.size)
	} else {
		slot = h.buf[h.back()].Slot
		h.size--
	}

	h.seq++
	s := State{
		Seq:        h.seq,
		Radius:     p.Radius,
		Angle:      p.Angle,
		DeltaAngle: p.DeltaAngle,
		DeltaZ:     p.DeltaZ,
		Roll:       p.Roll,
		Pitch:      p.Pitch,
		Yaw:        p.Yaw,
		Color:      colorful.Color{R: p.Red, G: p.Green, B: p.Blue},
		EdgeColor:  h.edge,
		Slot:       slot,
		Static:     mgl32.Ident4(),
	}
	if h.static != nil {
		s.Static = h.static(&s)
	}

	// When full, the new head is the slot the evicted state occupied.
	h.head = (h.head - 1 + n) % n
	h.buf[h.head] = s
	h.size++
	return s
}

// Frames appends the states to dst, newest first, and returns it.
//
// The result is a copy; it stays valid while later pushes happen.
func (h *History) Frames(dst []State) []State {
	for i := 0; i < h.size; i++ {
		dst = append(dst, h.buf[h.index(i)])
	}
	return dst
}

// At returns the i-th newest state.
func (h *History) At(i int) (State, bool) {
	if i < 0 || i >= h.size {
		return State{}, false
	}
	return h.buf[h.index(i)], true
}

// Front returns the newest state.
func (h *History) Front() (State, bool) { return h.At(0) }

// Back returns the oldest state, the next to be evicted at capacity.
func (h *History) Back() (State, bool) {
	if h.size == 0 {
		return State{}, false
	}
	return h.buf[h.back()], true
}

func (h *History) Len() int { return h.size }
func (h *History) Cap() int { return len(h.buf) }

// Pushes returns the number of states ever pushed.
func (h *History) Pushes() uint64 { return h.seq }

func (h *History) index(i int) int { return (h.head + i) % len(h.buf) }
func (h *History) back() int       { return h.index(h.size - 1) }
