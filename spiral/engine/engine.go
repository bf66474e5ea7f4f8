// Package engine ties the curves, the wing history and the transform math
// together behind the three calls a host makes: Advance per tick, Render per
// frame and Resize per size change.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"wings/spiral/curve"
	"wings/spiral/wing"
	"wings/spiral/xform"
)

var (
	// ErrResourceInitializationFailed reports a slot the renderer could not
	// populate. Frames containing such a slot are not drawn.
	ErrResourceInitializationFailed = errors.New("resource initialization failed")
	ErrNilRenderer                  = errors.New("engine: nil renderer")
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Config is what Initialize needs.
type Config struct {
	// Capacity is the number of wings kept. Zero selects wing.DefaultCapacity.
	Capacity  int
	Tuning    curve.Tuning
	EdgeColor colorful.Color
	// Outline enables the second, edge-colored pass.
	Outline bool
	// Source drives the curves. Nil selects a math/rand source seeded with Seed.
	Source curve.Source
	Seed   int64
}

// DefaultConfig returns the stock look: 40 wings, default tuning, white edges.
func DefaultConfig() Config {
	return Config{
		Capacity:  wing.DefaultCapacity,
		Tuning:    curve.DefaultTuning(),
		EdgeColor: colorful.Color{R: 1, G: 1, B: 1},
		Outline:   true,
		Seed:      1,
	}
}

// Engine is one independent animation. All methods are safe for concurrent
// use; Advance and Render are serialized so a frame never sees a half-done
// push.
type Engine struct {
	mu sync.Mutex

	id  uuid.UUID
	log Logger
	r   Renderer

	curves  *curve.Set
	history *wing.History
	outline bool

	// populated[slot] is the Seq of the state whose resource the slot holds.
	populated []uint64

	width, height int
	proj          mgl32.Mat4
	view          mgl32.Mat4

	frames []wing.State
	cum    []mgl32.Mat4
}

// New initializes an engine: curves from cfg.Tuning and an empty history.
// log may be nil.
func New(cfg Config, r Renderer, log Logger) (*Engine, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	src := cfg.Source
	if src == nil {
		src = curve.NewRandSource(cfg.Seed)
	}
	curves, err := curve.NewSet(cfg.Tuning, src)
	if err != nil {
		return nil, fmt.Errorf("engine: tuning: %w", err)
	}
	h := wing.NewHistory(cfg.Capacity, cfg.EdgeColor, xform.Static)

	e := &Engine{
		id:        uuid.New(),
		log:       log,
		r:         r,
		curves:    curves,
		history:   h,
		outline:   cfg.Outline,
		populated: make([]uint64, h.Cap()),
		view:      xform.View(),
		frames:    make([]wing.State, 0, h.Cap()),
		cum:       make([]mgl32.Mat4, 0, h.Cap()),
	}
	e.resize(1, 1)
	e.logf("initialized: %d wings, outline=%t", h.Cap(), e.outline)
	return e, nil
}

// ID identifies the engine in logs when several run side by side.
func (e *Engine) ID() uuid.UUID { return e.id }

// Advance runs one tick: every curve steps once, the result is pushed as the
// newest wing and the renderer repopulates the wing's slot.
//
// On a population error the wing stays in the history with its slot marked
// unpopulated; Render refuses frames that contain it.
func (e *Engine) Advance() (wing.State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.history.Push(e.curves.Advance())
	e.populated[s.Slot] = 0
	if err := e.r.Populate(s.Slot, s); err != nil {
		e.logf("populate slot %d for tick %d: %v", s.Slot, s.Seq, err)
		return s, fmt.Errorf("tick %d slot %d: %w: %w", s.Seq, s.Slot, ErrResourceInitializationFailed, err)
	}
	e.populated[s.Slot] = s.Seq
	return s, nil
}

// Render draws every wing, newest first: a fill pass and, when enabled, an
// outline pass. A viewport size change is applied as a Resize first.
func (e *Engine) Render(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width != e.width || height != e.height {
		e.resize(width, height)
	}

	e.frames = e.history.Frames(e.frames[:0])
	for _, f := range e.frames {
		if e.populated[f.Slot] != f.Seq {
			return fmt.Errorf("render tick %d slot %d: %w", f.Seq, f.Slot, ErrResourceInitializationFailed)
		}
	}
	e.cum = xform.Cumulative(e.frames, e.cum)

	if err := e.r.Begin(width, height, e.proj, e.view); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	e.drawPass(PassFill)
	if e.outline {
		e.drawPass(PassOutline)
	}
	if err := e.r.End(); err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	return nil
}

func (e *Engine) drawPass(p Pass) {
	for i := range e.frames {
		f := &e.frames[i]
		c := f.Color
		if p == PassOutline {
			c = f.EdgeColor
		}
		e.r.Draw(p, f.Slot, e.cum[i], c)
	}
}

// Resize recomputes the projection for a viewport and returns it.
func (e *Engine) Resize(width, height int) mgl32.Mat4 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if width != e.width || height != e.height {
		e.resize(width, height)
		e.logf("resize %dx%d", width, height)
	}
	return e.proj
}

func (e *Engine) resize(width, height int) {
	e.width, e.height = width, height
	e.proj = xform.Projection(width, height)
}

// Projection returns the current projection matrix.
func (e *Engine) Projection() mgl32.Mat4 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.proj
}

// View returns the camera matrix.
func (e *Engine) View() mgl32.Mat4 { return e.view }

// SetOutline enables or disables the outline pass.
func (e *Engine) SetOutline(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.outline = on
}

func (e *Engine) Outline() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.outline
}

// Frames appends the current wings to dst, newest first.
func (e *Engine) Frames(dst []wing.State) []wing.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Frames(dst)
}

// Ticks returns the number of Advance calls so far.
func (e *Engine) Ticks() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Pushes()
}

// Len returns the number of wings currently held.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// Cap returns the configured wing count.
func (e *Engine) Cap() int { return len(e.populated) }

func (e *Engine) logf(format string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.WriteLineString("engine " + e.id.String()[:8] + ": " + fmt.Sprintf(format, args...))
}
