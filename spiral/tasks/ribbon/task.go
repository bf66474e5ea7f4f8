// Package ribbon is the wings animation as a host app: it ticks the engine
// from the HAL's millisecond clock, renders into the framebuffer and handles
// keyboard controls.
package ribbon

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"tinygo.org/x/tinyfont"

	"wings/hal"
	"wings/internal/buildinfo"
	"wings/spiral/engine"
	"wings/spiral/fonts/font3x5"
	"wings/spiral/quarkgl"
	"wings/spiral/wing"
)

var ErrNoFramebuffer = errors.New("ribbon: no RGB565 framebuffer")

const (
	// DefaultTickMillis is the animation tick period.
	DefaultTickMillis = 33

	// maxCatchUp bounds the ticks run in one step after a stall.
	maxCatchUp = 4
)

// Config configures a Task.
type Config struct {
	Engine engine.Config
	// TickMillis is the animation tick period in host milliseconds.
	TickMillis uint64
	HUD        bool
}

func DefaultConfig() Config {
	return Config{
		Engine:     engine.DefaultConfig(),
		TickMillis: DefaultTickMillis,
		HUD:        true,
	}
}

type Task struct {
	log   hal.Logger
	fb    hal.Framebuffer
	keys  <-chan hal.KeyEvent
	ticks <-chan uint64

	eng    *engine.Engine
	wr     *wingRenderer
	target quarkgl.RGB565Target

	font       tinyfont.Fonter
	fontHeight int16

	w, h int

	interval    uint64
	now         uint64
	lastAdvance uint64

	paused bool
	hud    bool
}

// New builds the task on h. The framebuffer must be RGB565.
func New(h hal.HAL, cfg Config) (*Task, error) {
	if h == nil || h.Display() == nil {
		return nil, ErrNoFramebuffer
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoFramebuffer
	}
	if cfg.TickMillis == 0 {
		cfg.TickMillis = DefaultTickMillis
	}

	t := &Task{
		log:      h.Logger(),
		fb:       fb,
		interval: cfg.TickMillis,
		hud:      cfg.HUD,
		font:     font3x5.Font,
	}
	t.fontHeight = int16(t.font.GetYAdvance())
	if in := h.Input(); in != nil && in.Keyboard() != nil {
		t.keys = in.Keyboard().Events()
	}
	if tm := h.Time(); tm != nil {
		t.ticks = tm.Ticks()
	}

	slots := cfg.Engine.Capacity
	if slots <= 0 {
		slots = wing.DefaultCapacity
	}
	t.wr = newWingRenderer(slots, fb.Width(), fb.Height())

	eng, err := engine.New(cfg.Engine, t.wr, t.log)
	if err != nil {
		return nil, fmt.Errorf("ribbon: %w", err)
	}
	t.eng = eng
	return t, nil
}

// Engine exposes the animation for inspection.
func (t *Task) Engine() *engine.Engine { return t.eng }

// Step handles pending input, runs the ticks that are due and renders one
// frame. It returns hal.ErrExit when the user quits.
func (t *Task) Step() error {
	if err := t.handleInput(); err != nil {
		return err
	}
	if err := t.tick(); err != nil {
		return err
	}
	return t.render()
}

func (t *Task) handleInput() error {
	for {
		select {
		case ev, ok := <-t.keys:
			if !ok {
				t.keys = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape {
				return t.exit()
			}
			switch ev.Rune {
			case 'q', 'Q', 0x03:
				return t.exit()
			case 'o', 'O':
				t.eng.SetOutline(!t.eng.Outline())
			case 'w', 'W':
				t.wr.wireframe = !t.wr.wireframe
			case ' ':
				t.paused = !t.paused
			case 'h', 'H':
				t.hud = !t.hud
			}
		default:
			return nil
		}
	}
}

func (t *Task) exit() error {
	t.logf("exit at tick %d", t.eng.Ticks())
	return hal.ErrExit
}

func (t *Task) tick() error {
	for drained := false; !drained; {
		select {
		case now := <-t.ticks:
			t.now = now
		default:
			drained = true
		}
	}

	if t.paused {
		t.lastAdvance = t.now
		return nil
	}
	for n := 0; t.now-t.lastAdvance >= t.interval; n++ {
		if n == maxCatchUp {
			t.lastAdvance = t.now
			break
		}
		if _, err := t.eng.Advance(); err != nil {
			return fmt.Errorf("ribbon: %w", err)
		}
		t.lastAdvance += t.interval
	}
	return nil
}

func (t *Task) render() error {
	w, h := t.fb.Width(), t.fb.Height()
	if w != t.w || h != t.h {
		t.w, t.h = w, h
		t.eng.Resize(w, h)
	}

	t.target = quarkgl.RGB565Target{
		Buf:    t.fb.Buffer(),
		Stride: t.fb.StrideBytes(),
		W:      w,
		H:      h,
	}
	t.wr.target = &t.target
	if err := t.eng.Render(w, h); err != nil {
		return fmt.Errorf("ribbon: %w", err)
	}

	if t.hud {
		t.drawHUD()
	}
	return t.fb.Present()
}

func (t *Task) drawHUD() {
	bright := color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	dim := color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}

	line := int(t.fontHeight) + 1
	t.drawText(4, 4, "WINGS "+buildinfo.Short(), bright)
	t.drawText(4, 4+line, fmt.Sprintf("TICK %d  %d/%d", t.eng.Ticks(), t.eng.Len(), t.eng.Cap()), bright)

	var flags []string
	if t.paused {
		flags = append(flags, "PAUSED")
	}
	if !t.eng.Outline() {
		flags = append(flags, "NO OUTLINE")
	}
	if t.wr.wireframe {
		flags = append(flags, "WIREFRAME")
	}
	if len(flags) > 0 {
		t.drawText(4, 4+2*line, strings.Join(flags, " "), bright)
	}
	t.drawText(4, t.h-line-2, "Q EXIT  O OUTLINE  W WIRE  SPACE PAUSE  H HUD", dim)
}

func (t *Task) drawText(x, y int, s string, c color.RGBA) {
	d := &fbDisplayer{fb: t.fb}
	tinyfont.WriteLine(d, t.font, int16(x), int16(y)+t.fontHeight-1, s, c)
}

func (t *Task) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString("ribbon: " + fmt.Sprintf(format, args...))
}
