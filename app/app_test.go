package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wings/hal"
	"wings/spiral/curve"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := writeFile(t, `
radius:
  max: 9
  initial: 4
delta_z:
  min: -2
  max: -0.5
  max_velocity: 0.02
edge_color: [1, 0.5, 0]
`)
	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadTuning(path))

	def := curve.DefaultTuning()
	assert.Equal(t, 9.0, cfg.Tuning.Radius.Max)
	assert.Equal(t, 4.0, cfg.Tuning.Radius.Initial)
	assert.Equal(t, def.Radius.Min, cfg.Tuning.Radius.Min, "omitted fields keep defaults")
	assert.Equal(t, def.Radius.MaxVelocity, cfg.Tuning.Radius.MaxVelocity)

	assert.Equal(t, -2.0, cfg.Tuning.DeltaZ.Min)
	assert.Equal(t, 0.02, cfg.Tuning.DeltaZ.MaxVelocity)
	assert.Equal(t, def.DeltaZ.TicksPerAccelerationChange, cfg.Tuning.DeltaZ.TicksPerAccelerationChange)

	assert.Equal(t, def.Yaw, cfg.Tuning.Yaw, "omitted curves keep defaults")
	assert.Equal(t, colorful.Color{R: 1, G: 0.5, B: 0}, cfg.EdgeColor)
}

func TestLoadTuningWraps(t *testing.T) {
	path := writeFile(t, "roll:\n  wraps: false\n")
	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadTuning(path))
	assert.False(t, cfg.Tuning.Roll.Wraps)
	assert.Equal(t, 360.0, cfg.Tuning.Roll.Max)
}

func TestLoadTuningErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"bad bounds", "red:\n  min: 1\n  max: 0\n", curve.ErrInvalidBounds},
		{"negative limit", "green:\n  max_acceleration: -1\n", curve.ErrNegativeLimit},
		{"short edge color", "edge_color: [1, 1]\n", ErrBadEdgeColor},
		{"edge color range", "edge_color: [1, 2, 0]\n", ErrBadEdgeColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			before := cfg
			err := cfg.LoadTuning(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, cfg, "config untouched on error")
		})
	}
}

func TestLoadTuningUnknownKey(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadTuning(writeFile(t, "radious:\n  max: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radious")
}

func TestLoadTuningMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type lineLog struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLog) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLog) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

type memFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *memFB) Width() int              { return f.w }
func (f *memFB) Height() int             { return f.h }
func (f *memFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *memFB) StrideBytes() int        { return f.w * 2 }
func (f *memFB) Buffer() []byte          { return f.buf }
func (f *memFB) Present() error          { f.presents++; return nil }
func (f *memFB) ClearRGB(r, g, b uint8) {
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i], f.buf[i+1] = 0xFF, 0xFF
	}
}

type memHAL struct {
	log   *lineLog
	fb    *memFB
	ticks chan uint64
}

func newMemHAL() *memHAL {
	return &memHAL{
		log:   &lineLog{},
		fb:    &memFB{w: 96, h: 64, buf: make([]byte, 96*64*2)},
		ticks: make(chan uint64, 256),
	}
}

func (h *memHAL) Logger() hal.Logger           { return h.log }
func (h *memHAL) Display() hal.Display         { return h }
func (h *memHAL) Input() hal.Input             { return nil }
func (h *memHAL) Time() hal.Time               { return h }
func (h *memHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *memHAL) Ticks() <-chan uint64         { return h.ticks }

func TestNewWithConfigSteps(t *testing.T) {
	h := newMemHAL()
	cfg := DefaultConfig()
	cfg.Seed = 7
	step := NewWithConfig(h, cfg)

	for i := uint64(1); i <= 100; i++ {
		h.ticks <- i
	}
	require.NoError(t, step())
	assert.Equal(t, 1, h.fb.presents)
	assert.Contains(t, bannerLine(t, h), "40 wings, seed 7")
}

func TestNewWithConfigLogsEffectiveWingCount(t *testing.T) {
	h := newMemHAL()
	cfg := DefaultConfig()
	cfg.Wings = -5
	cfg.Seed = 3
	NewWithConfig(h, cfg)
	assert.Contains(t, bannerLine(t, h), "40 wings, seed 3")

	h = newMemHAL()
	cfg.Wings = 12
	NewWithConfig(h, cfg)
	assert.Contains(t, bannerLine(t, h), "12 wings, seed 3")
}

func bannerLine(t *testing.T, h *memHAL) string {
	t.Helper()
	for _, l := range h.log.lines {
		if strings.HasPrefix(l, "wings ") {
			return l
		}
	}
	t.Fatalf("no banner in %q", h.log.lines)
	return ""
}

func TestNewWithConfigReportsBuildError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tuning.Blue.Min = 2
	step := NewWithConfig(newMemHAL(), cfg)
	assert.ErrorIs(t, step(), curve.ErrInvalidBounds)
}

func TestGuardStepRecoversPanic(t *testing.T) {
	h := newMemHAL()
	step := guardStep(h, func() error { panic("slot table corrupt") })

	err := step()
	require.True(t, errors.Is(err, ErrPanic))
	assert.Contains(t, err.Error(), "slot table corrupt")

	assert.Equal(t, "wings panic: slot table corrupt", h.log.lines[0])
	assert.Greater(t, len(h.log.lines), 1, "stack is logged")
	assert.Equal(t, 1, h.fb.presents)

	var black int
	for i := 0; i+1 < len(h.fb.buf); i += 2 {
		if h.fb.buf[i] == 0 && h.fb.buf[i+1] == 0 {
			black++
		}
	}
	assert.Positive(t, black, "panic text drawn")
}

func TestGuardStepPassesErrors(t *testing.T) {
	boom := errors.New("boom")
	step := guardStep(newMemHAL(), func() error { return boom })
	assert.ErrorIs(t, step(), boom)
	assert.NoError(t, guardStep(newMemHAL(), func() error { return nil })())
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	assert.Equal(t, "hé", p)
	assert.Equal(t, "llo", r)
	p, r = takeRunes("ab", 5)
	assert.Equal(t, "ab", p)
	assert.Empty(t, r)
	assert.False(t, strings.Contains(p, "\n"))
}
