//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferResizeAtStepBoundary(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	assert.Equal(t, 8, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 16)

	assert.False(t, fb.applyResize(), "nothing pending")

	fb.requestResize(6, 3)
	assert.Equal(t, 4, fb.Width(), "resize waits for applyResize")
	require.True(t, fb.applyResize())
	assert.Equal(t, 6, fb.Width())
	assert.Equal(t, 3, fb.Height())
	assert.Equal(t, 12, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 36)

	fb.requestResize(6, 3)
	assert.False(t, fb.applyResize(), "same size is not a change")
}

func TestFramebufferClearAndPixel(t *testing.T) {
	fb := newHostFramebuffer(3, 3)
	fb.ClearRGB(0xFF, 0, 0)
	r, g, b := fb.pixel(2, 2)
	assert.Equal(t, [3]uint8{0xFF, 0, 0}, [3]uint8{r, g, b})

	r, g, b = fb.pixel(5, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, "out of range reads black")

	img := fb.image(nil)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, uint8(0xFF), img.Pix[0])
	assert.Same(t, img, fb.image(img), "same size reuses the image")
}

func TestHostTimeStepN(t *testing.T) {
	ht := newHostTime()
	ht.stepN(3)
	assert.Equal(t, uint64(1), <-ht.Ticks())
	assert.Equal(t, uint64(2), <-ht.Ticks())
	assert.Equal(t, uint64(3), <-ht.Ticks())
}

func TestHostTimeStepCarriesRemainder(t *testing.T) {
	ht := newHostTime()
	clock := time.Unix(100, 0)
	ht.now = func() time.Time { return clock }

	ht.step(1)
	require.Len(t, ht.ticks, 1, "first step")

	clock = clock.Add(2500 * time.Microsecond)
	ht.step(1)
	assert.Len(t, ht.ticks, 3)

	clock = clock.Add(600 * time.Microsecond)
	ht.step(1)
	assert.Len(t, ht.ticks, 4, "carried half tick completes")

	clock = clock.Add(-time.Second)
	ht.step(1)
	assert.Len(t, ht.ticks, 4, "clock going back emits nothing")
	assert.Equal(t, uint64(4), ht.seq)
}

func TestHostTimeFullBacklogKeepsCounting(t *testing.T) {
	ht := newHostTime()
	ht.stepN(tickBacklog + 10)
	assert.Len(t, ht.ticks, tickBacklog)
	assert.Equal(t, uint64(tickBacklog+10), ht.seq)

	for i := 0; i < tickBacklog; i++ {
		<-ht.ticks
	}
	ht.stepN(1)
	assert.Equal(t, uint64(tickBacklog+11), <-ht.Ticks())
}

func TestKeyboardDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch)+5; i++ {
		k.push(KeyEvent{Press: true, Rune: 'a'})
	}
	assert.Len(t, k.ch, cap(k.ch))
}

func TestLoggerWritesLines(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	l := &hostLogger{w: w}
	l.WriteLineString("one")
	l.WriteLineBytes([]byte("two"))
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(out))
}

func TestRunHeadlessDeterministicTicks(t *testing.T) {
	h := newHostHAL(8, 8, io.Discard)
	var steps int
	var last uint64
	newApp := func(hh HAL) func() error {
		ticks := hh.Time().Ticks()
		return func() error {
			steps++
			for {
				select {
				case last = <-ticks:
				default:
					return nil
				}
			}
		}
	}

	err := runHeadless(context.Background(), h, newApp, HeadlessConfig{Hz: 100, Ticks: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, steps)
	assert.Equal(t, uint64(40), last, "10ms per step at 100Hz")
}

func TestRunHeadlessSnapshotOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	h := newHostHAL(5, 4, io.Discard)
	newApp := func(hh HAL) func() error {
		fb := hh.Display().Framebuffer()
		return func() error {
			fb.ClearRGB(0, 0xFF, 0)
			return ErrExit
		}
	}

	err := runHeadless(context.Background(), h, newApp, HeadlessConfig{Hz: 200, Snapshot: path})
	require.True(t, errors.Is(err, ErrExit))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	_, g, _, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xFFFF), g)
}

func TestRunHeadlessContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := runHeadless(ctx, newHostHAL(2, 2, io.Discard), func(HAL) func() error { return nil }, HeadlessConfig{Hz: 100})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := runHeadless(context.Background(), newHostHAL(2, 2, io.Discard), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 100, Ticks: 10})
	assert.ErrorIs(t, err, boom)
}

func TestRGB565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    [3]uint8
	}{
		{"white", 0xFF, 0xFF, 0xFF, [3]uint8{0xFF, 0xFF, 0xFF}},
		{"black", 0, 0, 0, [3]uint8{0, 0, 0}},
		{"red", 0xFF, 0, 0, [3]uint8{0xFF, 0, 0}},
		{"low bits dropped", 0x07, 0x03, 0x07, [3]uint8{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 2)
			packRGB565(tt.r, tt.g, tt.b).store(buf)
			r, g, b := loadRGB565(buf).rgb888()
			assert.Equal(t, tt.want, [3]uint8{r, g, b})
		})
	}

	buf := []byte{0x00, 0xF8}
	assert.Equal(t, packRGB565(0xFF, 0, 0), loadRGB565(buf), "little-endian")
}
