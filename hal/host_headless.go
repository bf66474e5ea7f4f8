//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz int
	// Ticks stops the run after this many steps; zero runs until ctx ends.
	Ticks uint64

	Width, Height int

	// Snapshot, when set, receives the final frame as a PNG.
	Snapshot string
}

// RunHeadless runs the app without opening a window. Each step advances the
// tick stream by exactly 1000/Hz milliseconds, so runs are repeatable
// regardless of how fast the host is.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := newHostHAL(cfg.Width, cfg.Height, os.Stdout)
	return runHeadless(ctx, h, newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	msPerStep := uint64(d / time.Millisecond)
	if msPerStep == 0 {
		msPerStep = 1
	}

	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.stepN(msPerStep)
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrExit) {
						return errors.Join(err, writeSnapshot(cfg.Snapshot, h.fb))
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return writeSnapshot(cfg.Snapshot, h.fb)
			}
		}
	}
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.image(nil)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
