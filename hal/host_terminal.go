//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// TerminalConfig controls the terminal host runner.
type TerminalConfig struct {
	Hz int
	// Ticks stops the run after this many steps; zero runs until exit.
	Ticks uint64
}

// halfBlock shows the upper pixel of a cell as foreground and the lower as
// background.
const halfBlock = '▀'

// RunTerminal runs the app in the controlling terminal. Each cell shows two
// framebuffer pixels stacked vertically, and the framebuffer follows the
// terminal size. Log lines are held until the terminal is restored.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	var logs bytes.Buffer
	runErr := runTerminal(ctx, screen, &logs, newApp, cfg)
	screen.Fini()
	os.Stdout.Write(logs.Bytes())
	return runErr
}

func runTerminal(ctx context.Context, screen tcell.Screen, logOut io.Writer, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	cols, rows := screen.Size()
	h := newHostHAL(max(cols, 1), max(rows*2, 1), logOut)
	h.fb.present = func() error {
		presentHalfBlocks(screen, h.fb)
		screen.Show()
		return nil
	}
	step := newApp(h)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil, *tcell.EventInterrupt:
				return nil
			case *tcell.EventResize:
				w, rh := ev.Size()
				h.fb.requestResize(max(w, 1), max(rh*2, 1))
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return ErrExit
				}
				if ke, ok := keyEventFromTcell(ev.Key(), ev.Rune()); ok {
					h.kbd.push(ke)
				}
			}
		}
	})

	g.Go(func() error {
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))

		t := time.NewTicker(d)
		defer t.Stop()

		var tick uint64
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-t.C:
				if h.fb.applyResize() {
					screen.Clear()
				}
				h.t.step(1)
				if step != nil {
					if err := step(); err != nil {
						return err
					}
				}
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	})

	return g.Wait()
}

func presentHalfBlocks(screen tcell.Screen, fb *hostFramebuffer) {
	for y := 0; y < fb.height; y += 2 {
		for x := 0; x < fb.width; x++ {
			tr, tg, tb := fb.pixel(x, y)
			br, bg, bb := fb.pixel(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}

// keyEventFromTcell maps a terminal key. Terminals report presses only.
func keyEventFromTcell(key tcell.Key, r rune) (KeyEvent, bool) {
	switch key {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: r}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace, Press: true}, true
	case tcell.KeyTab:
		return KeyEvent{Code: KeyTab, Press: true}, true
	}
	return KeyEvent{}, false
}
