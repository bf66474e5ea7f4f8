//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wings/app"
	"wings/hal"
)

func main() {
	cfg := app.DefaultConfig()
	var (
		headless  hal.HeadlessConfig
		term      hal.TerminalConfig
		window    hal.WindowConfig
		useHead   bool
		useTerm   bool
		tuning    string
		tickMilli uint
	)
	flag.BoolVar(&useHead, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless and terminal mode (0 = run forever).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the final headless frame to this PNG file.")
	flag.BoolVar(&useTerm, "terminal", false, "Render in the terminal with half-block cells.")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Framebuffer width in window and headless mode.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Framebuffer height in window and headless mode.")
	flag.IntVar(&window.Scale, "scale", 2, "Screen pixels per framebuffer pixel in window mode.")
	flag.IntVar(&cfg.Wings, "wings", cfg.Wings, "Number of wings in the ribbon.")
	flag.UintVar(&tickMilli, "tick-ms", uint(cfg.TickMillis), "Animation tick period in milliseconds.")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Curve seed (0 = time based).")
	flag.BoolVar(&cfg.Outline, "outline", cfg.Outline, "Draw the edge-colored outline pass.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Show the text overlay.")
	flag.StringVar(&tuning, "tuning", "", "YAML file overriding curve tuning and edge color.")
	flag.Parse()

	cfg.TickMillis = uint64(tickMilli)
	if tuning != "" {
		if err := cfg.LoadTuning(tuning); err != nil {
			fail(err)
		}
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case useHead:
		headless.Width, headless.Height = window.Width, window.Height
		err = hal.RunHeadless(ctx, newApp, headless)
	case useTerm:
		term.Hz, term.Ticks = headless.Hz, headless.Ticks
		err = hal.RunTerminal(ctx, newApp, term)
	default:
		err = hal.RunWindow(newApp, window)
	}
	if err == nil || errors.Is(err, hal.ErrExit) || errors.Is(err, context.Canceled) {
		return
	}
	fail(err)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
