// Package app wires the wings animation to a HAL.
package app

import (
	"fmt"
	"time"

	"wings/hal"
	"wings/internal/buildinfo"
	"wings/spiral/tasks/ribbon"
)

// NewWithConfig builds the animation on h and returns its step function.
// A construction error is reported by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	task, err := ribbon.New(h, cfg.ribbon(seed))
	if err != nil {
		return func() error { return err }
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("wings %s: %d wings, seed %d", buildinfo.Long(), task.Engine().Cap(), seed))
	}
	return guardStep(h, task.Step)
}
