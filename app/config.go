package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"wings/spiral/curve"
	"wings/spiral/engine"
	"wings/spiral/tasks/ribbon"
	"wings/spiral/wing"
)

var ErrBadEdgeColor = errors.New("edge_color must be three channels in [0, 1]")

type Config struct {
	// Wings is the number of wings kept in the ribbon.
	Wings int
	// TickMillis is the animation tick period.
	TickMillis uint64
	// Seed seeds the curves. Zero picks a time-based seed.
	Seed    int64
	Outline bool
	HUD     bool

	Tuning    curve.Tuning
	EdgeColor colorful.Color
}

func DefaultConfig() Config {
	ec := engine.DefaultConfig()
	return Config{
		Wings:      wing.DefaultCapacity,
		TickMillis: ribbon.DefaultTickMillis,
		Outline:    ec.Outline,
		HUD:        true,
		Tuning:     ec.Tuning,
		EdgeColor:  ec.EdgeColor,
	}
}

// tuningFile is the YAML layout of a tuning file: one mapping per curve plus
// the edge color.
type tuningFile struct {
	curve.Tuning `yaml:",inline"`
	EdgeColor    []float64 `yaml:"edge_color"`
}

// LoadTuning overrides c's tuning from a YAML file. Curves and fields the file
// omits keep their current values. Unknown keys are an error.
func (c *Config) LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tuning: %w", err)
	}
	defer f.Close()

	tf := tuningFile{Tuning: c.Tuning}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := tf.Tuning.Validate(); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	if tf.EdgeColor != nil {
		if len(tf.EdgeColor) != 3 {
			return fmt.Errorf("tuning %s: %w", path, ErrBadEdgeColor)
		}
		for _, v := range tf.EdgeColor {
			if v < 0 || v > 1 {
				return fmt.Errorf("tuning %s: %w", path, ErrBadEdgeColor)
			}
		}
		c.EdgeColor = colorful.Color{R: tf.EdgeColor[0], G: tf.EdgeColor[1], B: tf.EdgeColor[2]}
	}
	c.Tuning = tf.Tuning
	return nil
}

func (c Config) ribbon(seed int64) ribbon.Config {
	return ribbon.Config{
		Engine: engine.Config{
			Capacity:  c.Wings,
			Tuning:    c.Tuning,
			EdgeColor: c.EdgeColor,
			Outline:   c.Outline,
			Seed:      seed,
		},
		TickMillis: c.TickMillis,
		HUD:        c.HUD,
	}
}
