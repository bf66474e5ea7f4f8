package curve

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidBounds = errors.New("curve: min must be less than max")
	ErrNegativeLimit = errors.New("curve: negative velocity or acceleration limit")
	ErrNilSource     = errors.New("curve: nil source")
)

// Config is the immutable shape of a Curve.
type Config struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Wraps bool    `yaml:"wraps"`

	MaxVelocity     float64 `yaml:"max_velocity"`
	MaxAcceleration float64 `yaml:"max_acceleration"`

	// TicksPerAccelerationChange is the number of ticks an acceleration is
	// held before a new one is drawn.
	TicksPerAccelerationChange uint `yaml:"ticks_per_acceleration_change"`
}

// Validate reports whether c describes a usable curve.
//
// Zero limits are legal: a zero MaxAcceleration gives constant velocity and a
// zero MaxVelocity a constant value.
func (c Config) Validate() error {
	if !(c.Min < c.Max) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, c.Min, c.Max)
	}
	if c.MaxVelocity < 0 || c.MaxAcceleration < 0 {
		return fmt.Errorf("%w: velocity %g, acceleration %g", ErrNegativeLimit, c.MaxVelocity, c.MaxAcceleration)
	}
	return nil
}

// Normalize maps v into the curve's range, wrapping or clamping.
func (c Config) Normalize(v float64) float64 {
	if c.Wraps {
		return wrap(v, c.Min, c.Max)
	}
	return clamp(v, c.Min, c.Max)
}

// Curve is a single bounded random walk.
type Curve struct {
	cfg Config
	src Source

	value        float64
	velocity     float64
	acceleration float64
	ticks        uint
}

// New returns a curve at rest at initial, normalized into range.
func New(cfg Config, initial float64, src Source) (*Curve, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Curve{
		cfg:   cfg,
		src:   src,
		value: cfg.Normalize(initial),
	}, nil
}

// Angle returns a curve over degrees [0, 360) that wraps.
func Angle(maxVelocity, maxAcceleration float64, ticksPerChange uint, initial float64, src Source) (*Curve, error) {
	return New(Config{
		Min:                        0,
		Max:                        360,
		Wraps:                      true,
		MaxVelocity:                maxVelocity,
		MaxAcceleration:            maxAcceleration,
		TicksPerAccelerationChange: ticksPerChange,
	}, initial, src)
}

// Unit returns a clamped curve over [0, 1], used for color channels.
func Unit(maxVelocity, maxAcceleration float64, ticksPerChange uint, initial float64, src Source) (*Curve, error) {
	return New(Config{
		Min:                        0,
		Max:                        1,
		MaxVelocity:                maxVelocity,
		MaxAcceleration:            maxAcceleration,
		TicksPerAccelerationChange: ticksPerChange,
	}, initial, src)
}

// Advance steps the curve by one tick and returns the new value.
func (c *Curve) Advance() float64 {
	c.ticks++
	if c.ticks > c.cfg.TicksPerAccelerationChange {
		c.acceleration = c.src.Uniform(-c.cfg.MaxAcceleration, c.cfg.MaxAcceleration)
		c.ticks = 0
	}
	c.velocity = clamp(c.velocity+c.acceleration, -c.cfg.MaxVelocity, c.cfg.MaxVelocity)
	c.value = c.cfg.Normalize(c.value + c.velocity)
	return c.value
}

func (c *Curve) Value() float64        { return c.value }
func (c *Curve) Velocity() float64     { return c.velocity }
func (c *Curve) Acceleration() float64 { return c.acceleration }
func (c *Curve) Config() Config        { return c.cfg }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap is a true modulo: math.Mod keeps the dividend's sign, so negative
// offsets are shifted back up by one span.
func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	r := math.Mod(v-lo, span)
	if r < 0 {
		r += span
	}
	// -tiny + span rounds up to span.
	if r >= span {
		r = 0
	}
	return lo + r
}
