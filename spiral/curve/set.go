package curve

import "fmt"

// Sample is one tick's output of a Set.
type Sample struct {
	Radius     float64
	Angle      float64
	DeltaAngle float64
	DeltaZ     float64
	Roll       float64
	Pitch      float64
	Yaw        float64
	Red        float64
	Green      float64
	Blue       float64
}

// Spec is the configuration of one curve in a Tuning.
type Spec struct {
	Config  `yaml:",inline"`
	Initial float64 `yaml:"initial"`
}

// Tuning holds the per-curve constants of a Set. The values only shape the
// look of the animation; each parameter is tuned to drift at its own rate.
type Tuning struct {
	Radius     Spec `yaml:"radius"`
	Angle      Spec `yaml:"angle"`
	DeltaAngle Spec `yaml:"delta_angle"`
	DeltaZ     Spec `yaml:"delta_z"`
	Roll       Spec `yaml:"roll"`
	Pitch      Spec `yaml:"pitch"`
	Yaw        Spec `yaml:"yaw"`
	Red        Spec `yaml:"red"`
	Green      Spec `yaml:"green"`
	Blue       Spec `yaml:"blue"`
}

func angleSpec(maxVelocity, maxAcceleration float64, ticks uint, initial float64) Spec {
	return Spec{
		Config: Config{
			Min: 0, Max: 360, Wraps: true,
			MaxVelocity:                maxVelocity,
			MaxAcceleration:            maxAcceleration,
			TicksPerAccelerationChange: ticks,
		},
		Initial: initial,
	}
}

func unitSpec(maxVelocity, maxAcceleration float64, ticks uint, initial float64) Spec {
	return Spec{
		Config: Config{
			Min: 0, Max: 1,
			MaxVelocity:                maxVelocity,
			MaxAcceleration:            maxAcceleration,
			TicksPerAccelerationChange: ticks,
		},
		Initial: initial,
	}
}

// DefaultTuning returns constants sized for the view volume in package xform.
func DefaultTuning() Tuning {
	return Tuning{
		Radius: Spec{
			Config: Config{
				Min: 0, Max: 12,
				MaxVelocity:                0.12,
				MaxAcceleration:            0.01,
				TicksPerAccelerationChange: 90,
			},
			Initial: 7,
		},
		Angle: angleSpec(2.5, 0.2, 60, 0),
		DeltaAngle: Spec{
			Config: Config{
				Min: -18, Max: 18,
				MaxVelocity:                0.15,
				MaxAcceleration:            0.01,
				TicksPerAccelerationChange: 150,
			},
			Initial: 9,
		},
		DeltaZ: Spec{
			Config: Config{
				Min: -1.6, Max: -0.3,
				MaxVelocity:                0.01,
				MaxAcceleration:            0.001,
				TicksPerAccelerationChange: 120,
			},
			Initial: -0.9,
		},
		Roll:  angleSpec(2, 0.15, 70, 0),
		Pitch: angleSpec(1.5, 0.1, 80, 30),
		Yaw:   angleSpec(1.2, 0.1, 100, 0),
		Red:   unitSpec(0.012, 0.001, 100, 0.9),
		Green: unitSpec(0.015, 0.0012, 120, 0.5),
		Blue:  unitSpec(0.01, 0.0015, 140, 0.2),
	}
}

// Curve order inside a Set.
const (
	idxRadius = iota
	idxAngle
	idxDeltaAngle
	idxDeltaZ
	idxRoll
	idxPitch
	idxYaw
	idxRed
	idxGreen
	idxBlue
	numCurves
)

var curveNames = [numCurves]string{
	"radius", "angle", "delta_angle", "delta_z",
	"roll", "pitch", "yaw",
	"red", "green", "blue",
}

func (t Tuning) specs() [numCurves]Spec {
	return [numCurves]Spec{
		t.Radius, t.Angle, t.DeltaAngle, t.DeltaZ,
		t.Roll, t.Pitch, t.Yaw,
		t.Red, t.Green, t.Blue,
	}
}

// Validate checks every curve of t.
func (t Tuning) Validate() error {
	for i, s := range t.specs() {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%s: %w", curveNames[i], err)
		}
	}
	return nil
}

// Set is the ten independent curves that drive one wing per tick.
type Set struct {
	curves [numCurves]*Curve
}

// NewSet builds a Set from t. All curves share src.
func NewSet(t Tuning, src Source) (*Set, error) {
	var s Set
	for i, spec := range t.specs() {
		c, err := New(spec.Config, spec.Initial, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", curveNames[i], err)
		}
		s.curves[i] = c
	}
	return &s, nil
}

// Advance steps every curve exactly once.
func (s *Set) Advance() Sample {
	var v [numCurves]float64
	for i, c := range s.curves {
		v[i] = c.Advance()
	}
	return Sample{
		Radius:     v[idxRadius],
		Angle:      v[idxAngle],
		DeltaAngle: v[idxDeltaAngle],
		DeltaZ:     v[idxDeltaZ],
		Roll:       v[idxRoll],
		Pitch:      v[idxPitch],
		Yaw:        v[idxYaw],
		Red:        v[idxRed],
		Green:      v[idxGreen],
		Blue:       v[idxBlue],
	}
}

// Current returns the latest values without advancing.
func (s *Set) Current() Sample {
	return Sample{
		Radius:     s.curves[idxRadius].Value(),
		Angle:      s.curves[idxAngle].Value(),
		DeltaAngle: s.curves[idxDeltaAngle].Value(),
		DeltaZ:     s.curves[idxDeltaZ].Value(),
		Roll:       s.curves[idxRoll].Value(),
		Pitch:      s.curves[idxPitch].Value(),
		Yaw:        s.curves[idxYaw].Value(),
		Red:        s.curves[idxRed].Value(),
		Green:      s.curves[idxGreen].Value(),
		Blue:       s.curves[idxBlue].Value(),
	}
}
