package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wings/spiral/curve"
)

type countingSource struct{ draws int }

func (s *countingSource) Uniform(lo, hi float64) float64 {
	s.draws++
	return (lo + hi) / 2
}

func everyTick(t curve.Tuning) curve.Tuning {
	for _, s := range []*curve.Spec{
		&t.Radius, &t.Angle, &t.DeltaAngle, &t.DeltaZ,
		&t.Roll, &t.Pitch, &t.Yaw,
		&t.Red, &t.Green, &t.Blue,
	} {
		s.TicksPerAccelerationChange = 0
	}
	return t
}

func TestDefaultTuningValid(t *testing.T) {
	require.NoError(t, curve.DefaultTuning().Validate())
}

func TestSetAdvancesEveryCurveOnce(t *testing.T) {
	src := &countingSource{}
	s, err := curve.NewSet(everyTick(curve.DefaultTuning()), src)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		s.Advance()
		require.Equal(t, 10*i, src.draws)
	}
}

func TestSetSampleWithinTuning(t *testing.T) {
	tun := curve.DefaultTuning()
	s, err := curve.NewSet(tun, curve.NewRandSource(99))
	require.NoError(t, err)

	for i := 0; i < 3000; i++ {
		p := s.Advance()
		require.Equal(t, p, s.Current())
		assert.True(t, p.Radius >= tun.Radius.Min && p.Radius <= tun.Radius.Max)
		assert.True(t, p.DeltaZ >= tun.DeltaZ.Min && p.DeltaZ <= tun.DeltaZ.Max)
		assert.True(t, p.Angle >= 0 && p.Angle < 360)
		assert.True(t, p.Red >= 0 && p.Red <= 1)
		assert.True(t, p.Green >= 0 && p.Green <= 1)
		assert.True(t, p.Blue >= 0 && p.Blue <= 1)
	}
}

func TestNewSetNamesBadCurve(t *testing.T) {
	tun := curve.DefaultTuning()
	tun.Pitch.Max = tun.Pitch.Min

	_, err := curve.NewSet(tun, curve.NewRandSource(1))
	require.ErrorIs(t, err, curve.ErrInvalidBounds)
	assert.Contains(t, err.Error(), "pitch")
	assert.ErrorIs(t, tun.Validate(), curve.ErrInvalidBounds)
}
