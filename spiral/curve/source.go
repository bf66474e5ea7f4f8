package curve

import "math/rand"

// Source supplies the uniform draws used to re-randomize acceleration.
//
// Tests substitute a fixed sequence to replay a trajectory exactly.
type Source interface {
	Uniform(lo, hi float64) float64
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a Source backed by math/rand.
//
// Not safe for concurrent use; a Set owns its Source.
func NewRandSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}
