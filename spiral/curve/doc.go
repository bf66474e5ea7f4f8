// Package curve generates bounded random walks for the wing animation.
//
// A Curve is one scalar: its acceleration is redrawn from a uniform
// distribution every few ticks, its velocity is clamped, and its value is
// either clamped or wrapped into [Min, Max]. A Set advances the ten curves
// that drive one wing per tick.
package curve
