// Package wave holds the per-ray smoothing state.
package wave

import "math"

// snapEpsilon absorbs float drift so a point lands on its target on the
// tick where the remaining distance is one step, not one tick later.
const snapEpsilon = 1e-9

// Point is a scalar that chases a target at a fixed rate of at most step
// per tick, never passing it.
type Point struct {
	current float64
	target  float64
	step    float64
}

// NewPoint creates a point resting at value with the given per-tick step.
func NewPoint(value, step float64) Point {
	return Point{current: value, target: value, step: math.Abs(step)}
}

// SetTarget changes the value the point is heading for. No clamping.
func (p *Point) SetTarget(v float64) {
	p.target = v
}

// Target returns the value the point is heading for.
func (p *Point) Target() float64 { return p.target }

// Current returns the unclamped smoothed value.
func (p *Point) Current() float64 { return p.current }

// Step returns the per-tick increment.
func (p *Point) Step() float64 { return p.step }

// Tick moves the point one step toward its target.
func (p *Point) Tick() {
	d := p.target - p.current
	switch {
	case d == 0:
		return
	case math.Abs(d) <= p.step+snapEpsilon:
		p.current = p.target
	case d > 0:
		p.current += p.step
	default:
		p.current -= p.step
	}
}

// DisplayValue returns the current value clamped to [0, 1].
func (p *Point) DisplayValue() float64 {
	if p.current < 0 {
		return 0
	}
	if p.current > 1 {
		return 1
	}
	return p.current
}

// Settled reports whether the point has reached its target.
func (p *Point) Settled() bool {
	return p.current == p.target
}
