// Package oscillator holds the physical parameters of the damped
// mass-spring system m*x'' + b*x' + k*x = 0 and every constant derived
// from them. The derived accessors are the single home for these
// formulas so no check recomputes them with its own tolerance.
package oscillator

import "math"

type Parameters struct {
	Mass            float64
	SpringConstant  float64
	Damping         float64
	InitialPosition float64
	InitialVelocity float64
}

// NaturalFrequency is the undamped angular frequency w0 = sqrt(k/m).
func (p Parameters) NaturalFrequency() float64 {
	return math.Sqrt(p.SpringConstant / p.Mass)
}

// Period is the undamped oscillation period 2*pi/w0.
func (p Parameters) Period() float64 {
	return 2 * math.Pi / p.NaturalFrequency()
}

// CriticalDamping is b_c = 2*sqrt(m*k), the boundary between oscillatory
// and monotonic decay.
func (p Parameters) CriticalDamping() float64 {
	return 2 * math.Sqrt(p.Mass*p.SpringConstant)
}

// DampingRatio is b/b_c: <1 underdamped, 1 critical, >1 overdamped.
func (p Parameters) DampingRatio() float64 {
	return p.Damping / p.CriticalDamping()
}

// Energy is the mechanical energy 0.5*m*v^2 + 0.5*k*x^2.
func (p Parameters) Energy(x, v float64) float64 {
	return 0.5*p.Mass*v*v + 0.5*p.SpringConstant*x*x
}

// InitialEnergy is the mechanical energy at the initial conditions.
func (p Parameters) InitialEnergy() float64 {
	return p.Energy(p.InitialPosition, p.InitialVelocity)
}
