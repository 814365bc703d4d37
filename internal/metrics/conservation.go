// Package metrics provides conservation diagnostics that plug into
// the simulator's per-step Metric hook.
package metrics

import (
	"math"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/vec"
)

// EnergyDrift tracks the worst relative deviation of total energy
// from its value at the first observation.
type EnergyDrift struct {
	g, eps   float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g, eps float64) *EnergyDrift {
	return &EnergyDrift{g: g, eps: eps}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(sys *body.System, t float64) {
	energy := sys.TotalEnergy(e.g, e.eps)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		if drift > e.maxDrift {
			e.maxDrift = drift
		}
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the worst absolute deviation of total linear
// momentum from its value at the first observation. For an isolated
// system this should stay at numerical precision for every
// integrator and force model.
type MomentumDrift struct {
	initial  vec.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(sys *body.System, t float64) {
	p := sys.Momentum()

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	if drift := p.Sub(m.initial).Norm(); drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = vec.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}

// AngularMomentumDrift tracks the worst relative deviation of total
// angular momentum about the origin.
type AngularMomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(sys *body.System, t float64) {
	l := sys.AngularMomentum()

	if a.samples == 0 {
		a.initial = l
	}
	a.samples++

	drift := math.Abs(l - a.initial)
	if a.initial != 0 {
		drift /= math.Abs(a.initial)
	}
	if drift > a.maxDrift {
		a.maxDrift = drift
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
