package body

import (
	"fmt"
	"math"

	"github.com/celmech/gravsim/internal/vec"
)

// System holds the mutable state of N point masses. Bodies are
// identified by index; N and the masses are fixed for the lifetime of
// the system. Positions and velocities are mutated in place by
// integrators, the acceleration slice is transient scratch shared
// between force evaluation and the velocity updates of a step.
type System struct {
	pos  []vec.Vec2
	vel  []vec.Vec2
	mass []float64
	acc  []vec.Vec2
}

// New validates the initial conditions and builds a System. The input
// slices are copied. Mismatched lengths and non-positive masses are
// rejected here rather than deep inside a step.
func New(pos, vel []vec.Vec2, masses []float64) (*System, error) {
	if len(pos) != len(masses) || len(vel) != len(masses) {
		return nil, fmt.Errorf("body: initial conditions for %d masses but %d positions and %d velocities",
			len(masses), len(pos), len(vel))
	}
	for i, m := range masses {
		if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("body: mass %d must be positive and finite, got %v", i, m)
		}
	}

	s := &System{
		pos:  make([]vec.Vec2, len(pos)),
		vel:  make([]vec.Vec2, len(vel)),
		mass: make([]float64, len(masses)),
		acc:  make([]vec.Vec2, len(masses)),
	}
	copy(s.pos, pos)
	copy(s.vel, vel)
	copy(s.mass, masses)
	return s, nil
}

func (s *System) N() int { return len(s.mass) }

// Positions returns a live view of the position slice. Integrators
// mutate it in place; everything else must treat it as read-only.
func (s *System) Positions() []vec.Vec2 { return s.pos }

// Velocities returns a live view of the velocity slice.
func (s *System) Velocities() []vec.Vec2 { return s.vel }

// Masses returns a live view of the mass slice. Masses are never
// mutated by force or integration code.
func (s *System) Masses() []float64 { return s.mass }

// Accelerations returns the per-body acceleration scratch slice.
func (s *System) Accelerations() []vec.Vec2 { return s.acc }

// SetAccelerations copies a into the acceleration scratch.
func (s *System) SetAccelerations(a []vec.Vec2) { copy(s.acc, a) }

func (s *System) Clone() *System {
	c := &System{
		pos:  make([]vec.Vec2, len(s.pos)),
		vel:  make([]vec.Vec2, len(s.vel)),
		mass: make([]float64, len(s.mass)),
		acc:  make([]vec.Vec2, len(s.acc)),
	}
	copy(c.pos, s.pos)
	copy(c.vel, s.vel)
	copy(c.mass, s.mass)
	copy(c.acc, s.acc)
	return c
}

// IsValid reports whether every position and velocity is finite.
func (s *System) IsValid() bool {
	for i := range s.pos {
		if !s.pos[i].IsFinite() || !s.vel[i].IsFinite() {
			return false
		}
	}
	return true
}

func (s *System) TotalMass() float64 {
	total := 0.0
	for _, m := range s.mass {
		total += m
	}
	return total
}

func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for i, m := range s.mass {
		ke += 0.5 * m * s.vel[i].NormSq()
	}
	return ke
}

// Potential sums the softened pairwise gravitational potential
// -G*mi*mj/sqrt(d^2 + eps^2) over unordered pairs of the given
// configuration.
func Potential(pos []vec.Vec2, masses []float64, g, eps float64) float64 {
	pe := 0.0
	eps2 := eps * eps
	for i := 0; i < len(masses); i++ {
		for j := i + 1; j < len(masses); j++ {
			d2 := pos[j].Sub(pos[i]).NormSq() + eps2
			if d2 == 0 {
				continue
			}
			pe -= g * masses[i] * masses[j] / math.Sqrt(d2)
		}
	}
	return pe
}

// PotentialEnergy is Potential over the system's current positions.
func (s *System) PotentialEnergy(g, eps float64) float64 {
	return Potential(s.pos, s.mass, g, eps)
}

// TotalEnergy is kinetic plus softened potential energy. Diagnostic
// only; the update loop never reads it.
func (s *System) TotalEnergy(g, eps float64) float64 {
	return s.KineticEnergy() + s.PotentialEnergy(g, eps)
}

// CenterOfMass returns the mass-weighted average position. Zero for
// an empty system.
func (s *System) CenterOfMass() vec.Vec2 {
	if len(s.mass) == 0 {
		return vec.Vec2{}
	}
	var com vec.Vec2
	total := 0.0
	for i, m := range s.mass {
		com = com.Add(s.pos[i].Scale(m))
		total += m
	}
	return com.Scale(1 / total)
}

func (s *System) Momentum() vec.Vec2 {
	var p vec.Vec2
	for i, m := range s.mass {
		p = p.Add(s.vel[i].Scale(m))
	}
	return p
}

func (s *System) AngularMomentum() float64 {
	l := 0.0
	for i, m := range s.mass {
		l += m * s.pos[i].Cross(s.vel[i])
	}
	return l
}
