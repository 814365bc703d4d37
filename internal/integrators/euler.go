package integrators

import (
	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
)

// Euler is the explicit forward Euler scheme, one force evaluation
// per step. The position update uses the pre-update velocity and the
// acceleration is evaluated at the pre-update position:
//
//	x <- x + v*dt
//	v <- v + a(x_old)*dt
//
// This ordering is applied consistently everywhere; mixing it with
// the new-velocity variant across call sites silently changes the
// scheme's character. First order, no energy conservation; kept as
// the naive baseline.
type Euler struct{}

func NewEuler() *Euler { return &Euler{} }

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(sys *body.System, f force.Model, dt float64) {
	acc := f.Accelerations(sys.Positions(), sys.Masses())
	sys.SetAccelerations(acc)

	pos, vel := sys.Positions(), sys.Velocities()
	for i := range pos {
		pos[i] = pos[i].Add(vel[i].Scale(dt))
	}
	for i := range vel {
		vel[i] = vel[i].Add(acc[i].Scale(dt))
	}
}
