package integrators

import (
	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
)

// Leapfrog is the kick-drift-kick scheme: half-step velocity kick,
// full-step position drift, half-step kick from the acceleration at
// the new position. Symplectic and time-reversible, second order,
// bounded long-run energy error. The default choice for
// gravitational work.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog { return &Leapfrog{} }

func (l *Leapfrog) Name() string { return "leapfrog" }

func (l *Leapfrog) Step(sys *body.System, f force.Model, dt float64) {
	kick(sys, f, dt/2)
	drift(sys, dt)
	kick(sys, f, dt/2)
}
