// Package integrators advances a body.System through time.
//
// All schemes share one contract: Step mutates the system in place by
// one time step, evaluating the force model as often as the scheme
// requires, and carries no state between steps beyond reusable scratch
// buffers. Masses and body count are never touched.
package integrators

import (
	"fmt"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
)

type Integrator interface {
	Step(sys *body.System, f force.Model, dt float64)
	Name() string
}

// New builds an integrator by name.
func New(name string) (Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "leapfrog":
		return NewLeapfrog(), nil
	case "pefrl":
		return NewPEFRL(), nil
	case "rk8":
		return NewRK8(), nil
	default:
		return nil, fmt.Errorf("integrators: unknown integrator %q", name)
	}
}

// Names lists the available integrators in registry order.
func Names() []string {
	return []string{"euler", "leapfrog", "pefrl", "rk8"}
}

// drift advances positions along the current velocities for time h.
func drift(sys *body.System, h float64) {
	pos, vel := sys.Positions(), sys.Velocities()
	for i := range pos {
		pos[i] = pos[i].Add(vel[i].Scale(h))
	}
}

// kick evaluates the force at the current positions and advances the
// velocities for time h. The accelerations are left in the system's
// scratch slice.
func kick(sys *body.System, f force.Model, h float64) {
	acc := f.Accelerations(sys.Positions(), sys.Masses())
	sys.SetAccelerations(acc)
	vel := sys.Velocities()
	for i := range vel {
		vel[i] = vel[i].Add(acc[i].Scale(h))
	}
}
