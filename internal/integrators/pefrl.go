package integrators

import (
	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
)

// Position-Extended Forest-Ruth-Like coefficients.
// Omelyan, Mryglod, Folk. "Optimized Forest-Ruth- and Suzuki-like
// algorithms for integration of motion in many-body systems". 2002.
// The values must match the published constants exactly; a deviation
// degrades the order without any visible failure.
const (
	pefrlXi     = 0.1786178958448091
	pefrlLambda = -0.2123418310626054
	pefrlChi    = -0.06626458266981849
)

// PEFRL is a fourth-order symplectic scheme with four force
// evaluations per step, arranged as a palindromic drift/kick sequence.
type PEFRL struct{}

func NewPEFRL() *PEFRL { return &PEFRL{} }

func (p *PEFRL) Name() string { return "pefrl" }

func (p *PEFRL) Step(sys *body.System, f force.Model, dt float64) {
	drift(sys, pefrlXi*dt)
	kick(sys, f, (1-2*pefrlLambda)*dt/2)
	drift(sys, pefrlChi*dt)
	kick(sys, f, pefrlLambda*dt)
	drift(sys, (1-2*(pefrlChi+pefrlXi))*dt)
	kick(sys, f, pefrlLambda*dt)
	drift(sys, pefrlChi*dt)
	kick(sys, f, (1-2*pefrlLambda)*dt/2)
	drift(sys, pefrlXi*dt)
}
