package integrators

import (
	"math"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/vec"
)

// Cooper-Verner coefficients (11-stage, 8th order)
var (
	cvS = math.Sqrt(21)

	cvA = [11][11]float64{
		1: {0: 1.0 / 2},
		2: {0: 1.0 / 4, 1: 1.0 / 4},
		3: {0: 1.0 / 7, 1: (-7 - 3*cvS) / 98, 2: (21 + 5*cvS) / 49},
		4: {0: (11 + cvS) / 84, 2: (18 + 4*cvS) / 63, 3: (21 - cvS) / 252},
		5: {0: (5 + cvS) / 48, 2: (9 + cvS) / 36, 3: (-231 + 14*cvS) / 360, 4: (63 - 7*cvS) / 80},
		6: {0: (10 - cvS) / 42, 2: (-432 + 92*cvS) / 315, 3: (633 - 145*cvS) / 90, 4: (-504 + 115*cvS) / 70, 5: (63 - 13*cvS) / 35},
		7: {0: 1.0 / 14, 4: (14 - 3*cvS) / 126, 5: (13 - 3*cvS) / 63, 6: 1.0 / 9},
		8: {0: 1.0 / 32, 4: (91 - 21*cvS) / 576, 5: 11.0 / 72, 6: (-385 - 75*cvS) / 1152, 7: (63 + 13*cvS) / 128},
		9: {0: 1.0 / 14, 4: 1.0 / 9, 5: (-733 - 147*cvS) / 2205, 6: (515 + 111*cvS) / 504, 7: (-51 - 11*cvS) / 56, 8: (132 + 28*cvS) / 245},
		10: {4: (-42 + 7*cvS) / 18, 5: (-18 + 28*cvS) / 45, 6: (-273 - 53*cvS) / 72, 7: (301 + 53*cvS) / 72, 8: (28 - 28*cvS) / 45, 9: (49 - 7*cvS) / 18},
	}

	cvB = [11]float64{0: 1.0 / 20, 7: 49.0 / 180, 8: 16.0 / 45, 9: 49.0 / 180, 10: 1.0 / 20}
)

// RK8 is the classical 8th-order Runge-Kutta scheme (Cooper-Verner
// tableau, 11 force evaluations per step) applied to the coupled
// (x, v) system: the position derivative at a stage is the staged
// velocity, the velocity derivative is the acceleration at the staged
// positions. Highest per-step accuracy of the set, but not symplectic:
// energy drifts slowly on long runs where leapfrog and PEFRL stay
// bounded.
type RK8 struct {
	kx, kv [11][]vec.Vec2
	px, pv []vec.Vec2
}

func NewRK8() *RK8 { return &RK8{} }

func (r *RK8) Name() string { return "rk8" }

func (r *RK8) ensureScratch(n int) {
	if len(r.px) == n {
		return
	}
	for s := range r.kx {
		r.kx[s] = make([]vec.Vec2, n)
		r.kv[s] = make([]vec.Vec2, n)
	}
	r.px = make([]vec.Vec2, n)
	r.pv = make([]vec.Vec2, n)
}

func (r *RK8) Step(sys *body.System, f force.Model, dt float64) {
	n := sys.N()
	r.ensureScratch(n)

	pos, vel, masses := sys.Positions(), sys.Velocities(), sys.Masses()

	for s := 0; s < 11; s++ {
		copy(r.px, pos)
		copy(r.pv, vel)
		for j := 0; j < s; j++ {
			a := cvA[s][j]
			if a == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				r.px[i] = r.px[i].Add(r.kx[j][i].Scale(dt * a))
				r.pv[i] = r.pv[i].Add(r.kv[j][i].Scale(dt * a))
			}
		}

		copy(r.kx[s], r.pv)
		acc := f.Accelerations(r.px, masses)
		copy(r.kv[s], acc)
	}

	sys.SetAccelerations(r.kv[10])

	for s := 0; s < 11; s++ {
		b := cvB[s]
		if b == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			pos[i] = pos[i].Add(r.kx[s][i].Scale(dt * b))
			vel[i] = vel[i].Add(r.kv[s][i].Scale(dt * b))
		}
	}
}
