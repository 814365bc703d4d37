package integrators

import (
	"math/rand"
	"testing"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/vec"
)

func benchSystem(b *testing.B, n int) *body.System {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	pos := make([]vec.Vec2, n)
	vel := make([]vec.Vec2, n)
	masses := make([]float64, n)
	for i := range pos {
		pos[i] = vec.Vec2{X: rng.Float64()*10 - 5, Y: rng.Float64()*10 - 5}
		vel[i] = vec.Vec2{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}
		masses[i] = 1
	}
	sys, err := body.New(pos, vel, masses)
	if err != nil {
		b.Fatal(err)
	}
	return sys
}

func benchStep(b *testing.B, integ Integrator, f force.Model, n int) {
	sys := benchSystem(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(sys, f, 0.001)
	}
}

func BenchmarkEuler_Direct100(b *testing.B) {
	f, _ := force.NewDirectSum(1.0, 0.01)
	benchStep(b, NewEuler(), f, 100)
}

func BenchmarkLeapfrog_Direct100(b *testing.B) {
	f, _ := force.NewDirectSum(1.0, 0.01)
	benchStep(b, NewLeapfrog(), f, 100)
}

func BenchmarkPEFRL_Direct100(b *testing.B) {
	f, _ := force.NewDirectSum(1.0, 0.01)
	benchStep(b, NewPEFRL(), f, 100)
}

func BenchmarkRK8_Direct100(b *testing.B) {
	f, _ := force.NewDirectSum(1.0, 0.01)
	benchStep(b, NewRK8(), f, 100)
}

func BenchmarkLeapfrog_BarnesHut1000(b *testing.B) {
	f, _ := force.NewBarnesHut(1.0, 0.01, 0.5)
	benchStep(b, NewLeapfrog(), f, 1000)
}

func BenchmarkLeapfrog_Direct1000(b *testing.B) {
	f, _ := force.NewDirectSum(1.0, 0.01)
	benchStep(b, NewLeapfrog(), f, 1000)
}
