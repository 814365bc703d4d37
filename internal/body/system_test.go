package body

import (
	"math"
	"testing"

	"github.com/celmech/gravsim/internal/vec"
)

func twoBody(t *testing.T) *System {
	t.Helper()
	s, err := New(
		[]vec.Vec2{{X: -0.5}, {X: 0.5}},
		[]vec.Vec2{{Y: -0.5}, {Y: 0.5}},
		[]float64{1.0, 1.0},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		pos    []vec.Vec2
		vel    []vec.Vec2
		masses []float64
	}{
		{"length mismatch pos", []vec.Vec2{{}}, []vec.Vec2{{}, {}}, []float64{1, 1}},
		{"length mismatch vel", []vec.Vec2{{}, {}}, []vec.Vec2{{}}, []float64{1, 1}},
		{"zero mass", []vec.Vec2{{}}, []vec.Vec2{{}}, []float64{0}},
		{"negative mass", []vec.Vec2{{}}, []vec.Vec2{{}}, []float64{-1}},
		{"nan mass", []vec.Vec2{{}}, []vec.Vec2{{}}, []float64{math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.pos, tt.vel, tt.masses); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewCopiesInputs(t *testing.T) {
	pos := []vec.Vec2{{X: 1}}
	s, err := New(pos, []vec.Vec2{{}}, []float64{1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pos[0].X = 99
	if s.Positions()[0].X != 1 {
		t.Error("System aliases caller's position slice")
	}
}

func TestEmptySystem(t *testing.T) {
	s, err := New(nil, nil, nil)
	if err != nil {
		t.Fatalf("empty system should be valid: %v", err)
	}

	if s.N() != 0 {
		t.Errorf("expected N=0, got %d", s.N())
	}
	if e := s.TotalEnergy(1, 0); e != 0 {
		t.Errorf("expected zero energy, got %f", e)
	}
	if com := s.CenterOfMass(); com != (vec.Vec2{}) {
		t.Errorf("expected zero center of mass, got %v", com)
	}
}

func TestEnergy(t *testing.T) {
	s := twoBody(t)

	// ke = 2 * 0.5*1*0.25, pe = -1*1*1/1
	ke := s.KineticEnergy()
	if math.Abs(ke-0.25) > 1e-12 {
		t.Errorf("kinetic energy: got %f, expected 0.25", ke)
	}
	pe := s.PotentialEnergy(1.0, 0)
	if math.Abs(pe+1.0) > 1e-12 {
		t.Errorf("potential energy: got %f, expected -1", pe)
	}
	if math.Abs(s.TotalEnergy(1.0, 0)-(ke+pe)) > 1e-12 {
		t.Error("total energy != ke + pe")
	}
}

func TestPotentialEnergyCoincidentUnsoftened(t *testing.T) {
	s, err := New(
		[]vec.Vec2{{X: 1, Y: 1}, {X: 1, Y: 1}},
		[]vec.Vec2{{}, {}},
		[]float64{1, 1},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	pe := s.PotentialEnergy(1.0, 0)
	if math.IsNaN(pe) || math.IsInf(pe, 0) {
		t.Errorf("coincident pair with eps=0 must not produce non-finite energy, got %f", pe)
	}
}

func TestDiagnostics(t *testing.T) {
	s := twoBody(t)

	if com := s.CenterOfMass(); com.Norm() > 1e-12 {
		t.Errorf("expected center of mass at origin, got %v", com)
	}
	if p := s.Momentum(); p.Norm() > 1e-12 {
		t.Errorf("expected zero momentum, got %v", p)
	}
	// L = 1*(-0.5*-0.5) + 1*(0.5*0.5)
	if l := s.AngularMomentum(); math.Abs(l-0.5) > 1e-12 {
		t.Errorf("angular momentum: got %f, expected 0.5", l)
	}
	if m := s.TotalMass(); m != 2 {
		t.Errorf("total mass: got %f", m)
	}
}

func TestCloneIndependence(t *testing.T) {
	s := twoBody(t)
	c := s.Clone()

	c.Positions()[0].X = 42
	if s.Positions()[0].X == 42 {
		t.Error("Clone shares position storage")
	}
}

func TestIsValid(t *testing.T) {
	s := twoBody(t)
	if !s.IsValid() {
		t.Error("fresh system should be valid")
	}
	s.Velocities()[1].Y = math.Inf(1)
	if s.IsValid() {
		t.Error("Inf velocity should invalidate system")
	}
}
