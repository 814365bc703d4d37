package sim

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/integrators"
	"github.com/celmech/gravsim/internal/vec"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.WarnLevel)
	os.Exit(m.Run())
}

func pairSystem(t *testing.T) *body.System {
	t.Helper()
	sys, err := body.New(
		[]vec.Vec2{{X: -0.5}, {X: 0.5}},
		[]vec.Vec2{{Y: -0.5}, {Y: 0.5}},
		[]float64{1, 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func pairSimulator(t *testing.T) *Simulator {
	t.Helper()
	f, err := force.NewDirectSum(1.0, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	return New(f, integrators.NewLeapfrog())
}

func TestRun(t *testing.T) {
	s := pairSimulator(t)
	cfg := Config{Dt: 0.001, Duration: 1.0, G: 1, Epsilon: 0.01, SampleEvery: 1, ValidateState: true}

	result, err := s.Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 1000 {
		t.Errorf("expected 1000 steps, got %d", result.StepsTaken)
	}
	if len(result.Frames) != 1001 {
		t.Errorf("expected 1001 frames, got %d", len(result.Frames))
	}
	if len(result.Times) != len(result.Energy) {
		t.Error("times and energy series out of sync")
	}
	if result.EnergyDrift > 1e-3 {
		t.Errorf("energy drift %.3e too large for leapfrog", result.EnergyDrift)
	}
}

func TestRunSampling(t *testing.T) {
	s := pairSimulator(t)
	cfg := Config{Dt: 0.001, Duration: 1.0, G: 1, Epsilon: 0.01, SampleEvery: 100, ValidateState: true}

	result, err := s.Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// initial frame + one per 100 steps
	if len(result.Frames) != 11 {
		t.Errorf("expected 11 frames, got %d", len(result.Frames))
	}
}

func TestRunInvalidConfig(t *testing.T) {
	s := pairSimulator(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1}},
		{"negative dt", Config{Dt: -0.1, Duration: 1}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative softening", Config{Dt: 0.1, Duration: 1, Epsilon: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Run(context.Background(), pairSystem(t), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunCancellation(t *testing.T) {
	s := pairSimulator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Dt: 0.001, Duration: 10.0, G: 1, Epsilon: 0.01}
	result, err := s.Run(ctx, pairSystem(t), cfg)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("cancelled run should still return partial result")
	}
	if result.StepsTaken != 0 {
		t.Errorf("expected no steps after immediate cancel, got %d", result.StepsTaken)
	}
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{Dt: 0.001, Duration: 0.5, G: 1, Epsilon: 0.01, SampleEvery: 1, ValidateState: true}

	a, err := pairSimulator(t).Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := pairSimulator(t).Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatal(err)
	}

	last := len(a.Frames) - 1
	for i := range a.Frames[last] {
		if a.Frames[last][i] != b.Frames[last][i] {
			t.Fatalf("identical runs diverged at body %d", i)
		}
	}
}

func TestRunEmptySystem(t *testing.T) {
	s := pairSimulator(t)
	sys, err := body.New(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := Config{Dt: 0.01, Duration: 0.1, G: 1, Epsilon: 0.01}
	if _, err := s.Run(context.Background(), sys, cfg); err != nil {
		t.Errorf("empty system run must not fail: %v", err)
	}
}

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string                      { return "count" }
func (c *countingMetric) Observe(sys *body.System, t float64) { c.count++ }
func (c *countingMetric) Value() float64                    { return float64(c.count) }
func (c *countingMetric) Reset()                            { c.count = 0 }

func TestRunMetrics(t *testing.T) {
	s := pairSimulator(t)
	m := &countingMetric{}
	s.AddMetric(m)

	cfg := Config{Dt: 0.01, Duration: 1.0, G: 1, Epsilon: 0.01}
	result, err := s.Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if got, ok := result.Metrics["count"]; !ok || got != 100 {
		t.Errorf("expected metric count=100, got %v (present=%v)", got, ok)
	}
}

func TestRunWithCallback(t *testing.T) {
	s := pairSimulator(t)
	cfg := Config{Dt: 0.01, Duration: 1.0, G: 1, Epsilon: 0.01, ValidateState: true}

	calls := 0
	err := s.RunWithCallback(context.Background(), pairSystem(t), cfg, func(sys *body.System, tm float64) bool {
		calls++
		return calls < 10
	})
	if err != nil {
		t.Fatalf("callback run failed: %v", err)
	}
	if calls != 10 {
		t.Errorf("expected early stop after 10 callbacks, got %d", calls)
	}
}

func TestComparison(t *testing.T) {
	f, err := force.NewDirectSum(1.0, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	cmp := NewComparison(f, []integrators.Integrator{
		integrators.NewEuler(),
		integrators.NewLeapfrog(),
		integrators.NewPEFRL(),
	})

	cfg := Config{Dt: 0.001, Duration: 1.0, G: 1, Epsilon: 0.01, SampleEvery: 10, ValidateState: true}
	results, err := cmp.Run(context.Background(), pairSystem(t), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for name, r := range results {
		if r.StepsTaken != 1000 {
			t.Errorf("%s: expected 1000 steps, got %d", name, r.StepsTaken)
		}
	}
	if !(results["euler"].EnergyDrift > results["leapfrog"].EnergyDrift) {
		t.Error("euler should drift more than leapfrog")
	}
	if math.IsNaN(results["pefrl"].EnergyDrift) {
		t.Error("pefrl drift is NaN")
	}
}
