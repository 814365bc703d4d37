// Package sim orchestrates repeated integrator steps over a particle
// system and collects trajectory snapshots and diagnostics.
package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/integrators"
	"github.com/celmech/gravsim/internal/vec"
)

// Metric accumulates a scalar diagnostic over a run.
type Metric interface {
	Name() string
	Observe(sys *body.System, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed step.
type Observer interface {
	OnStep(sys *body.System, t float64)
}

// Config holds the per-run parameters. G and Epsilon feed the energy
// diagnostics only; the force model carries its own copies for the
// actual kernels.
type Config struct {
	Dt       float64
	Duration float64
	G        float64
	Epsilon  float64

	// SampleEvery records a trajectory frame every that many steps
	// (0 or 1 records every step).
	SampleEvery int

	// ValidateState aborts the run when a non-finite position or
	// velocity appears.
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.001,
		Duration:      10.0,
		G:             1.0,
		Epsilon:       0.01,
		SampleEvery:   1,
		ValidateState: true,
	}
}

// Result collects the sampled trajectory and diagnostics of one run.
type Result struct {
	Times  []float64
	Frames [][]vec.Vec2
	Energy []float64

	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

// Simulator drives one (force model, integrator) pair. It carries no
// state between runs besides the registered metrics and observers.
type Simulator struct {
	force     force.Model
	integ     integrators.Integrator
	metrics   []Metric
	observers []Observer
}

func New(f force.Model, integ integrators.Integrator) *Simulator {
	return &Simulator{
		force:     f,
		integ:     integ,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run advances sys in place for cfg.Duration and returns the sampled
// trajectory. The context is checked between steps; a cancelled run
// returns what was collected so far along with the context error.
func (s *Simulator) Run(ctx context.Context, sys *body.System, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	sample := cfg.SampleEvery
	if sample < 1 {
		sample = 1
	}

	result := &Result{
		Times:   make([]float64, 0, steps/sample+1),
		Frames:  make([][]vec.Vec2, 0, steps/sample+1),
		Energy:  make([]float64, 0, steps/sample+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	logrus.Infof("run: %d bodies, %s + %s, dt=%g, %d steps",
		sys.N(), s.force.Name(), s.integ.Name(), cfg.Dt, steps)

	t := 0.0
	record := func() {
		frame := make([]vec.Vec2, sys.N())
		copy(frame, sys.Positions())
		result.Times = append(result.Times, t)
		result.Frames = append(result.Frames, frame)
		result.Energy = append(result.Energy, sys.TotalEnergy(cfg.G, cfg.Epsilon))
	}
	record()
	initialEnergy := result.Energy[0]

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(sys, t)
		}
		for _, o := range s.observers {
			o.OnStep(sys, t)
		}

		s.integ.Step(sys, s.force, cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !sys.IsValid() {
			err := &StepError{Step: i, Time: t, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			logrus.Warnf("run aborted: %v", err)
			break
		}

		if (i+1)%sample == 0 {
			record()
		}
	}

	if initialEnergy != 0 {
		final := result.Energy[len(result.Energy)-1]
		result.EnergyDrift = math.Abs(final-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	logrus.Debugf("run done: %d steps, energy drift %.3e", result.StepsTaken, result.EnergyDrift)
	return result, nil
}

// RunWithCallback advances sys step by step, handing the live state to
// callback after each step. Returning false from the callback stops
// the run early. Used by the live view; nothing is recorded.
func (s *Simulator) RunWithCallback(ctx context.Context, sys *body.System, cfg Config, callback func(sys *body.System, t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.integ.Step(sys, s.force, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !sys.IsValid() {
			return fmt.Errorf("%w at t=%.4f", ErrInvalidState, t)
		}

		if !callback(sys, t) {
			return nil
		}
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrConfig, cfg.Duration)
	}
	if cfg.Epsilon < 0 {
		return fmt.Errorf("%w: softening must be non-negative, got %g", ErrConfig, cfg.Epsilon)
	}
	return nil
}
