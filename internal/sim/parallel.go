package sim

import (
	"context"
	"sync"

	"github.com/celmech/gravsim/internal/body"
	"github.com/celmech/gravsim/internal/force"
	"github.com/celmech/gravsim/internal/integrators"
)

// Comparison runs the same initial conditions through several
// integrators concurrently, one goroutine per integrator. Each run
// gets its own clone of the initial system, so the runs share nothing
// mutable.
type Comparison struct {
	force  force.Model
	integs []integrators.Integrator
}

func NewComparison(f force.Model, integs []integrators.Integrator) *Comparison {
	return &Comparison{force: f, integs: integs}
}

// Run returns one Result per integrator, keyed by integrator name.
func (c *Comparison) Run(ctx context.Context, initial *body.System, cfg Config) (map[string]*Result, error) {
	results := make([]*Result, len(c.integs))
	errs := make([]error, len(c.integs))

	var wg sync.WaitGroup
	for i, integ := range c.integs {
		wg.Add(1)
		go func(idx int, integ integrators.Integrator) {
			defer wg.Done()
			s := New(c.force, integ)
			results[idx], errs[idx] = s.Run(ctx, initial.Clone(), cfg)
		}(i, integ)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]*Result, len(c.integs))
	for i, integ := range c.integs {
		out[integ.Name()] = results[i]
	}
	return out, nil
}
