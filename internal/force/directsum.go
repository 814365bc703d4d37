package force

import (
	"math"

	"github.com/celmech/gravsim/internal/vec"
)

// DirectSum evaluates the exact pairwise acceleration in O(N^2).
// Each unordered pair is computed once and applied with opposite sign
// to both bodies. This is the baseline the tree method is validated
// against.
type DirectSum struct {
	G   float64
	Eps float64
}

func NewDirectSum(g, eps float64) (*DirectSum, error) {
	if err := validateParams(g, eps); err != nil {
		return nil, err
	}
	return &DirectSum{G: g, Eps: eps}, nil
}

func (d *DirectSum) Name() string { return "direct" }

func (d *DirectSum) Accelerations(pos []vec.Vec2, masses []float64) []vec.Vec2 {
	n := len(masses)
	acc := make([]vec.Vec2, n)
	eps2 := d.Eps * d.Eps

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pos[j].Sub(pos[i])
			d2 := r.NormSq() + eps2
			if d2 == 0 {
				// coincident pair with eps=0: direction is undefined,
				// skip rather than propagate NaN
				continue
			}
			inv := 1 / math.Sqrt(d2)
			inv3 := inv * inv * inv

			acc[i] = acc[i].Add(r.Scale(d.G * masses[j] * inv3))
			acc[j] = acc[j].Add(r.Scale(-d.G * masses[i] * inv3))
		}
	}
	return acc
}
