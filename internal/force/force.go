// Package force computes per-body gravitational accelerations.
//
// Two evaluation strategies are provided: [DirectSum], the exact
// O(N^2) pairwise summation, and [BarnesHut], an O(N log N) quadtree
// approximation controlled by an opening-angle threshold. Both use a
// softened point-mass kernel
//
//	a_i += G * m_j * (r_j - r_i) / (|r_j - r_i|^2 + eps^2)^(3/2)
//
// so that near-zero separations stay finite. A model holds only its
// configuration; every evaluation is a pure function of the positions
// and masses passed in.
package force

import (
	"fmt"

	"github.com/celmech/gravsim/internal/vec"
)

// Model computes the acceleration on every body from a snapshot of
// positions and masses. The returned slice matches the input order.
// Implementations must not mutate their inputs.
type Model interface {
	Accelerations(pos []vec.Vec2, masses []float64) []vec.Vec2
	Name() string
}

// New builds a force model by name. Theta is ignored for direct
// summation.
func New(name string, g, eps, theta float64) (Model, error) {
	switch name {
	case "direct", "directsum":
		return NewDirectSum(g, eps)
	case "barneshut", "bh", "tree":
		return NewBarnesHut(g, eps, theta)
	default:
		return nil, fmt.Errorf("force: unknown model %q", name)
	}
}

func validateParams(g, eps float64) error {
	if g <= 0 {
		return fmt.Errorf("force: gravitational constant must be positive, got %v", g)
	}
	if eps < 0 {
		return fmt.Errorf("force: softening length must be non-negative, got %v", eps)
	}
	return nil
}
