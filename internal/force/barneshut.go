package force

import (
	"fmt"
	"math"

	"github.com/celmech/gravsim/internal/vec"
)

// minParallelBodies is the body count below which the per-body
// traversal runs inline instead of fanning out goroutines.
const minParallelBodies = 256

// BarnesHut approximates the pairwise acceleration in O(N log N) by
// treating sufficiently distant groups of bodies as a single point
// mass at their center of mass. A node of width s at distance d is
// admissible when s/d < Theta; Theta = 0 degenerates to the exact sum,
// large Theta to a monopole at the root. Output converges to
// [DirectSum] as Theta -> 0.
type BarnesHut struct {
	G     float64
	Eps   float64
	Theta float64
}

func NewBarnesHut(g, eps, theta float64) (*BarnesHut, error) {
	if err := validateParams(g, eps); err != nil {
		return nil, err
	}
	if theta < 0 {
		return nil, fmt.Errorf("force: opening angle must be non-negative, got %v", theta)
	}
	return &BarnesHut{G: g, Eps: eps, Theta: theta}, nil
}

func (b *BarnesHut) Name() string { return "barneshut" }

func (b *BarnesHut) Accelerations(pos []vec.Vec2, masses []float64) []vec.Vec2 {
	n := len(masses)
	acc := make([]vec.Vec2, n)
	if n < 2 {
		return acc
	}

	tree := buildQuadTree(pos, masses)

	// the tree is immutable from here on; traversals share it freely
	theta2 := b.Theta * b.Theta
	eps2 := b.Eps * b.Eps
	ParallelFor(n, minParallelBodies, func(start, end int) {
		for i := start; i < end; i++ {
			acc[i] = b.accumulate(tree, 0, int32(i), theta2, eps2)
		}
	})
	return acc
}

// accumulate walks the tree for body i, summing admissible point-mass
// contributions and recursing where a node is too close relative to
// its size.
func (b *BarnesHut) accumulate(t *quadTree, idx, i int32, theta2, eps2 float64) vec.Vec2 {
	n := &t.nodes[idx]
	if n.mass == 0 {
		return vec.Vec2{}
	}

	r := n.com.Sub(t.pos[i])
	d2 := r.NormSq()

	if t.isInternal(idx) {
		// admissible when s^2 < theta^2 * d^2, i.e. s/d < theta
		s := 2 * n.half
		if s*s < theta2*d2 {
			return b.pointMass(r, d2, n.mass, eps2)
		}

		var acc vec.Vec2
		for _, c := range n.children {
			if c != nilNode {
				acc = acc.Add(b.accumulate(t, c, i, theta2, eps2))
			}
		}
		return acc
	}

	// leaf holding only body i: no self-interaction
	if n.body == i && n.count == 1 {
		return vec.Vec2{}
	}
	return b.pointMass(r, d2, n.mass, eps2)
}

func (b *BarnesHut) pointMass(r vec.Vec2, d2, mass, eps2 float64) vec.Vec2 {
	dd := d2 + eps2
	if dd == 0 {
		// coincident with the aggregate and unsoftened: no direction
		return vec.Vec2{}
	}
	inv := 1 / math.Sqrt(dd)
	return r.Scale(b.G * mass * inv * inv * inv)
}
