package force

import "github.com/celmech/gravsim/internal/vec"

// maxDepth bounds tree subdivision. Bodies that cannot be separated
// within this many levels are folded into the leaf's aggregate so
// coincident input terminates instead of subdividing forever.
const maxDepth = 64

// boundsPad widens the root square so bodies on the extent boundary
// are strictly interior.
const boundsPad = 1e-6

const nilNode = int32(-1)

// quadNode is one square region in the arena. Child indexing follows
// the quadrant scheme
//
//	2 3
//	0 1
//
// i.e. bit 0 selects the right half, bit 1 the upper half.
type quadNode struct {
	center   vec.Vec2
	half     float64
	children [4]int32
	body     int32 // first body held by a leaf, -1 if empty
	count    int32 // bodies folded into this leaf
	mass     float64
	com      vec.Vec2 // mass-weighted position sum during build, center of mass after finalize
}

// quadTree is rebuilt from scratch for every force evaluation and
// discarded afterwards. Nodes live in a flat arena addressed by index,
// so the finished tree is read-only shared state for the parallel
// traversal.
type quadTree struct {
	nodes []quadNode
	pos   []vec.Vec2
	mass  []float64
}

func buildQuadTree(pos []vec.Vec2, masses []float64) *quadTree {
	t := &quadTree{
		nodes: make([]quadNode, 0, 2*len(masses)+1),
		pos:   pos,
		mass:  masses,
	}
	if len(masses) == 0 {
		return t
	}

	min, max := pos[0], pos[0]
	for _, p := range pos[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	size := max.X - min.X
	if dy := max.Y - min.Y; dy > size {
		size = dy
	}
	if size == 0 {
		// all bodies coincident; any positive extent works
		size = 1
	}
	size *= 1 + 2*boundsPad

	root := t.newNode(vec.Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}, size/2)
	for i := range masses {
		t.insert(root, int32(i), 0)
	}
	t.finalize()
	return t
}

func (t *quadTree) newNode(center vec.Vec2, half float64) int32 {
	t.nodes = append(t.nodes, quadNode{
		center:   center,
		half:     half,
		children: [4]int32{nilNode, nilNode, nilNode, nilNode},
		body:     nilNode,
	})
	return int32(len(t.nodes) - 1)
}

func (t *quadTree) isInternal(idx int32) bool {
	c := &t.nodes[idx].children
	return c[0] != nilNode || c[1] != nilNode || c[2] != nilNode || c[3] != nilNode
}

// childFor returns the child quadrant of parent that contains p,
// creating it on first use. The arena may grow here, so callers must
// not hold node pointers across a call.
func (t *quadTree) childFor(parent int32, p vec.Vec2) int32 {
	center := t.nodes[parent].center
	q := 0
	if p.X > center.X {
		q |= 1
	}
	if p.Y > center.Y {
		q |= 2
	}

	if t.nodes[parent].children[q] == nilNode {
		quarter := t.nodes[parent].half / 2
		childCenter := center
		if q&1 != 0 {
			childCenter.X += quarter
		} else {
			childCenter.X -= quarter
		}
		if q&2 != 0 {
			childCenter.Y += quarter
		} else {
			childCenter.Y -= quarter
		}
		idx := t.newNode(childCenter, quarter)
		t.nodes[parent].children[q] = idx
	}
	return t.nodes[parent].children[q]
}

func (t *quadTree) insert(idx, b int32, depth int) {
	if t.isInternal(idx) {
		t.insert(t.childFor(idx, t.pos[b]), b, depth+1)
		return
	}

	if t.nodes[idx].count == 0 {
		n := &t.nodes[idx]
		n.body = b
		n.count = 1
		n.mass = t.mass[b]
		n.com = t.pos[b].Scale(t.mass[b])
		return
	}

	if depth >= maxDepth {
		// depth guard: keep the leaf, fold the body into its aggregate
		n := &t.nodes[idx]
		n.count++
		n.mass += t.mass[b]
		n.com = n.com.Add(t.pos[b].Scale(t.mass[b]))
		return
	}

	// occupied leaf: subdivide, re-insert the resident body, then the
	// new one
	old := t.nodes[idx].body
	n := &t.nodes[idx]
	n.body = nilNode
	n.count = 0
	n.mass = 0
	n.com = vec.Vec2{}

	t.insert(t.childFor(idx, t.pos[old]), old, depth+1)
	t.insert(t.childFor(idx, t.pos[b]), b, depth+1)
}

// finalize computes aggregate mass and center of mass bottom-up.
// Children are always appended after their parent, so a reverse walk
// over the arena visits every child before its parent.
func (t *quadTree) finalize() {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if t.isInternal(int32(i)) {
			var mass float64
			var com vec.Vec2
			for _, c := range t.nodes[i].children {
				if c != nilNode {
					mass += t.nodes[c].mass
					com = com.Add(t.nodes[c].com.Scale(t.nodes[c].mass))
				}
			}
			t.nodes[i].mass = mass
			t.nodes[i].com = com
		}
		if t.nodes[i].mass > 0 {
			t.nodes[i].com = t.nodes[i].com.Scale(1 / t.nodes[i].mass)
		}
	}
}
