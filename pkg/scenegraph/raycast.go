package scenegraph

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is the nearest intersection of a picking ray.
type Hit struct {
	Node     *Node
	Distance float64
	Point    mgl64.Vec3
	// Ancestors runs from the hit node up to its top-level node.
	Ancestors []*Node
}

// Root is the top-level node of the hit.
func (h Hit) Root() *Node {
	return h.Ancestors[len(h.Ancestors)-1]
}

// Raycast intersects the ray with the geometry under the given top-level
// nodes (pickables) and returns the nearest hit. Handles not in the scene
// are skipped.
func (g *Graph) Raycast(origin, dir mgl64.Vec3, pickables []NodeID) (Hit, bool) {
	if dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, id := range pickables {
		root, ok := g.roots[id]
		if !ok || !root.Visible {
			continue
		}
		root.Traverse(func(n *Node) {
			if n.Bounds.Len() == 0 || !n.Visible {
				return
			}
			center, half := worldAABB(n)
			if t, ok := rayAABB(origin, dir, center.Sub(half), center.Add(half)); ok && t < best.Distance {
				best = Hit{
					Node:      n,
					Distance:  t,
					Point:     origin.Add(dir.Mul(t)),
					Ancestors: n.Ancestors(),
				}
				found = true
			}
		})
	}
	return best, found
}

// worldAABB returns the world-space centre and axis-aligned half extents of
// the node's own geometry.
func worldAABB(n *Node) (center, half mgl64.Vec3) {
	pos, rot, scale := n.WorldTransform()
	scaled := mgl64.Vec3{n.Bounds[0] * scale[0], n.Bounds[1] * scale[1], n.Bounds[2] * scale[2]}
	axes := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, axis := range axes {
		a := rot.Rotate(axis).Mul(math.Abs(scaled[i]))
		half[0] += math.Abs(a[0])
		half[1] += math.Abs(a[1])
		half[2] += math.Abs(a[2])
	}
	return pos, half
}

// rayAABB is the slab test; it returns the entry distance (or 0 when the
// origin is inside the box).
func rayAABB(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
