package scenegraph

import "sort"

// Scene is the rendering collaborator contract used by the game core.
type Scene interface {
	// Add inserts a top-level node (with its subtree) and returns its handle.
	Add(root *Node) NodeID
	// Remove detaches a top-level node; unknown handles are ignored.
	Remove(id NodeID)
	// Node looks up any node in the scene, nil when absent.
	Node(id NodeID) *Node
}

// Graph is an in-memory Scene.
type Graph struct {
	nextID NodeID
	roots  map[NodeID]*Node
	nodes  map[NodeID]*Node
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		nextID: 1,
		roots:  make(map[NodeID]*Node),
		nodes:  make(map[NodeID]*Node),
	}
}

func (g *Graph) Add(root *Node) NodeID {
	root.Traverse(func(n *Node) {
		if n.ID == 0 {
			n.ID = g.nextID
			g.nextID++
		}
		g.nodes[n.ID] = n
	})
	g.roots[root.ID] = root
	return root.ID
}

func (g *Graph) Remove(id NodeID) {
	root, ok := g.roots[id]
	if !ok {
		return
	}
	root.Traverse(func(n *Node) {
		delete(g.nodes, n.ID)
	})
	delete(g.roots, id)
}

func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Contains reports whether a top-level node with this handle is in the scene.
func (g *Graph) Contains(id NodeID) bool {
	_, ok := g.roots[id]
	return ok
}

// Roots returns top-level nodes ordered by handle.
func (g *Graph) Roots() []*Node {
	ids := make([]NodeID, 0, len(g.roots))
	for id := range g.roots {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = g.roots[id]
	}
	return out
}

// Len returns the number of top-level nodes.
func (g *Graph) Len() int {
	return len(g.roots)
}
