// Package scenegraph is the visual side of every entity: a hierarchy of
// nodes with transforms, bounds and shadow flags, plus a ray query used for
// pointer picking. Rendering reads it; the game core only writes transforms.
package scenegraph

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeID 视觉节点句柄，0 为无效值
type NodeID uint64

// Node is one element of the visual hierarchy.
type Node struct {
	ID   NodeID
	Name string
	// Tag carries game data for top-level nodes (e.g. the pickable variant).
	Tag any

	Position   mgl64.Vec3
	Quaternion mgl64.Quat
	Scale      mgl64.Vec3
	// Bounds are local half extents of the node's own geometry; zero means
	// the node is a pure group.
	Bounds mgl64.Vec3
	Color  color.RGBA

	CastShadow    bool
	ReceiveShadow bool
	Visible       bool

	Parent   *Node
	Children []*Node
}

// NewNode creates a visible node with identity transform and unit scale.
func NewNode(name string) *Node {
	return &Node{
		Name:       name,
		Quaternion: mgl64.QuatIdent(),
		Scale:      mgl64.Vec3{1, 1, 1},
		Visible:    true,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// NewMesh creates a node with box-shaped geometry of the given half extents.
func NewMesh(name string, halfExtents mgl64.Vec3, c color.RGBA) *Node {
	n := NewNode(name)
	n.Bounds = halfExtents
	n.Color = c
	return n
}

// AddChild attaches child under n.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Traverse visits n and every descendant depth-first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// SetShadows sets both shadow flags on n and all descendants.
func (n *Node) SetShadows(cast, receive bool) {
	n.Traverse(func(c *Node) {
		c.CastShadow = cast
		c.ReceiveShadow = receive
	})
}

// Root walks up to the top-level ancestor.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Ancestors returns n followed by its parents up to the root.
func (n *Node) Ancestors() []*Node {
	chain := []*Node{n}
	for p := n.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	return chain
}

// Clone deep-copies the subtree. IDs are cleared; the copy is detached.
func (n *Node) Clone() *Node {
	c := *n
	c.ID = 0
	c.Parent = nil
	c.Children = nil
	for _, child := range n.Children {
		c.AddChild(child.Clone())
	}
	return &c
}

// WorldTransform composes the transforms from the root down to n.
func (n *Node) WorldTransform() (pos mgl64.Vec3, rot mgl64.Quat, scale mgl64.Vec3) {
	chain := n.Ancestors()
	pos = mgl64.Vec3{}
	rot = mgl64.QuatIdent()
	scale = mgl64.Vec3{1, 1, 1}
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		local := mgl64.Vec3{
			node.Position[0] * scale[0],
			node.Position[1] * scale[1],
			node.Position[2] * scale[2],
		}
		pos = pos.Add(rot.Rotate(local))
		rot = rot.Mul(node.Quaternion)
		scale = mgl64.Vec3{scale[0] * node.Scale[0], scale[1] * node.Scale[1], scale[2] * node.Scale[2]}
	}
	return pos, rot, scale
}
