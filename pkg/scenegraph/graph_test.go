package scenegraph

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func gunModel(name string) *Node {
	root := NewNode(name)
	barrel := NewMesh("barrel", mgl64.Vec3{0.5, 0.1, 0.1}, white)
	barrel.Position = mgl64.Vec3{0.3, 0, 0}
	grip := NewMesh("grip", mgl64.Vec3{0.1, 0.3, 0.1}, white)
	grip.Position = mgl64.Vec3{0, -0.3, 0}
	root.AddChild(barrel)
	root.AddChild(grip)
	return root
}

func TestAddAndRemoveSubtree(t *testing.T) {
	g := NewGraph()
	gun := gunModel("bigGun")
	id := g.Add(gun)

	if g.Node(id) != gun {
		t.Fatal("root not indexed")
	}
	for _, c := range gun.Children {
		if g.Node(c.ID) != c {
			t.Errorf("child %q not indexed", c.Name)
		}
	}

	g.Remove(id)
	if g.Contains(id) || g.Node(gun.Children[0].ID) != nil {
		t.Error("subtree should be gone after Remove")
	}
	g.Remove(id) // 重复删除应为空操作
}

func TestWorldTransformComposesScale(t *testing.T) {
	gun := gunModel("gun")
	gun.Position = mgl64.Vec3{40, 1, -5}
	gun.Scale = mgl64.Vec3{3, 3, 3}

	pos, _, scale := gun.Children[0].WorldTransform()

	want := mgl64.Vec3{40.9, 1, -5}
	if !pos.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("barrel world position = %v, want %v", pos, want)
	}
	if scale != (mgl64.Vec3{3, 3, 3}) {
		t.Errorf("barrel world scale = %v", scale)
	}
}

func TestRaycastReturnsNearestWithAncestors(t *testing.T) {
	g := NewGraph()
	near := gunModel("mediumGun")
	near.Position = mgl64.Vec3{0, 1, -10}
	far := gunModel("bigGun")
	far.Position = mgl64.Vec3{0, 1, -20}
	nearID := g.Add(near)
	farID := g.Add(far)

	hit, ok := g.Raycast(mgl64.Vec3{0.3, 1, 0}, mgl64.Vec3{0, 0, -1}, []NodeID{farID, nearID})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Root() != near {
		t.Errorf("nearest root = %q, want mediumGun", hit.Root().Name)
	}
	if hit.Node.Name != "barrel" {
		t.Errorf("hit node = %q, want barrel", hit.Node.Name)
	}
	if math.Abs(hit.Distance-9.9) > 1e-9 {
		t.Errorf("distance = %v, want 9.9", hit.Distance)
	}
	if len(hit.Ancestors) != 2 || hit.Ancestors[1] != near {
		t.Errorf("ancestor chain = %v", hit.Ancestors)
	}
}

func TestRaycastMissAndNonPickable(t *testing.T) {
	g := NewGraph()
	gun := gunModel("gun")
	gun.Position = mgl64.Vec3{0, 1, -10}
	g.Add(gun)
	wall := NewMesh("wall", mgl64.Vec3{50, 10, 1}, white)
	wall.Position = mgl64.Vec3{0, 10, -5}
	g.Add(wall)

	// 只对可拾取列表中的节点做检测：墙不在列表中
	if _, ok := g.Raycast(mgl64.Vec3{0.3, 1, 0}, mgl64.Vec3{0, 0, -1}, nil); ok {
		t.Error("empty pickable set must not hit")
	}
	if _, ok := g.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}, []NodeID{gun.ID}); ok {
		t.Error("ray pointing up should miss")
	}
	if _, ok := g.Raycast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{}, []NodeID{gun.ID}); ok {
		t.Error("zero direction should miss")
	}
}

func TestCloneIsDetached(t *testing.T) {
	g := NewGraph()
	src := gunModel("gun")
	g.Add(src)

	c := src.Clone()
	if c.ID != 0 || c.Children[0].ID != 0 {
		t.Error("clone should not keep ids")
	}
	if c.Children[0].Parent != c {
		t.Error("clone children should point at the clone")
	}
	c.Children[0].Position = mgl64.Vec3{9, 9, 9}
	if src.Children[0].Position == c.Children[0].Position {
		t.Error("clone shares child storage with source")
	}
}

func TestSetShadows(t *testing.T) {
	gun := gunModel("gun")
	gun.SetShadows(true, true)
	gun.Traverse(func(n *Node) {
		if !n.CastShadow || !n.ReceiveShadow {
			t.Errorf("node %q missing shadow flags", n.Name)
		}
	})
}
