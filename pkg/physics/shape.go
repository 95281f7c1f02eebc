package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType 碰撞形状类型
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeBox
	ShapeConvexHull
)

// Shape describes a collision shape in body-local coordinates.
type Shape struct {
	Type        ShapeType
	Radius      float64      // sphere radius
	HalfExtents mgl64.Vec3   // box half extents
	Points      []mgl64.Vec3 // convex hull vertices
}

func Sphere(radius float64) Shape {
	return Shape{Type: ShapeSphere, Radius: radius}
}

func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Type: ShapeBox, HalfExtents: halfExtents}
}

// ConvexHull builds a hull shape from already deduplicated vertices.
func ConvexHull(points []mgl64.Vec3) Shape {
	pts := make([]mgl64.Vec3, len(points))
	copy(pts, points)
	return Shape{Type: ShapeConvexHull, Points: pts}
}

// BoundingRadius returns the radius of the smallest origin-centred sphere
// enclosing the shape.
func (s Shape) BoundingRadius() float64 {
	switch s.Type {
	case ShapeSphere:
		return s.Radius
	case ShapeBox:
		return s.HalfExtents.Len()
	case ShapeConvexHull:
		r := 0.0
		for _, p := range s.Points {
			r = math.Max(r, p.Len())
		}
		return r
	}
	return 0
}

// aabbHalf returns the world-axis-aligned half extents of the shape under
// orientation q. Spheres and hulls use their bounding radius.
func (s Shape) aabbHalf(q mgl64.Quat) mgl64.Vec3 {
	if s.Type != ShapeBox {
		r := s.BoundingRadius()
		return mgl64.Vec3{r, r, r}
	}
	var half mgl64.Vec3
	axes := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, axis := range axes {
		a := q.Rotate(axis).Mul(s.HalfExtents[i])
		half[0] += math.Abs(a[0])
		half[1] += math.Abs(a[1])
		half[2] += math.Abs(a[2])
	}
	return half
}
