// Package physics is the rigid-body collaborator of the arena: the World
// contract the game core talks to plus SimpleWorld, a small reference
// implementation good enough for the demo and for tests.
package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyID 物理刚体句柄，0 为无效值
type BodyID uint64

// MaterialID identifies a surface material for contact lookups.
type MaterialID int

// DefaultMaterial is used by bodies that do not name one.
const DefaultMaterial MaterialID = 0

// ContactMaterial defines how two materials interact on contact.
type ContactMaterial struct {
	A, B        MaterialID
	Friction    float64
	Restitution float64
}

// BodyDesc is everything needed to construct a body.
// Mass 0 makes the body static; static bodies may still be moved by writing
// Body.Position (kinematic scripting).
type BodyDesc struct {
	Mass          float64
	Shape         Shape
	Position      mgl64.Vec3
	Quaternion    mgl64.Quat // zero value means identity
	Velocity      mgl64.Vec3
	Material      MaterialID
	Group         Group
	Mask          Group
	LinearDamping float64
	FixedRotation bool
}

// Body is the live simulation state of one rigid body. Callers may mutate
// Position, Quaternion, Velocity and AngularVelocity between steps.
type Body struct {
	ID              BodyID
	Mass            float64
	Shape           Shape
	Material        MaterialID
	Group           Group
	Mask            Group
	LinearDamping   float64
	FixedRotation   bool
	Position        mgl64.Vec3
	Quaternion      mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
}

// IsStatic reports whether the body ignores forces.
func (b *Body) IsStatic() bool {
	return b.Mass <= 0
}

// World is the physics contract used by the game core.
type World interface {
	Step(dt float64)
	AddBody(desc BodyDesc) BodyID
	RemoveBody(id BodyID)
	// Body returns the live body or nil when id is unknown.
	Body(id BodyID) *Body
	NewMaterial() MaterialID
	AddContactMaterial(cm ContactMaterial)
	BodyCount() int
}
