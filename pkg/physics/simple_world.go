package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Default surface response when no contact material is registered for a pair.
const (
	DefaultFriction    = 0.3
	DefaultRestitution = 0.0
)

type materialPair struct {
	a, b MaterialID
}

func makePair(a, b MaterialID) materialPair {
	if a > b {
		a, b = b, a
	}
	return materialPair{a: a, b: b}
}

// SimpleWorld integrates bodies with semi-implicit Euler and resolves
// dynamic-vs-static contacts with axis-aligned push-out and
// dynamic-vs-dynamic contacts as spheres.
type SimpleWorld struct {
	Gravity mgl64.Vec3

	nextID       BodyID
	nextMaterial MaterialID
	bodies       map[BodyID]*Body
	order        []BodyID
	contacts     map[materialPair]ContactMaterial
}

// NewSimpleWorld creates an empty world with the given gravity.
func NewSimpleWorld(gravity mgl64.Vec3) *SimpleWorld {
	return &SimpleWorld{
		Gravity:      gravity,
		nextID:       1,
		nextMaterial: DefaultMaterial + 1,
		bodies:       make(map[BodyID]*Body),
		contacts:     make(map[materialPair]ContactMaterial),
	}
}

func (w *SimpleWorld) AddBody(desc BodyDesc) BodyID {
	id := w.nextID
	w.nextID++

	q := desc.Quaternion
	if q.W == 0 && q.V.Len() == 0 {
		q = mgl64.QuatIdent()
	}

	w.bodies[id] = &Body{
		ID:            id,
		Mass:          desc.Mass,
		Shape:         desc.Shape,
		Material:      desc.Material,
		Group:         desc.Group,
		Mask:          desc.Mask,
		LinearDamping: desc.LinearDamping,
		FixedRotation: desc.FixedRotation,
		Position:      desc.Position,
		Quaternion:    q,
		Velocity:      desc.Velocity,
	}
	w.order = append(w.order, id)
	return id
}

func (w *SimpleWorld) RemoveBody(id BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	i := sort.Search(len(w.order), func(i int) bool { return w.order[i] >= id })
	if i < len(w.order) && w.order[i] == id {
		w.order = append(w.order[:i], w.order[i+1:]...)
	}
}

func (w *SimpleWorld) Body(id BodyID) *Body {
	return w.bodies[id]
}

func (w *SimpleWorld) BodyCount() int {
	return len(w.bodies)
}

func (w *SimpleWorld) NewMaterial() MaterialID {
	id := w.nextMaterial
	w.nextMaterial++
	return id
}

func (w *SimpleWorld) AddContactMaterial(cm ContactMaterial) {
	w.contacts[makePair(cm.A, cm.B)] = cm
}

// contactFor returns the registered response for a material pair.
func (w *SimpleWorld) contactFor(a, b MaterialID) (friction, restitution float64) {
	if cm, ok := w.contacts[makePair(a, b)]; ok {
		return cm.Friction, cm.Restitution
	}
	return DefaultFriction, DefaultRestitution
}

// Step advances the simulation by dt seconds.
func (w *SimpleWorld) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, id := range w.order {
		b := w.bodies[id]
		if b.IsStatic() {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		if b.LinearDamping > 0 {
			b.Velocity = b.Velocity.Mul(math.Pow(1-b.LinearDamping, dt))
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		if !b.FixedRotation && b.AngularVelocity.Len() > 0 {
			spin := mgl64.Quat{W: 0, V: b.AngularVelocity}.Mul(b.Quaternion).Scale(0.5 * dt)
			b.Quaternion = b.Quaternion.Add(spin).Normalize()
		}
	}

	for i, idA := range w.order {
		a := w.bodies[idA]
		for _, idB := range w.order[i+1:] {
			b := w.bodies[idB]
			if a.IsStatic() && b.IsStatic() {
				continue
			}
			if !CanCollide(a.Group, a.Mask, b.Group, b.Mask) {
				continue
			}
			switch {
			case a.IsStatic():
				w.resolveStatic(b, a, dt)
			case b.IsStatic():
				w.resolveStatic(a, b, dt)
			default:
				w.resolveDynamic(a, b)
			}
		}
	}
}

// resolveStatic pushes dyn out of st along the axis of least penetration and
// removes the approaching velocity component.
func (w *SimpleWorld) resolveStatic(dyn, st *Body, dt float64) {
	ha := dyn.Shape.aabbHalf(dyn.Quaternion)
	hb := st.Shape.aabbHalf(st.Quaternion)
	d := dyn.Position.Sub(st.Position)

	axis := -1
	depth := math.Inf(1)
	for i := 0; i < 3; i++ {
		o := ha[i] + hb[i] - math.Abs(d[i])
		if o <= 0 {
			return
		}
		if o < depth {
			depth = o
			axis = i
		}
	}

	var n mgl64.Vec3
	if d[axis] >= 0 {
		n[axis] = 1
	} else {
		n[axis] = -1
	}
	dyn.Position = dyn.Position.Add(n.Mul(depth))

	friction, restitution := w.contactFor(dyn.Material, st.Material)
	vn := dyn.Velocity.Dot(n)
	if vn >= 0 {
		return
	}
	normal := n.Mul(vn)
	tangent := dyn.Velocity.Sub(normal)
	if speed := tangent.Len(); speed > 0 && friction > 0 {
		drop := friction * w.Gravity.Len() * dt
		if drop >= speed {
			tangent = mgl64.Vec3{}
		} else {
			tangent = tangent.Mul((speed - drop) / speed)
		}
	}
	dyn.Velocity = tangent.Sub(normal.Mul(restitution))
}

// resolveDynamic treats both bodies as bounding spheres and exchanges an
// impulse along the contact normal.
func (w *SimpleWorld) resolveDynamic(a, b *Body) {
	ra := a.Shape.BoundingRadius()
	rb := b.Shape.BoundingRadius()
	d := b.Position.Sub(a.Position)
	dist := d.Len()
	if dist >= ra+rb {
		return
	}

	n := mgl64.Vec3{0, 1, 0}
	if dist > 1e-9 {
		n = d.Mul(1 / dist)
	}
	invA, invB := 1/a.Mass, 1/b.Mass
	depth := ra + rb - dist
	share := depth / (invA + invB)
	a.Position = a.Position.Sub(n.Mul(share * invA))
	b.Position = b.Position.Add(n.Mul(share * invB))

	rel := b.Velocity.Sub(a.Velocity).Dot(n)
	if rel >= 0 {
		return
	}
	_, restitution := w.contactFor(a.Material, b.Material)
	j := -(1 + restitution) * rel / (invA + invB)
	a.Velocity = a.Velocity.Sub(n.Mul(j * invA))
	b.Velocity = b.Velocity.Add(n.Mul(j * invB))
}
