package entities

import (
	"image/color"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultBulletProfile 未选中任何枪时的子弹参数（同小枪）
var DefaultBulletProfile = components.BulletProfile{Radius: 0.2, Mass: 5}

// NewBullet 在 pos 处发射一颗子弹，速度 = dir * speed
// 子弹只与物体和其他子弹碰撞，不会打到玩家
func (f *Factory) NewBullet(pos, dir mgl64.Vec3, speed float64, profile components.BulletProfile, tint color.RGBA) ecs.EntityID {
	if profile.Radius <= 0 || profile.Mass <= 0 {
		profile = DefaultBulletProfile
	}
	r := profile.Radius
	node := scenegraph.NewMesh("bullet", mgl64.Vec3{r, r, r}, tint)
	node.SetShadows(true, true)
	return f.spawnBody(components.KindBullet, physics.BodyDesc{
		Mass:          profile.Mass,
		Shape:         physics.Sphere(r),
		Position:      pos,
		Velocity:      dir.Mul(speed),
		Material:      f.Materials.Bullet,
		Group:         physics.GroupBullets,
		Mask:          physics.MaskBullets,
		LinearDamping: config.BulletLinearDamping,
	}, node)
}
