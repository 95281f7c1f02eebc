package entities

import (
	"image/color"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// NewPlayer 创建玩家实体：固定旋转的 1×2×1 刚体、摄像机、弹匣和换弹计时器
// 玩家没有视觉节点
func (f *Factory) NewPlayer(capacity int, bulletColor color.RGBA) ecs.EntityID {
	if capacity <= 0 {
		capacity = config.DefaultMagazineSize
	}
	start := vec(f.Config.Player.StartPosition)

	id := f.EM.CreateEntity()
	f.EM.AddComponent(id, &components.KindComponent{Kind: components.KindPlayer})
	body := f.World.AddBody(physics.BodyDesc{
		Mass:          config.PlayerMass,
		Shape:         physics.Box(mgl64.Vec3{0.5, 1, 0.5}),
		Position:      start,
		Material:      f.Materials.Player,
		Group:         physics.GroupPlayer,
		Mask:          physics.MaskPlayer,
		FixedRotation: true,
	})
	f.EM.AddComponent(id, &components.PhysicsBodyComponent{Body: body})
	f.EM.AddComponent(id, &components.PlayerComponent{
		Height:  config.PlayerHeight,
		Speed:   f.Config.Player.Speed,
		CanJump: true,
	})
	f.EM.AddComponent(id, &components.CameraComponent{
		Position: mgl64.Vec3{start.X(), config.PlayerHeight, start.Z()},
	})
	f.EM.AddComponent(id, &components.MagazineComponent{
		Capacity:    capacity,
		BulletColor: bulletColor,
	})
	f.EM.AddComponent(id, &components.TimerComponent{
		Name:       "reload",
		TargetTime: config.ReloadDelay,
	})
	return id
}
