package entities

import (
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// NewEnemy 创建敌人：半径 3、质量 20 的球体，模型异步加载
// 模型加载完成前实体没有视觉，同步系统会跳过它
func (f *Factory) NewEnemy() ecs.EntityID {
	id := f.spawnBody(components.KindEnemy, physics.BodyDesc{
		Mass:          config.EnemyMass,
		Shape:         physics.Sphere(config.EnemyRadius),
		Position:      vec(f.Config.Enemy.Spawn),
		Quaternion:    mgl64.QuatRotate(0.7*math.Pi, mgl64.Vec3{0, 1, 0}),
		Group:         physics.GroupObjects,
		Mask:          physics.MaskObjects,
		LinearDamping: config.EnemyLinearDamping,
	}, nil)

	f.attachModel(id, f.Config.Models.Enemy, func(n *scenegraph.Node) {
		n.Name = "robot"
		n.Scale = mgl64.Vec3{2, 2, 2}
	})
	return id
}
