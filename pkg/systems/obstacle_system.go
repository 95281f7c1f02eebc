package systems

import (
	"math"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
)

// ObstacleSystem 按脚本移动摆动障碍物（运动学，不受物理驱动）
type ObstacleSystem struct {
	em    *ecs.EntityManager
	world physics.World
}

// NewObstacleSystem 创建障碍物系统
func NewObstacleSystem(em *ecs.EntityManager, world physics.World) *ObstacleSystem {
	return &ObstacleSystem{em: em, world: world}
}

// OscillationOffset 摆动偏移：sin(nowMs*0.001 + phase) * amplitude
func OscillationOffset(nowMs, phase, amplitude float64) float64 {
	return math.Sin(nowMs*config.ObstacleTimeScale+phase) * amplitude
}

// Update 在物理步进前覆盖摆动障碍物的 Z 坐标
// nowMs 为模拟时钟（毫秒）
func (s *ObstacleSystem) Update(nowMs float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.OscillatorComponent, *components.PhysicsBodyComponent](s.em) {
		osc, _ := ecs.GetComponent[*components.OscillatorComponent](s.em, id)
		bodyComp, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, id)
		body := s.world.Body(bodyComp.Body)
		if body == nil {
			continue
		}
		body.Position[2] = osc.BaseZ + OscillationOffset(nowMs, osc.Phase, osc.Amplitude)
	}
}
