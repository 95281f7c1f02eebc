package systems

import (
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
)

// SyncSystem 把刚体变换复制到配对的视觉节点，物理为权威数据
// 同时检测奖励宝石落地以清除奖励文字
type SyncSystem struct {
	em    *ecs.EntityManager
	world physics.World
	scene scenegraph.Scene
	hud   hud.Sink
}

// NewSyncSystem 创建同步系统
func NewSyncSystem(em *ecs.EntityManager, world physics.World, scene scenegraph.Scene, sink hud.Sink) *SyncSystem {
	return &SyncSystem{em: em, world: world, scene: scene, hud: sink}
}

// Update 同步所有同时拥有刚体和已就绪视觉的实体，返回同步数量
func (s *SyncSystem) Update() int {
	synced := 0
	for _, id := range ecs.GetEntitiesWith2[*components.PhysicsBodyComponent, *components.VisualComponent](s.em) {
		visual, _ := ecs.GetComponent[*components.VisualComponent](s.em, id)
		if !visual.Ready() {
			continue
		}
		bodyComp, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, id)
		body := s.world.Body(bodyComp.Body)
		node := s.scene.Node(visual.Node)
		if body == nil || node == nil {
			continue
		}
		node.Position = body.Position
		node.Quaternion = body.Quaternion
		synced++
	}

	s.checkRewardGem()
	return synced
}

func (s *SyncSystem) checkRewardGem() {
	for _, id := range ecs.GetEntitiesWith2[*components.GemComponent, *components.PhysicsBodyComponent](s.em) {
		gem, _ := ecs.GetComponent[*components.GemComponent](s.em, id)
		if !gem.Reward {
			continue
		}
		bodyComp, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, id)
		body := s.world.Body(bodyComp.Body)
		if body == nil || body.Position.Y() >= config.RewardClearHeight {
			continue
		}
		// 只在下落时清除，刚弹出时还在上升
		if body.Velocity.Y() > 0 {
			continue
		}
		gem.Reward = false
		s.hud.ClearReward()
	}
}
