package systems

import (
	"log"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/entities"
	"github.com/decker502/gunroom/pkg/game"
	"github.com/decker502/gunroom/pkg/hud"
	"github.com/decker502/gunroom/pkg/telemetry"
	"github.com/go-gl/mathgl/mgl64"
)

// KillPlaneSystem 回收掉出地图的手雷和宝石，并处理敌人死亡
//
// 敌人掉到击杀平面以下时：奖励 1 金币，敌人重生，玩家传回出生点，
// 障碍物场、手雷金字塔全部重建，宝石全部清除
type KillPlaneSystem struct {
	em      *ecs.EntityManager
	factory *entities.Factory
	state   *game.GameState
	hud     hud.Sink
	hooks   telemetry.Hooks
	control *PlayerControlSystem

	// SpawnPosition 敌人死亡后玩家的传送点
	SpawnPosition mgl64.Vec3

	// OnEnemyKilled 敌人死亡并完成重建后回调（保存档案），可为 nil
	OnEnemyKilled func()
}

// NewKillPlaneSystem 创建击杀平面系统
func NewKillPlaneSystem(em *ecs.EntityManager, factory *entities.Factory, state *game.GameState, sink hud.Sink, hooks telemetry.Hooks, control *PlayerControlSystem, spawn mgl64.Vec3) *KillPlaneSystem {
	if hooks == nil {
		hooks = telemetry.Nop{}
	}
	return &KillPlaneSystem{
		em:            em,
		factory:       factory,
		state:         state,
		hud:           sink,
		hooks:         hooks,
		control:       control,
		SpawnPosition: spawn,
	}
}

// Update 每帧检查一次，返回本帧是否有敌人死亡
func (s *KillPlaneSystem) Update() bool {
	for _, kind := range []components.Kind{components.KindGrenade, components.KindGem} {
		for _, id := range entities.EntitiesOfKind(s.em, kind) {
			if s.belowKillPlane(id) {
				s.despawnLoose(id)
			}
		}
	}

	killed := false
	for _, id := range entities.EntitiesOfKind(s.em, components.KindEnemy) {
		if s.belowKillPlane(id) {
			s.killEnemy(id)
			killed = true
		}
	}
	return killed
}

func (s *KillPlaneSystem) belowKillPlane(id ecs.EntityID) bool {
	bodyComp, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.em, id)
	if !ok {
		return false
	}
	body := s.factory.World.Body(bodyComp.Body)
	return body != nil && body.Position.Y() < config.KillPlaneY
}

func (s *KillPlaneSystem) despawnLoose(id ecs.EntityID) {
	if gem, ok := ecs.GetComponent[*components.GemComponent](s.em, id); ok && gem.Reward {
		s.hud.ClearReward()
	}
	s.factory.Despawn(id)
}

func (s *KillPlaneSystem) killEnemy(id ecs.EntityID) {
	log.Printf("[KillPlaneSystem] Enemy %d fell off the arena", id)
	s.factory.Despawn(id)

	s.state.AddCoins(1)
	s.hooks.EnemyKilled()

	s.factory.NewEnemy()
	if s.control != nil {
		s.control.Teleport(s.SpawnPosition)
	}

	removed := s.factory.DespawnKind(components.KindObstacle)
	rebuilt := len(s.factory.NewObstacleField())
	log.Printf("[KillPlaneSystem] Obstacle field rebuilt: removed %d, built %d", removed, rebuilt)

	s.factory.DespawnKind(components.KindGrenade)
	s.factory.NewGrenadePyramid()

	for _, gem := range entities.EntitiesOfKind(s.em, components.KindGem) {
		s.despawnLoose(gem)
	}

	if s.OnEnemyKilled != nil {
		s.OnEnemyKilled()
	}
}
