package entities

import (
	"log"

	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/config"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/physics"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// NewObstacleField 在网格上随机生成障碍物
// 每个格点以 SpawnChance 的概率生成一个随机高度的方柱，
// 其中以 OscillateChance 的概率成为沿 Z 轴摆动的障碍物。
// 摆动障碍物的相位 = 生成序号 * 0.5
func (f *Factory) NewObstacleField() []ecs.EntityID {
	cfg := f.Config.Obstacles
	var ids []ecs.EntityID
	index := 0
	for x := cfg.MinX; x <= cfg.MaxX; x += cfg.Spacing {
		for z := cfg.MinZ; z <= cfg.MaxZ; z += cfg.Spacing {
			if f.Rand.Float64() >= cfg.SpawnChance {
				continue
			}
			height := f.Rand.Float64() * cfg.MaxHeight
			oscillate := f.Rand.Float64() < cfg.OscillateChance
			ids = append(ids, f.NewObstacle(index, mgl64.Vec3{x, 0, z}, height, oscillate))
			index++
		}
	}
	log.Printf("[ObstacleFactory] Built %d obstacles", len(ids))
	return ids
}

// NewObstacle 创建一个障碍物；oscillate 为 true 时附加摆动组件
func (f *Factory) NewObstacle(index int, pos mgl64.Vec3, height float64, oscillate bool) ecs.EntityID {
	size := f.Config.Obstacles.Size
	if size <= 0 {
		size = 3
	}
	half := mgl64.Vec3{size / 2, height / 2, size / 2}

	node := scenegraph.NewMesh("obstacle", half, white)
	node.SetShadows(true, true)
	id := f.spawnBody(components.KindObstacle, physics.BodyDesc{
		Shape:    physics.Box(half),
		Position: pos,
		Material: f.Materials.Wall,
		Group:    physics.GroupObjects,
		Mask:     physics.MaskObjects,
	}, node)

	if oscillate {
		f.EM.AddComponent(id, &components.OscillatorComponent{
			Index:     index,
			BaseZ:     pos.Z(),
			Phase:     float64(index) * config.ObstaclePhaseStep,
			Amplitude: config.ObstacleAmplitude,
		})
	}
	return id
}
