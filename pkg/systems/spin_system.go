package systems

import (
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/scenegraph"
	"github.com/go-gl/mathgl/mgl64"
)

// SpinSystem 可拾取物每帧绕 Y 轴旋转
type SpinSystem struct {
	em    *ecs.EntityManager
	scene scenegraph.Scene
}

// NewSpinSystem 创建旋转系统
func NewSpinSystem(em *ecs.EntityManager, scene scenegraph.Scene) *SpinSystem {
	return &SpinSystem{em: em, scene: scene}
}

// Update 每帧调用一次；模型未加载时角度照样累加
func (s *SpinSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.SpinComponent, *components.VisualComponent](s.em) {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.em, id)
		spin.Angle += spin.RatePerFrame

		visual, _ := ecs.GetComponent[*components.VisualComponent](s.em, id)
		if node := s.scene.Node(visual.Node); node != nil {
			node.Quaternion = mgl64.QuatRotate(spin.Angle, mgl64.Vec3{0, 1, 0})
		}
	}
}
