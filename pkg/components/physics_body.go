package components

import "github.com/decker502/gunroom/pkg/physics"

// PhysicsBodyComponent 实体在物理世界中的刚体句柄
// 物理是权威数据源，同步系统每帧把刚体变换写回视觉节点
type PhysicsBodyComponent struct {
	Body physics.BodyID
}
