package entities

import (
	"github.com/decker502/gunroom/pkg/components"
	"github.com/decker502/gunroom/pkg/ecs"
	"github.com/decker502/gunroom/pkg/scenegraph"
)

// Despawn 同时移除实体的刚体、视觉节点和注册表记录
func (f *Factory) Despawn(id ecs.EntityID) {
	if !f.EM.Exists(id) {
		return
	}
	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](f.EM, id); ok && body.Body != 0 {
		f.World.RemoveBody(body.Body)
	}
	if visual, ok := ecs.GetComponent[*components.VisualComponent](f.EM, id); ok && visual.Node != 0 {
		f.Scene.Remove(visual.Node)
	}
	f.EM.RemoveEntity(id)
}

// DespawnKind 移除某一类别的全部实体，返回移除数量
func (f *Factory) DespawnKind(kind components.Kind) int {
	ids := EntitiesOfKind(f.EM, kind)
	for _, id := range ids {
		f.Despawn(id)
	}
	return len(ids)
}

// EntitiesOfKind 返回某类别的实体，按 ID 升序
func EntitiesOfKind(em *ecs.EntityManager, kind components.Kind) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](em) {
		if k, _ := ecs.GetComponent[*components.KindComponent](em, id); k.Kind == kind {
			out = append(out, id)
		}
	}
	return out
}

// CountKind 某类别的实体数量
func CountKind(em *ecs.EntityManager, kind components.Kind) int {
	return len(EntitiesOfKind(em, kind))
}

// KindOf 返回实体类别
func KindOf(em *ecs.EntityManager, id ecs.EntityID) (components.Kind, bool) {
	k, ok := ecs.GetComponent[*components.KindComponent](em, id)
	if !ok {
		return 0, false
	}
	return k.Kind, true
}

// EntityForNode 根据顶层视觉节点查找实体
func EntityForNode(em *ecs.EntityManager, node scenegraph.NodeID) (ecs.EntityID, bool) {
	if node == 0 {
		return 0, false
	}
	for _, id := range ecs.GetEntitiesWith1[*components.VisualComponent](em) {
		if v, _ := ecs.GetComponent[*components.VisualComponent](em, id); v.Node == node {
			return id, true
		}
	}
	return 0, false
}

// PickableNodes 返回所有已加载的可拾取物节点
func PickableNodes(em *ecs.EntityManager) []scenegraph.NodeID {
	var out []scenegraph.NodeID
	for _, id := range ecs.GetEntitiesWith2[*components.PickableComponent, *components.VisualComponent](em) {
		if v, _ := ecs.GetComponent[*components.VisualComponent](em, id); v.Ready() {
			out = append(out, v.Node)
		}
	}
	return out
}

// EntityForPickable 返回某个可拾取种类对应的实体
func EntityForPickable(em *ecs.EntityManager, variant components.Pickable) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PickableComponent](em) {
		if p, _ := ecs.GetComponent[*components.PickableComponent](em, id); p.Variant == variant {
			return id, true
		}
	}
	return 0, false
}
