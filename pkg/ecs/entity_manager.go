// Package ecs 提供实体注册表：实体ID分配、组件存储与按组件类型查询。
//
// 组件按类型分列存储（每种组件一张 EntityID -> 实例 的表），查询时从
// 最小的那张表出发再逐一比对其余类型。删除立即生效，没有延迟回收。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// store 某一种组件类型的全部实例
type store map[EntityID]any

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores map[reflect.Type]store
}

// NewEntityManager 创建空注册表
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]store),
	}
}

// CreateEntity 分配一个新的实体ID，ID 单调递增且不复用
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// Exists 报告 id 是否仍然存活
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// RemoveEntity 立即删除实体及其全部组件；对已删除的实体无操作
func (em *EntityManager) RemoveEntity(id EntityID) {
	if _, ok := em.alive[id]; !ok {
		return
	}
	delete(em.alive, id)
	for t, s := range em.stores {
		delete(s, id)
		if len(s) == 0 {
			delete(em.stores, t)
		}
	}
}

// AddComponent 挂载组件，同类型的旧组件被替换；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if !em.Exists(id) || component == nil {
		return
	}
	t := reflect.TypeOf(component)
	s, ok := em.stores[t]
	if !ok {
		s = make(store)
		em.stores[t] = s
	}
	s[id] = component
}

// RemoveComponent 卸下实体上指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	s, ok := em.stores[componentType]
	if !ok {
		return
	}
	delete(s, id)
	if len(s) == 0 {
		delete(em.stores, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, ok := em.stores[componentType][id]
	return comp, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// Count 返回当前存活的实体数量
func (em *EntityManager) Count() int {
	return len(em.alive)
}

// GetEntitiesWith 查询拥有全部指定组件类型的实体，结果按ID升序。
// 不带参数时返回所有存活实体。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	if len(componentTypes) == 0 {
		result = make([]EntityID, 0, len(em.alive))
		for id := range em.alive {
			result = append(result, id)
		}
		slices.Sort(result)
		return result
	}

	smallest := componentTypes[0]
	for _, t := range componentTypes[1:] {
		if len(em.stores[t]) < len(em.stores[smallest]) {
			smallest = t
		}
	}

	for id := range em.stores[smallest] {
		if em.hasAll(id, componentTypes) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func (em *EntityManager) hasAll(id EntityID, componentTypes []reflect.Type) bool {
	for _, t := range componentTypes {
		if _, ok := em.stores[t][id]; !ok {
			return false
		}
	}
	return true
}
