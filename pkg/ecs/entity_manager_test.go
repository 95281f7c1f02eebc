package ecs

import (
	"reflect"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	// 添加组件
	em.AddComponent(id, &testPositionComponent{})

	// 添加后应该返回true
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestRemoveEntityDropsAllComponents(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})
	em.AddComponent(id, &testVelocityComponent{})

	em.RemoveEntity(id)

	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("position should be gone with the entity")
	}
	if got := em.GetEntitiesWith(reflect.TypeOf(&testVelocityComponent{})); len(got) != 0 {
		t.Errorf("velocity query: got %v, want none", got)
	}

	// 对已删除实体再次删除、挂载组件都应无效果
	em.RemoveEntity(id)
	em.AddComponent(id, &testPositionComponent{})
	if em.Exists(id) || em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("removed entity must not come back")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)

	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}

	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询只拥有 Position 的实体
	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestMultipleComponentTypes(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加多个不同类型的组件
	em.AddComponent(id, &testPositionComponent{X: 10, Y: 20})
	em.AddComponent(id, &testVelocityComponent{VX: 5, VY: 10})

	// 验证两个组件都能正确获取
	posComp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Position component should be found")
	}
	pos := posComp.(*testPositionComponent)
	if pos.X != 10 || pos.Y != 20 {
		t.Error("Position component data mismatch")
	}

	velComp, found := em.GetComponent(id, reflect.TypeOf(&testVelocityComponent{}))
	if !found {
		t.Error("Velocity component should be found")
	}
	vel := velComp.(*testVelocityComponent)
	if vel.VX != 5 || vel.VY != 10 {
		t.Error("Velocity component data mismatch")
	}
}

func TestRemoveSomeEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()
	for _, id := range []EntityID{id1, id2, id3} {
		em.AddComponent(id, &testPositionComponent{})
	}

	em.RemoveEntity(id1)
	em.RemoveEntity(id3)

	got := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(got) != 1 || got[0] != id2 {
		t.Errorf("got %v, want [%d]", got, id2)
	}
	if em.Count() != 1 {
		t.Errorf("Count: got %d, want 1", em.Count())
	}

	// ID 不复用
	if next := em.CreateEntity(); next != 4 {
		t.Errorf("next id: got %d, want 4", next)
	}
}

func TestReplaceComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 1})
	em.AddComponent(id, &testPositionComponent{X: 2})

	pos, _ := GetComponent[*testPositionComponent](em, id)
	if pos.X != 2 {
		t.Errorf("X: got %v, want 2", pos.X)
	}
	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 1 {
		t.Errorf("query: got %d entities, want 1", n)
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
	}

	ids := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending at %d: %v", i, ids)
		}
	}
}

func TestRemoveEntityIsImmediate(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.RemoveEntity(id)

	if em.Exists(id) {
		t.Error("entity should be gone right after RemoveEntity")
	}
	if em.Count() != 0 {
		t.Errorf("Count: got %d, want 0", em.Count())
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3})
	other := em.CreateEntity()
	em.AddComponent(other, &testVelocityComponent{VX: 1})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 {
		t.Fatalf("GetComponent: got (%v, %v)", pos, ok)
	}
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("GetComponent should miss an absent component")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report the position component")
	}

	if got := GetEntitiesWith1[*testVelocityComponent](em); len(got) != 1 || got[0] != other {
		t.Errorf("GetEntitiesWith1: got %v", got)
	}

	em.AddComponent(id, &testVelocityComponent{})
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("GetEntitiesWith2: got %v", got)
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("RemoveComponent should drop the component")
	}
}

// 随机创建/删除/挂载/卸载后，查询结果与朴素模型一致
func TestRegistryMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		em := NewEntityManager()
		type flags struct{ pos, vel bool }
		model := map[EntityID]*flags{}
		var ids []EntityID

		steps := rapid.IntRange(1, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if len(ids) == 0 {
				id := em.CreateEntity()
				ids = append(ids, id)
				model[id] = &flags{}
				continue
			}
			id := rapid.SampledFrom(ids).Draw(t, "id")
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				nid := em.CreateEntity()
				ids = append(ids, nid)
				model[nid] = &flags{}
			case 1:
				em.RemoveEntity(id)
				delete(model, id)
			case 2:
				em.AddComponent(id, &testPositionComponent{})
				if f, ok := model[id]; ok {
					f.pos = true
				}
			case 3:
				em.AddComponent(id, &testVelocityComponent{})
				if f, ok := model[id]; ok {
					f.vel = true
				}
			case 4:
				RemoveComponent[*testPositionComponent](em, id)
				if f, ok := model[id]; ok {
					f.pos = false
				}
			case 5:
				RemoveComponent[*testVelocityComponent](em, id)
				if f, ok := model[id]; ok {
					f.vel = false
				}
			}
		}

		var wantAll, wantPos, wantBoth []EntityID
		for id, f := range model {
			wantAll = append(wantAll, id)
			if f.pos {
				wantPos = append(wantPos, id)
			}
			if f.pos && f.vel {
				wantBoth = append(wantBoth, id)
			}
		}
		slices.Sort(wantAll)
		slices.Sort(wantPos)
		slices.Sort(wantBoth)

		if got := em.GetEntitiesWith(); !slices.Equal(got, wantAll) {
			t.Fatalf("all: got %v, want %v", got, wantAll)
		}
		if got := GetEntitiesWith1[*testPositionComponent](em); !slices.Equal(got, wantPos) {
			t.Fatalf("pos: got %v, want %v", got, wantPos)
		}
		if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); !slices.Equal(got, wantBoth) {
			t.Fatalf("pos+vel: got %v, want %v", got, wantBoth)
		}
		if em.Count() != len(model) {
			t.Fatalf("Count: got %d, want %d", em.Count(), len(model))
		}
	})
}
