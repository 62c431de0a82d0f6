package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs should start at 1 and increase, got %d, %d", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 999); ok {
		t.Error("unknown entity should not have components")
	}
}

func TestAddComponentReplaces(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{X: 1})
	AddComponent(em, id, &testPositionComponent{X: 2})

	pos, _ := GetComponent[*testPositionComponent](em, id)
	if pos.X != 2 {
		t.Errorf("second AddComponent should replace, got X=%v", pos.X)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, 42, &testPositionComponent{})
	if HasComponent[*testPositionComponent](em, 42) {
		t.Error("components must not be attached to unknown entities")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTagComponent{})

	if !HasComponent[*testTagComponent](em, id) {
		t.Fatal("HasComponent should be true")
	}
	RemoveComponent[*testTagComponent](em, id)
	if HasComponent[*testTagComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	if !em.IsAlive(id) {
		t.Error("entity should stay alive until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("entity should be removed")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("components should be removed with the entity")
	}

	// 重复删除不应出错
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	AddComponent(em, a, &testPositionComponent{})
	AddComponent(em, a, &testVelocityComponent{})

	b := em.CreateEntity()
	AddComponent(em, b, &testPositionComponent{})

	c := em.CreateEntity()
	AddComponent(em, c, &testPositionComponent{})
	AddComponent(em, c, &testVelocityComponent{})
	AddComponent(em, c, &testTagComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 3 || got[0] != a || got[2] != c {
		t.Errorf("GetEntitiesWith1: got %v", got)
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("GetEntitiesWith2: got %v", got)
	}
	if got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em); len(got) != 1 || got[0] != c {
		t.Errorf("GetEntitiesWith3: got %v", got)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		AddComponent(em, em.CreateEntity(), &testTagComponent{})
	}
	em.Clear()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount after Clear: got %d", em.EntityCount())
	}
	if id := em.CreateEntity(); id != 6 {
		t.Errorf("IDs must not be reused after Clear, got %d", id)
	}
}
