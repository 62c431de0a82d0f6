package systems

import (
	"testing"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 10.0})

	if n := system.Update(5.0); n != 0 {
		t.Errorf("Expected no expirations, got %d", n)
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
	if got := lifetime.Progress(); got != 0.5 {
		t.Errorf("Expected Progress=0.5, got %f", got)
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(6.0)
	if n := system.Update(6.0); n != 1 {
		t.Errorf("Expected 1 expiration, got %d", n)
	}

	// 标记删除后仍然存活，直到帧末清理
	if !em.IsAlive(id) {
		t.Error("Entity should stay alive until RemoveMarkedEntities")
	}
	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Expired entity should be removed")
	}
}

func TestLifetimeExpiredCountedOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 1.0})

	if n := system.Update(2.0); n != 1 {
		t.Fatalf("Expected 1 expiration, got %d", n)
	}
	// 未清理前再次更新不会重复计数
	if n := system.Update(2.0); n != 0 {
		t.Errorf("Expected 0 expirations on second update, got %d", n)
	}
}
