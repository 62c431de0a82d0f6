package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
)

func newTestHeartSystem() (*ecs.EntityManager, *HeartTargetSystem) {
	em := ecs.NewEntityManager()
	return em, NewHeartTargetSystem(em, rand.New(rand.NewSource(1)))
}

func TestHeartSyncSpawnsLiveTargets(t *testing.T) {
	em, s := newTestHeartSystem()

	spawned, popped := s.Sync([]uint64{1, 2, 3})
	if spawned != 3 || popped != 0 {
		t.Fatalf("Sync() = (%d, %d), want (3, 0)", spawned, popped)
	}
	if s.LiveCount() != 3 {
		t.Errorf("LiveCount() = %d, want 3", s.LiveCount())
	}
	if n := len(ecs.GetEntitiesWith1[*components.HeartComponent](em)); n != 3 {
		t.Errorf("heart entities = %d, want 3", n)
	}

	// 再次同步同一组目标不会重复生成
	spawned, popped = s.Sync([]uint64{1, 2, 3})
	if spawned != 0 || popped != 0 {
		t.Errorf("second Sync() = (%d, %d), want (0, 0)", spawned, popped)
	}
}

func TestHeartSyncIgnoresEmptySlots(t *testing.T) {
	_, s := newTestHeartSystem()
	spawned, _ := s.Sync([]uint64{0, 7, 0})
	if spawned != 1 {
		t.Errorf("spawned = %d, want 1", spawned)
	}
}

func TestHeartSyncReplacesTappedTarget(t *testing.T) {
	em, s := newTestHeartSystem()
	s.Sync([]uint64{1, 2, 3})
	old, _ := s.EntityFor(2)

	spawned, popped := s.Sync([]uint64{1, 4, 3})
	if spawned != 1 || popped != 1 {
		t.Fatalf("Sync() = (%d, %d), want (1, 1)", spawned, popped)
	}
	if _, ok := s.EntityFor(2); ok {
		t.Error("target 2 should no longer be mapped")
	}
	if _, ok := s.EntityFor(4); !ok {
		t.Error("target 4 should be mapped")
	}

	heart, _ := ecs.GetComponent[*components.HeartComponent](em, old)
	if heart.State != components.HeartPopping {
		t.Errorf("old heart state = %v, want HeartPopping", heart.State)
	}
	if ecs.HasComponent[*components.VelocityComponent](em, old) {
		t.Error("popping heart should stop moving")
	}
	if !ecs.HasComponent[*components.LifetimeComponent](em, old) {
		t.Error("popping heart should get a lifetime")
	}
}

func TestHeartHitTest(t *testing.T) {
	em, s := newTestHeartSystem()
	s.Sync([]uint64{5})
	id, _ := s.EntityFor(5)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	if _, hit := s.HitTest(pos.X+config.HeartHitRadius+1, pos.Y); hit {
		t.Error("tap outside radius should miss")
	}

	target, hit := s.HitTest(pos.X+5, pos.Y-5)
	if !hit || target != 5 {
		t.Fatalf("HitTest() = (%d, %v), want (5, true)", target, hit)
	}

	// 同一颗爱心被点中后立即禁用
	if _, hit := s.HitTest(pos.X, pos.Y); hit {
		t.Error("second tap on same heart should miss")
	}
}

func TestHeartHitTestPrefersTopmost(t *testing.T) {
	em, s := newTestHeartSystem()
	s.Sync([]uint64{1, 2})
	a, _ := s.EntityFor(1)
	b, _ := s.EntityFor(2)
	pa, _ := ecs.GetComponent[*components.PositionComponent](em, a)
	pb, _ := ecs.GetComponent[*components.PositionComponent](em, b)
	pb.X, pb.Y = pa.X, pa.Y

	target, hit := s.HitTest(pa.X, pa.Y)
	if !hit || target != 2 {
		t.Errorf("HitTest() = (%d, %v), want (2, true)", target, hit)
	}
}

func TestHeartWrapsAtTop(t *testing.T) {
	em, s := newTestHeartSystem()
	s.Sync([]uint64{9})
	id, _ := s.EntityFor(9)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.Y = config.PlayAreaY - config.HeartSize

	s.Update(1.0 / 60)

	if pos.Y <= config.PlayAreaY+config.PlayAreaH {
		t.Errorf("heart should restart below the play area, y=%f", pos.Y)
	}
	heart, _ := ecs.GetComponent[*components.HeartComponent](em, id)
	if heart.TargetID != 9 {
		t.Errorf("TargetID = %d, want 9 after wrapping", heart.TargetID)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VY >= 0 {
		t.Errorf("VY = %f, want upward", vel.VY)
	}
}

func TestHeartPopAnimation(t *testing.T) {
	em, s := newTestHeartSystem()
	s.Sync([]uint64{1})
	id, _ := s.EntityFor(1)
	s.Clear()

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	lifetime.CurrentLifetime = config.HeartPopTime / 2
	s.Update(0)

	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
	if scale.ScaleX <= 1 || scale.ScaleX > config.HeartPopScale {
		t.Errorf("ScaleX = %f, want in (1, %f]", scale.ScaleX, config.HeartPopScale)
	}
	shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
	if shape.Alpha != 0.5 {
		t.Errorf("Alpha = %f, want 0.5", shape.Alpha)
	}
	if s.LiveCount() != 0 {
		t.Errorf("LiveCount() = %d after Clear, want 0", s.LiveCount())
	}
}
