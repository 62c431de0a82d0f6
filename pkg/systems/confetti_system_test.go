package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
)

func TestConfettiBurstCount(t *testing.T) {
	tests := []struct {
		name    string
		reduced bool
		want    int
	}{
		{"full", false, config.ConfettiCount},
		{"reduced", true, config.ConfettiReducedCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			s := NewConfettiSystem(em, rand.New(rand.NewSource(1)))
			s.SetReducedEffects(tt.reduced)
			if got := s.Burst(); got != tt.want {
				t.Errorf("Burst() = %d, want %d", got, tt.want)
			}
			if got := s.ActiveCount(); got != tt.want {
				t.Errorf("ActiveCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfettiRisesThenFalls(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewConfettiSystem(em, rand.New(rand.NewSource(2)))
	s.Burst()

	id := ecs.GetEntitiesWith1[*components.ConfettiComponent](em)[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	startY := pos.Y

	s.Update(1.0 / 60)
	if pos.Y >= startY {
		t.Errorf("confetti should move up first: y=%f start=%f", pos.Y, startY)
	}

	c, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
	}
	if c.Velocity > 1 {
		t.Errorf("velocity should decay, got %f", c.Velocity)
	}
	lowest := pos.Y
	s.Update(1.0 / 60)
	if pos.Y <= lowest {
		t.Errorf("confetti should fall after decay: y=%f prev=%f", pos.Y, lowest)
	}
}

func TestConfettiFadesAndExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewConfettiSystem(em, rand.New(rand.NewSource(3)))
	lifetime := NewLifetimeSystem(em)
	s.Burst()

	step := 1.0 / 60
	for elapsed := 0.0; elapsed < config.ConfettiLifetime/2; elapsed += step {
		s.Update(step)
		lifetime.Update(step)
	}
	id := ecs.GetEntitiesWith1[*components.ConfettiComponent](em)[0]
	shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
	if shape.Alpha <= 0 || shape.Alpha >= 1 {
		t.Errorf("alpha halfway = %f, want in (0, 1)", shape.Alpha)
	}

	for elapsed := 0.0; elapsed < config.ConfettiLifetime; elapsed += step {
		s.Update(step)
		lifetime.Update(step)
		em.RemoveMarkedEntities()
	}
	if n := s.ActiveCount(); n != 0 {
		t.Errorf("ActiveCount() = %d after lifetime, want 0", n)
	}
}

func TestConfettiZeroDeltaIsNoop(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewConfettiSystem(em, rand.New(rand.NewSource(4)))
	s.Burst()
	id := ecs.GetEntitiesWith1[*components.ConfettiComponent](em)[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	x, y := pos.X, pos.Y

	s.Update(0)
	if pos.X != x || pos.Y != y {
		t.Error("Update(0) should not move confetti")
	}
}
