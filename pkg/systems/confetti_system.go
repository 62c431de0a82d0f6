package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/entities"
)

// framesPerSecond 彩纸参数以"每帧"给出，按 60 帧/秒换算
const framesPerSecond = 60.0

// ConfettiSystem 彩纸喷射与运动
//
// 运动模型（每帧）：
//
//	x += cos(angle) * v + cos(wobble) * 0.5
//	y += sin(angle) * v + gravity
//	v *= decay
//
// 透明度随生命周期线性降为 0，过期删除由 LifetimeSystem 负责。
type ConfettiSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	reduced       bool
}

// NewConfettiSystem 创建彩纸系统
func NewConfettiSystem(em *ecs.EntityManager, rng *rand.Rand) *ConfettiSystem {
	return &ConfettiSystem{
		entityManager: em,
		rng:           rng,
	}
}

// SetReducedEffects 减少特效模式下每次喷射的数量更少
func (s *ConfettiSystem) SetReducedEffects(reduced bool) {
	s.reduced = reduced
}

// Burst 在屏幕水平中央、ConfettiOriginY 高度喷出一次彩纸
//
// 返回: 创建的彩纸数量
func (s *ConfettiSystem) Burst() int {
	count := config.ConfettiCount
	if s.reduced {
		count = config.ConfettiReducedCount
	}
	ids := entities.SpawnConfettiBurst(s.entityManager, s.rng,
		config.ScreenWidth/2, config.ScreenHeight*config.ConfettiOriginY, count)
	log.Printf("[ConfettiSystem] 喷射彩纸: %d 片", len(ids))
	return len(ids)
}

// ActiveCount 返回当前存在的彩纸数量
func (s *ConfettiSystem) ActiveCount() int {
	return len(ecs.GetEntitiesWith1[*components.ConfettiComponent](s.entityManager))
}

// Update 推进所有彩纸
func (s *ConfettiSystem) Update(deltaTime float64) {
	ticks := deltaTime * framesPerSecond
	if ticks <= 0 {
		return
	}

	entityList := ecs.GetEntitiesWith3[
		*components.ConfettiComponent,
		*components.PositionComponent,
		*components.ShapeComponent,
	](s.entityManager)

	for _, id := range entityList {
		c, _ := ecs.GetComponent[*components.ConfettiComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)

		pos.X += (math.Cos(c.Angle)*c.Velocity + math.Cos(c.Wobble)*0.5) * ticks
		pos.Y += (math.Sin(c.Angle)*c.Velocity + c.Gravity) * ticks
		c.Velocity *= math.Pow(c.Decay, ticks)
		c.Wobble += c.WobbleSpeed * ticks
		shape.Rotation += c.Spin * ticks

		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok {
			shape.Alpha = 1 - lifetime.Progress()
		}
	}
}
