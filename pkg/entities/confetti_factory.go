package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
)

// SpawnConfettiBurst 从 (originX, originY) 向上喷出 count 片彩纸
// 方向在正上方 ±ConfettiSpreadDeg/2 范围内随机
//
// 返回: 创建的实体ID列表
func SpawnConfettiBurst(em *ecs.EntityManager, rng *rand.Rand, originX, originY float64, count int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, count)
	spread := config.ConfettiSpreadDeg * math.Pi / 180

	for i := 0; i < count; i++ {
		id := em.CreateEntity()

		angle := -math.Pi/2 + (0.5*spread - rng.Float64()*spread)
		velocity := config.ConfettiStartSpeed*0.5 + rng.Float64()*config.ConfettiStartSpeed

		ecs.AddComponent(em, id, &components.PositionComponent{X: originX, Y: originY})
		ecs.AddComponent(em, id, &components.ConfettiComponent{
			Angle:       angle,
			Velocity:    velocity,
			Decay:       config.ConfettiDecay,
			Gravity:     config.ConfettiGravity,
			Wobble:      rng.Float64() * 10,
			WobbleSpeed: math.Min(0.11, rng.Float64()*0.1+0.05),
			Spin:        (rng.Float64() - 0.5) * 0.4,
		})
		ecs.AddComponent(em, id, &components.LifetimeComponent{
			MaxLifetime: config.ConfettiLifetime,
		})
		ecs.AddComponent(em, id, &components.ShapeComponent{
			Kind:     components.ShapeRect,
			Size:     config.ConfettiSize,
			Height:   config.ConfettiSize * 0.6,
			Color:    config.ConfettiPalette[rng.Intn(len(config.ConfettiPalette))],
			Alpha:    1,
			Rotation: rng.Float64() * math.Pi,
			Layer:    LayerConfetti,
		})

		ids = append(ids, id)
	}
	return ids
}
