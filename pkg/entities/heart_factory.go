package entities

import (
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
)

// NewHeartEntity 创建小游戏中的一颗爱心
// 参数:
//   - em: EntityManager 实例
//   - targetID: 导航器分配的目标ID
//   - rng: 随机源（决定起点X和上升速度）
//
// 返回: 创建的实体ID
func NewHeartEntity(em *ecs.EntityManager, targetID uint64, rng *rand.Rand) ecs.EntityID {
	id := em.CreateEntity()

	pos := &components.PositionComponent{}
	vel := &components.VelocityComponent{}
	ResetHeartMotion(pos, vel, rng)

	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, vel)
	ecs.AddComponent(em, id, &components.HeartComponent{
		TargetID: targetID,
		State:    components.HeartRising,
	})
	ecs.AddComponent(em, id, &components.ClickableComponent{
		Radius:    config.HeartHitRadius,
		IsEnabled: true,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:  components.ShapeHeart,
		Size:  config.HeartSize,
		Color: config.ColorHeart,
		Alpha: 1,
		Layer: LayerHearts,
	})
	ecs.AddComponent(em, id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})

	return id
}

// ResetHeartMotion 把爱心放回游戏区域底部，随机X和上升速度
func ResetHeartMotion(pos *components.PositionComponent, vel *components.VelocityComponent, rng *rand.Rand) {
	margin := config.HeartSize / 2
	pos.X = config.PlayAreaX + margin + rng.Float64()*(config.PlayAreaW-2*margin)
	pos.Y = config.PlayAreaY + config.PlayAreaH + margin
	vel.VX = 0
	vel.VY = -(config.HeartMinSpeed + rng.Float64()*(config.HeartMaxSpeed-config.HeartMinSpeed))
}
