package systems

import (
	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/ecs"
)

// MovementSystem 按速度匀速移动实体
// 彩纸和背景漂浮物各有自己的运动系统，不带 VelocityComponent
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建一个新的移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有位置和速度的实体
func (s *MovementSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
