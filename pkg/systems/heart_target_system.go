package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/entities"
	"github.com/decker502/birthday24/pkg/utils"
)

// HeartTargetSystem 把导航器中的存活目标映射为屏幕上的爱心
//
// 职责：
//   - Sync: 新出现的目标ID生成爱心，消失的目标ID播放消失动画
//   - HitTest: 点击命中检测，返回被点中爱心的目标ID
//   - Update: 上升的爱心飞出顶部后回到底部；消失中的爱心放大淡出
//
// 计分只发生在导航器中，本系统从不修改分数。
type HeartTargetSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	hearts        map[uint64]ecs.EntityID // 目标ID → 爱心实体（只含上升中的）
}

// NewHeartTargetSystem 创建爱心目标系统
func NewHeartTargetSystem(em *ecs.EntityManager, rng *rand.Rand) *HeartTargetSystem {
	return &HeartTargetSystem{
		entityManager: em,
		rng:           rng,
		hearts:        make(map[uint64]ecs.EntityID),
	}
}

// Sync 让屏幕上的爱心与存活目标保持一致
//
// 参数:
//   - live: 当前存活的目标ID（0 表示空槽位，忽略）
//
// 返回:
//   - spawned: 新生成的爱心数量
//   - popped: 开始消失的爱心数量
func (s *HeartTargetSystem) Sync(live []uint64) (spawned, popped int) {
	alive := make(map[uint64]bool, len(live))
	for _, id := range live {
		if id == 0 {
			continue
		}
		alive[id] = true
		if _, exists := s.hearts[id]; exists {
			continue
		}
		s.hearts[id] = entities.NewHeartEntity(s.entityManager, id, s.rng)
		spawned++
	}

	for targetID, entityID := range s.hearts {
		if alive[targetID] {
			continue
		}
		s.pop(entityID)
		delete(s.hearts, targetID)
		popped++
	}

	if spawned > 0 || popped > 0 {
		log.Printf("[HeartTargetSystem] 同步目标: 新增=%d, 消失=%d, 当前=%d", spawned, popped, len(s.hearts))
	}
	return spawned, popped
}

// Clear 让所有爱心播放消失动画（离开小游戏时调用）
func (s *HeartTargetSystem) Clear() {
	s.Sync(nil)
}

// LiveCount 返回当前可点击的爱心数量
func (s *HeartTargetSystem) LiveCount() int {
	return len(s.hearts)
}

// EntityFor 返回目标ID对应的爱心实体
func (s *HeartTargetSystem) EntityFor(targetID uint64) (ecs.EntityID, bool) {
	id, ok := s.hearts[targetID]
	return id, ok
}

// pop 开始消失动画：停止移动、禁用点击、挂上生命周期
func (s *HeartTargetSystem) pop(id ecs.EntityID) {
	if heart, ok := ecs.GetComponent[*components.HeartComponent](s.entityManager, id); ok {
		heart.State = components.HeartPopping
	}
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		clickable.IsEnabled = false
	}
	ecs.RemoveComponent[*components.VelocityComponent](s.entityManager, id)
	ecs.AddComponent(s.entityManager, id, &components.LifetimeComponent{
		MaxLifetime: config.HeartPopTime,
	})
}

// HitTest 检测 (x, y) 是否点中某颗上升中的爱心
//
// 多颗爱心重叠时取最后创建的（绘制在最上面）。
// 命中的爱心立即禁用点击，同一帧内的重复点击不会再次命中。
//
// 返回:
//   - uint64: 被点中爱心的目标ID
//   - bool: 是否命中
func (s *HeartTargetSystem) HitTest(x, y float64) (uint64, bool) {
	entityList := ecs.GetEntitiesWith3[
		*components.HeartComponent,
		*components.PositionComponent,
		*components.ClickableComponent,
	](s.entityManager)

	for i := len(entityList) - 1; i >= 0; i-- {
		id := entityList[i]
		heart, _ := ecs.GetComponent[*components.HeartComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		if heart.State != components.HeartRising || !clickable.IsEnabled {
			continue
		}
		if !utils.InCircle(x, y, pos.X, pos.Y, clickable.Radius) {
			continue
		}

		clickable.IsEnabled = false
		return heart.TargetID, true
	}
	return 0, false
}

// Update 处理飞出顶部的爱心和消失动画
// 位置的积分由 MovementSystem 完成
func (s *HeartTargetSystem) Update(deltaTime float64) {
	top := config.PlayAreaY - config.HeartSize/2

	for _, id := range ecs.GetEntitiesWith2[*components.HeartComponent, *components.PositionComponent](s.entityManager) {
		heart, _ := ecs.GetComponent[*components.HeartComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		switch heart.State {
		case components.HeartRising:
			if pos.Y >= top {
				continue
			}
			// 飞出游戏区域：保留目标ID，回到底部继续上升
			if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
				entities.ResetHeartMotion(pos, vel, s.rng)
			}

		case components.HeartPopping:
			lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
			if !ok {
				continue
			}
			p := lifetime.Progress()
			if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
				k := utils.Lerp(1, config.HeartPopScale, utils.EaseOutCubic(p))
				scale.ScaleX, scale.ScaleY = k, k
			}
			if shape, ok := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id); ok {
				shape.Alpha = 1 - p
			}
		}
	}
}
