package systems

import (
	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 过期的实体被标记删除，真正的移除在帧末 RemoveMarkedEntities 中完成
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有生命周期组件
//
// 返回: 本帧过期的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
