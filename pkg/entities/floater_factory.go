package entities

import (
	"math"
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
)

// NewFloaterEntity 创建背景中第 index 个漂浮物
//
// 外观由序号决定：
//   - 颜色和大小按 FloaterPresets 循环
//   - 每 FloaterFlowerEvery 个是一朵花
//   - 其余爱心在偶数序号时实心，奇数时只画轮廓
func NewFloaterEntity(em *ecs.EntityManager, rng *rand.Rand, index int) ecs.EntityID {
	id := em.CreateEntity()
	preset := config.FloaterPresets[index%len(config.FloaterPresets)]

	floater := &components.FloaterComponent{
		Index:    index,
		Duration: config.FloaterMinDuration + rng.Float64()*config.FloaterDurationSpan,
		Delay:    rng.Float64() * config.FloaterMaxDelay,
	}
	RestartFloater(floater, rng)

	ecs.AddComponent(em, id, floater)
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: floater.StartX,
		Y: config.ScreenHeight * config.FloaterStartRatio,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:  FloaterShape(index),
		Size:  preset.Size,
		Color: preset.Color,
		Alpha: 0,
		Layer: LayerBackground,
	})
	return id
}

// FloaterShape 返回第 index 个漂浮物的形状
func FloaterShape(index int) components.ShapeKind {
	switch {
	case index%config.FloaterFlowerEvery == 0:
		return components.ShapeFlower
	case index%2 == 0:
		return components.ShapeHeart
	default:
		return components.ShapeHeartOutline
	}
}

// RestartFloater 开始新一轮上升：新的起点、漂移方向
func RestartFloater(f *components.FloaterComponent, rng *rand.Rand) {
	f.Elapsed = 0
	f.StartX = rng.Float64() * config.ScreenWidth
	f.DriftX = (rng.Float64()*2 - 1) * config.FloaterDriftRatio * config.ScreenWidth
	f.Spin = 2 * math.Pi
}
