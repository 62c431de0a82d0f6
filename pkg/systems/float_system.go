package systems

import (
	"math/rand"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/entities"
	"github.com/decker502/birthday24/pkg/utils"
)

// FloatSystem 背景中循环上升的爱心和花朵
//
// 每个漂浮物在 Duration 秒内从屏幕下方升到上方，
// 透明度按 0 → 0.8 → 0.8 → 0 变化，同时旋转一整圈并水平漂移。
type FloatSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
	alphaScale    float64
}

// NewFloatSystem 创建背景漂浮系统
func NewFloatSystem(em *ecs.EntityManager, rng *rand.Rand) *FloatSystem {
	return &FloatSystem{
		entityManager: em,
		rng:           rng,
		alphaScale:    1,
	}
}

// Populate 创建 count 个漂浮物
func (s *FloatSystem) Populate(count int) {
	for i := 0; i < count; i++ {
		entities.NewFloaterEntity(s.entityManager, s.rng, i)
	}
}

// SetAlphaScale 整体透明度倍数（秘密浮层打开时调暗背景）
func (s *FloatSystem) SetAlphaScale(scale float64) {
	s.alphaScale = utils.Clamp01(scale)
}

// AlphaScale 返回当前透明度倍数
func (s *FloatSystem) AlphaScale() float64 {
	return s.alphaScale
}

// Update 推进所有漂浮物
func (s *FloatSystem) Update(deltaTime float64) {
	startY := config.ScreenHeight * config.FloaterStartRatio
	endY := config.ScreenHeight * config.FloaterEndRatio

	entityList := ecs.GetEntitiesWith3[
		*components.FloaterComponent,
		*components.PositionComponent,
		*components.ShapeComponent,
	](s.entityManager)

	for _, id := range entityList {
		f, _ := ecs.GetComponent[*components.FloaterComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)

		if f.Delay > 0 {
			f.Delay -= deltaTime
			shape.Alpha = 0
			continue
		}

		f.Elapsed += deltaTime
		if f.Elapsed >= f.Duration {
			entities.RestartFloater(f, s.rng)
		}

		p := f.Elapsed / f.Duration
		pos.X = f.StartX + f.DriftX*p
		pos.Y = utils.Lerp(startY, endY, p)
		shape.Rotation = f.Spin * p
		shape.Alpha = utils.Keyframes(p, 0, config.FloaterMaxAlpha, config.FloaterMaxAlpha, 0) * s.alphaScale
	}
}
