package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// World 所有场景共享的实体世界
//
// 背景漂浮物和彩纸在切换场景时不应中断，
// 因此实体管理器和系统由应用持有，场景只引用它。
// 系统更新顺序：漂浮 → 移动 → 爱心 → 彩纸 → 生命周期 → 清理
type World struct {
	EntityManager *ecs.EntityManager

	Floats   *FloatSystem
	Hearts   *HeartTargetSystem
	Confetti *ConfettiSystem
	Render   *RenderSystem

	movement *MovementSystem
	lifetime *LifetimeSystem
}

// NewWorld 创建实体世界并生成背景漂浮物
//
// 参数:
//   - rng: 随机源（测试时传入固定种子）
//   - reduced: 减少特效模式，漂浮物和彩纸更少
func NewWorld(rng *rand.Rand, reduced bool) *World {
	em := ecs.NewEntityManager()
	w := &World{
		EntityManager: em,
		Floats:        NewFloatSystem(em, rng),
		Hearts:        NewHeartTargetSystem(em, rng),
		Confetti:      NewConfettiSystem(em, rng),
		Render:        NewRenderSystem(em),
		movement:      NewMovementSystem(em),
		lifetime:      NewLifetimeSystem(em),
	}
	w.Confetti.SetReducedEffects(reduced)

	count := config.FloaterCount
	if reduced {
		count = config.FloaterReducedCount
	}
	w.Floats.Populate(count)
	return w
}

// Update 按固定顺序更新所有系统，最后清理过期实体
func (w *World) Update(deltaTime float64) {
	w.Floats.Update(deltaTime)
	w.movement.Update(deltaTime)
	w.Hearts.Update(deltaTime)
	w.Confetti.Update(deltaTime)
	w.lifetime.Update(deltaTime)
	w.EntityManager.RemoveMarkedEntities()
}

// DrawBackground 绘制卡片下面的背景漂浮物
func (w *World) DrawBackground(screen *ebiten.Image) {
	w.Render.DrawLayers(screen, math.MinInt, entities.LayerHearts-1)
}

// DrawForeground 绘制卡片上面的爱心和彩纸
func (w *World) DrawForeground(screen *ebiten.Image) {
	w.Render.DrawLayers(screen, entities.LayerHearts, math.MaxInt)
}
