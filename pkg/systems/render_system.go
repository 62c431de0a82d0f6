package systems

import (
	"sort"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// shapeMaskSize 形状蒙版的边长，绘制时按 ShapeComponent.Size 缩放
const shapeMaskSize = 96

// RenderSystem 绘制所有带 ShapeComponent 的实体
//
// 背景漂浮物、小游戏爱心和彩纸都通过本系统绘制，
// 卡片和文字由各场景自己绘制，夹在两次 DrawLayers 调用之间。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	images        *utils.ShapeImages
	drawList      []ecs.EntityID // 复用，避免每帧分配
}

// NewRenderSystem 创建渲染系统并生成形状图片
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		images:        utils.NewShapeImages(shapeMaskSize),
		drawList:      make([]ecs.EntityID, 0, 256),
	}
}

// Images 返回共享的形状图片（场景绘制按钮上的爱心时使用）
func (s *RenderSystem) Images() *utils.ShapeImages {
	return s.images
}

// DrawLayers 绘制层级在 [minLayer, maxLayer] 内的实体
// 层级小的先画；同一层级按实体ID顺序
func (s *RenderSystem) DrawLayers(screen *ebiten.Image, minLayer, maxLayer int) {
	s.drawList = s.drawList[:0]
	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.PositionComponent](s.entityManager) {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		if shape.Layer < minLayer || shape.Layer > maxLayer || shape.Alpha <= 0 {
			continue
		}
		s.drawList = append(s.drawList, id)
	}

	sort.SliceStable(s.drawList, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, s.drawList[i])
		b, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, s.drawList[j])
		return a.Layer < b.Layer
	})

	for _, id := range s.drawList {
		s.drawEntity(screen, id)
	}
}

// VisibleCount 返回层级范围内可见的实体数量
func (s *RenderSystem) VisibleCount(minLayer, maxLayer int) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.PositionComponent](s.entityManager) {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		if shape.Layer >= minLayer && shape.Layer <= maxLayer && shape.Alpha > 0 {
			n++
		}
	}
	return n
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	scale := 1.0
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
		scale = sc.ScaleX
	}
	size := shape.Size * scale

	switch shape.Kind {
	case components.ShapeHeart:
		utils.DrawShape(screen, s.images.HeartFilled, pos.X, pos.Y, size, shape.Rotation, shape.Color, shape.Alpha)
	case components.ShapeHeartOutline:
		utils.DrawShape(screen, s.images.HeartOutline, pos.X, pos.Y, size, shape.Rotation, shape.Color, shape.Alpha)
	case components.ShapeFlower:
		utils.DrawShape(screen, s.images.Flower, pos.X, pos.Y, size, shape.Rotation, shape.Color, shape.Alpha)
	case components.ShapeRect:
		s.drawRect(screen, shape, pos, scale)
	}
}

// drawRect 绘制以位置为中心、可旋转的矩形（彩纸片）
func (s *RenderSystem) drawRect(screen *ebiten.Image, shape *components.ShapeComponent, pos *components.PositionComponent, scale float64) {
	h := shape.Height
	if h <= 0 {
		h = shape.Size
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(shape.Size*scale, h*scale)
	op.GeoM.Rotate(shape.Rotation)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(shape.Color)
	op.ColorScale.ScaleAlpha(float32(shape.Alpha))
	screen.DrawImage(s.images.Pixel, op)
}
