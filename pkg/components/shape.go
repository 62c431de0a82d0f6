package components

import "image/color"

// ShapeKind 实体的绘制形状
type ShapeKind int

const (
	ShapeHeart ShapeKind = iota
	ShapeHeartOutline
	ShapeFlower
	ShapeRect // 彩纸片
)

// ShapeComponent 描述实体如何绘制
// 形状图片由渲染系统统一持有，组件只保存参数
type ShapeComponent struct {
	Kind     ShapeKind
	Size     float64 // 边长(像素)；矩形为宽度
	Height   float64 // 仅矩形使用
	Color    color.RGBA
	Alpha    float64 // [0, 1]
	Rotation float64 // 弧度
	Layer    int     // 绘制层级，越大越靠上
}
