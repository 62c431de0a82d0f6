package components

// ClickableComponent 标记实体可以被点击或触摸
// 命中区域是以实体位置为圆心的圆
type ClickableComponent struct {
	Radius    float64 // 命中半径(像素)
	IsEnabled bool    // 是否可以被点击(点中后立即禁用，防止同一帧重复处理)
}
