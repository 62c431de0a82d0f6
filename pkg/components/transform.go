package components

// PositionComponent 实体中心的屏幕坐标
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 线速度(像素/秒)
type VelocityComponent struct {
	VX, VY float64
}
