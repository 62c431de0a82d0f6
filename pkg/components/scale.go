package components

// ScaleComponent 存储实体级别的缩放因子
// 用于爱心被点中时的放大淡出动画
type ScaleComponent struct {
	ScaleX float64 // 1.0 = 原始大小
	ScaleY float64
}
