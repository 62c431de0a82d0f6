package entities

// 绘制层级
const (
	LayerBackground = 0
	LayerHearts     = 10
	LayerConfetti   = 100
)
