package components

// FloaterComponent 背景中缓慢上升的爱心或花朵
// 到达顶部后从底部重新开始，永不销毁
type FloaterComponent struct {
	Index    int     // 在背景中的序号，决定颜色/大小/形状
	Duration float64 // 一次上升耗时(秒)
	Delay    float64 // 首次出现前的等待(秒)
	Elapsed  float64 // 本轮已上升时间(秒)

	StartX float64 // 本轮起点X
	DriftX float64 // 本轮结束时相对起点的水平偏移
	Spin   float64 // 本轮总旋转量(弧度)
}
