package components

// HeartState 小游戏爱心的状态
type HeartState int

const (
	HeartRising  HeartState = iota // 正在上升，可点击
	HeartPopping                   // 被点中或已失效，播放消失动画
)

// HeartComponent 标记实体为小游戏中的一颗爱心
// TargetID 与导航器中的存活目标一一对应
type HeartComponent struct {
	TargetID uint64
	State    HeartState
}
