package components

// ConfettiComponent 一片彩纸的运动参数
//
// 速度以"像素/帧"计（按 60 帧/秒换算），每帧乘以 Decay 衰减，
// 同时叠加恒定的下落量 Gravity，这样轨迹先向上散开再飘落。
type ConfettiComponent struct {
	Angle    float64 // 运动方向(弧度)，屏幕坐标系
	Velocity float64 // 像素/帧
	Decay    float64 // 每帧速度衰减系数
	Gravity  float64 // 每帧下落像素

	Wobble      float64 // 左右摆动相位
	WobbleSpeed float64 // 摆动角速度(弧度/帧)
	Spin        float64 // 旋转速度(弧度/帧)
}
