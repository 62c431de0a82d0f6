package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出，开始快结束慢
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutBack 缓出并轻微越过终点（用于按钮弹出）
// 公式：f(t) = 1 + c3(t-1)³ + c1(t-1)²
func EaseOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Pulse 周期性呼吸值，范围 [1-amp, 1+amp]
// 用于封面和解锁按钮的缓慢缩放
func Pulse(elapsed, period, amp float64) float64 {
	if period <= 0 {
		return 1
	}
	return 1 + amp*math.Sin(2*math.Pi*elapsed/period)
}

// Keyframes 在等间隔关键帧之间线性插值
// progress ∈ [0, 1]；例如 Keyframes(p, 0, 0.8, 0.8, 0) 得到淡入-保持-淡出
func Keyframes(progress float64, frames ...float64) float64 {
	switch len(frames) {
	case 0:
		return 0
	case 1:
		return frames[0]
	}
	p := Clamp01(progress) * float64(len(frames)-1)
	i := int(p)
	if i >= len(frames)-1 {
		return frames[len(frames)-1]
	}
	return Lerp(frames[i], frames[i+1], p-float64(i))
}
