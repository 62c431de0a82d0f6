package config

import "image/color"

// 彩纸参数
const (
	ConfettiCount        = 150
	ConfettiSpreadDeg    = 70.0
	ConfettiOriginY      = 0.6  // 相对屏幕高度
	ConfettiStartSpeed   = 45.0 // 像素/帧
	ConfettiDecay        = 0.9
	ConfettiGravity      = 3.0 // 像素/帧
	ConfettiLifetime     = 200.0 / 60.0
	ConfettiReducedCount = 40 // 减少特效模式
	ConfettiSize         = 10.0
)

// ConfettiPalette 彩纸颜色
var ConfettiPalette = []color.RGBA{
	{R: 0x26, G: 0xcc, B: 0xff, A: 0xff},
	{R: 0xa2, G: 0x5a, B: 0xfd, A: 0xff},
	{R: 0xff, G: 0x5e, B: 0x7e, A: 0xff},
	{R: 0x88, G: 0xff, B: 0x5a, A: 0xff},
	{R: 0xfc, G: 0xff, B: 0x42, A: 0xff},
	{R: 0xff, G: 0xa6, B: 0x2d, A: 0xff},
	{R: 0xff, G: 0x36, B: 0xff, A: 0xff},
}

// 背景漂浮物参数
const (
	FloaterCount        = 40
	FloaterReducedCount = 12
	FloaterFlowerEvery  = 3    // 每 3 个一朵花
	FloaterMinDuration  = 12.0 // 秒
	FloaterDurationSpan = 15.0
	FloaterMaxDelay     = 10.0
	FloaterDriftRatio   = 0.1 // 水平漂移占屏宽比例(±)
	FloaterStartRatio   = 1.1 // 起点 y / 屏高
	FloaterEndRatio     = -0.15
	FloaterMaxAlpha     = 0.8
	SecretFloaterAlpha  = 0.35 // 秘密浮层背后的透明度倍数
)

// FloaterPreset 漂浮物外观预设
type FloaterPreset struct {
	Color color.RGBA
	Size  float64
}

// FloaterPresets 深红大、浅红小、暗红小、玫瑰大，按序号循环
var FloaterPresets = []FloaterPreset{
	{Color: color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}, Size: 32},
	{Color: color.RGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}, Size: 16},
	{Color: color.RGBA{R: 0x7f, G: 0x1d, B: 0x1d, A: 0xff}, Size: 20},
	{Color: color.RGBA{R: 0xfd, G: 0xa4, B: 0xaf, A: 0xff}, Size: 28},
}

// 主题颜色
var (
	ColorBackground = color.RGBA{R: 0xff, G: 0xfa, B: 0xfa, A: 0xff}
	ColorCard       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf2}
	ColorPrimary    = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	ColorPrimaryDim = color.RGBA{R: 0xfe, G: 0xe2, B: 0xe2, A: 0xff}
	ColorText       = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	ColorMuted      = color.RGBA{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff}
	ColorHeart      = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	ColorOverlay    = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xf5}
	ColorWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
