package scenes

import (
	"image"
	"image/color"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// button 矩形文字按钮
type button struct {
	rect    utils.Rect
	label   string
	primary bool // 实心红底白字；否则浅红底红字
	visible bool
}

// hit 按钮可见且包含点击位置
func (b *button) hit(x, y float64) bool {
	return b.visible && b.rect.Contains(x, y)
}

func (b *button) draw(screen *ebiten.Image, pixel *ebiten.Image, face text.Face) {
	if !b.visible {
		return
	}
	bg, fg := config.ColorPrimaryDim, config.ColorPrimary
	if b.primary {
		bg, fg = config.ColorPrimary, config.ColorWhite
	}
	utils.FillRect(screen, pixel, b.rect, bg)
	drawTextMiddle(screen, b.label, face, b.rect, fg)
}

// drawTextMiddle 在矩形内水平垂直居中绘制单行文本
func drawTextMiddle(screen *ebiten.Image, s string, face text.Face, r utils.Rect, clr color.Color) {
	m := face.Metrics()
	cx, cy := r.Center()
	utils.DrawCentered(screen, s, face, cx, cy-(m.HAscent+m.HDescent)/2, clr)
}

// drawCard 绘制居中的白色卡片
func drawCard(screen, pixel *ebiten.Image) {
	utils.FillRect(screen, pixel, utils.Rect{
		X: config.CardMarginX,
		Y: config.CardTop,
		W: config.CardWidth,
		H: config.CardHeight,
	}, config.ColorCard)
	vector.StrokeRect(screen, config.CardMarginX, config.CardTop, config.CardWidth, config.CardHeight, 2, config.ColorPrimaryDim, true)
}

// drawProgressBar 以 cx 为中心绘制进度条，progress ∈ [0, 1]
func drawProgressBar(screen, pixel *ebiten.Image, cx, y, w, h, progress float64) {
	track := utils.Rect{X: cx - w/2, Y: y, W: w, H: h}
	utils.FillRect(screen, pixel, track, config.ColorPrimaryDim)
	if progress <= 0 {
		return
	}
	fill := track
	fill.W = w * utils.Clamp01(progress)
	utils.FillRect(screen, pixel, fill, config.ColorPrimary)
}

// drawImageCover 把图片等比缩放铺满 size×size 的方框（超出部分裁掉）
func drawImageCover(screen, img *ebiten.Image, cx, top, size, alpha float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	// 裁出居中的正方形
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	sub := img.SubImage(image.Rect(x0, y0, x0+side, y0+side)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(side), size/float64(side))
	op.GeoM.Translate(cx-size/2, top)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sub, op)
}

// tap 返回本帧的点击/触摸位置（逻辑坐标）
func tap() (float64, float64, bool) {
	s := utils.GetInputState()
	return float64(s.X), float64(s.Y), s.JustPressed
}

// keyJustPressed 任意一个按键本帧刚按下
func keyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
