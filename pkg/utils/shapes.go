package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 形状图片都是白色蒙版，绘制时用 ColorScale 着色

// HeartMask 生成 size×size 的心形蒙版
// filled=false 时只保留轮廓（线宽约为边长的 1/10）
func HeartMask(size int, filled bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x, y := heartCoords(px, py, size)
			if !insideHeart(x, y) {
				continue
			}
			if !filled && insideHeart(x*1.25, (y+0.1)*1.25) {
				continue
			}
			img.Set(px, py, color.White)
		}
	}
	return img
}

// heartCoords 把像素坐标映射到心形方程的坐标系（y 轴向上）
func heartCoords(px, py, size int) (float64, float64) {
	s := float64(size)
	x := (float64(px)+0.5)/s*2.6 - 1.3
	y := 1.2 - (float64(py)+0.5)/s*2.6
	return x, y
}

// insideHeart 心形曲线 (x²+y²-1)³ - x²y³ <= 0
func insideHeart(x, y float64) bool {
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}

// FlowerMask 生成五瓣花蒙版，花心留空
func FlowerMask(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}
	c := float64(size) / 2
	petalR := float64(size) * 0.22
	orbit := float64(size) * 0.26
	centerR := float64(size) * 0.12

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			if InCircle(x, y, c, c, centerR) {
				continue
			}
			for i := 0; i < 5; i++ {
				angle := float64(i)*2*math.Pi/5 - math.Pi/2
				if InCircle(x, y, c+orbit*math.Cos(angle), c+orbit*math.Sin(angle), petalR) {
					img.Set(px, py, color.White)
					break
				}
			}
		}
	}
	return img
}

// ShapeImages 缓存转换好的形状图片
type ShapeImages struct {
	HeartFilled  *ebiten.Image
	HeartOutline *ebiten.Image
	Flower       *ebiten.Image
	Pixel        *ebiten.Image // 1×1 白色，用于彩纸和矩形
}

// NewShapeImages 生成所有形状图片
func NewShapeImages(size int) *ShapeImages {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &ShapeImages{
		HeartFilled:  ebiten.NewImageFromImage(HeartMask(size, true)),
		HeartOutline: ebiten.NewImageFromImage(HeartMask(size, false)),
		Flower:       ebiten.NewImageFromImage(FlowerMask(size)),
		Pixel:        pixel,
	}
}

// DrawShape 以 (cx, cy) 为中心绘制形状图片
//
// 参数：
//   - size: 目标边长（像素）
//   - rotation: 旋转角度（弧度）
//   - clr: 着色
//   - alpha: 额外透明度 [0, 1]
func DrawShape(screen, img *ebiten.Image, cx, cy, size, rotation float64, clr color.Color, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/h)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// FillRect 用 1×1 白色像素图绘制矩形
func FillRect(screen, pixel *ebiten.Image, r Rect, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, op)
}
