package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量一段文本的显示宽度
type MeasureFunc func(s string) float64

// WrapWords 按单词把文本折成不超过 maxWidth 的多行
//
// 换行规则:
//   - 在空白处断行，保留原有的换行符
//   - 单个单词超过最大宽度时按字符强制断行
//   - maxWidth <= 0 时不换行
func WrapWords(s string, maxWidth float64, measure MeasureFunc) []string {
	if maxWidth <= 0 || measure == nil {
		return strings.Split(s, "\n")
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, w := range words {
			candidate := w
			if current != "" {
				candidate = current + " " + w
			}
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			if measure(w) <= maxWidth {
				current = w
				continue
			}
			// 超长单词按字符断开
			broken := breakWord(w, maxWidth, measure)
			lines = append(lines, broken[:len(broken)-1]...)
			current = broken[len(broken)-1]
		}
		lines = append(lines, current)
	}
	return lines
}

func breakWord(w string, maxWidth float64, measure MeasureFunc) []string {
	var parts []string
	current := ""
	for len(w) > 0 {
		r, size := utf8.DecodeRuneInString(w)
		w = w[size:]
		if current != "" && measure(current+string(r)) > maxWidth {
			parts = append(parts, current)
			current = ""
		}
		current += string(r)
	}
	return append(parts, current)
}

// WrapText 使用字体度量换行
func WrapText(s string, face text.Face, maxWidth float64) []string {
	if face == nil {
		return []string{s}
	}
	return WrapWords(s, maxWidth, func(line string) float64 {
		w, _ := text.Measure(line, face, 0)
		return w
	})
}

// DrawCentered 以 cx 为水平中心、y 为顶部绘制单行文本
func DrawCentered(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// DrawWrappedCentered 换行后逐行居中绘制
//
// 返回：
//   - float64: 绘制占用的总高度
func DrawWrappedCentered(screen *ebiten.Image, s string, face text.Face, cx, y, maxWidth, lineSpacing float64, clr color.Color) float64 {
	if face == nil {
		return 0
	}
	lineHeight := face.Metrics().HAscent + face.Metrics().HDescent + lineSpacing
	lines := WrapText(s, face, maxWidth)
	for i, line := range lines {
		DrawCentered(screen, line, face, cx, y+float64(i)*lineHeight, clr)
	}
	return float64(len(lines)) * lineHeight
}
