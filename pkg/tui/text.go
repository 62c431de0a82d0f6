package tui

import (
	"strings"

	"github.com/decker502/birthday24/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// wrap 按终端显示宽度折行（中文和 emoji 占两列）
func wrap(s string, width int) []string {
	return utils.WrapWords(s, float64(width), func(line string) float64 {
		return float64(runewidth.StringWidth(line))
	})
}

// drawText 从 (x, y) 开始绘制一行文字，超出 maxX 的部分截掉
//
// 返回: 绘制结束后的 x 坐标
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered 在 [left, right) 范围内居中绘制一行
func drawCentered(screen tcell.Screen, left, right, y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, right-left, "…")
	x := left + (right-left-runewidth.StringWidth(s))/2
	drawText(screen, x, y, right, s, style)
}

// drawWrapped 折行后逐行居中绘制
//
// 返回: 占用的行数
func drawWrapped(screen tcell.Screen, left, right, y int, s string, style tcell.Style) int {
	lines := wrap(s, right-left)
	for i, line := range lines {
		drawCentered(screen, left, right, y+i, line, style)
	}
	return len(lines)
}

// progressBar 用方块字符表示进度，例如 "████░░░░"
func progressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(utils.Clamp01(progress)*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// fillRect 用空格和样式填充矩形
func fillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
