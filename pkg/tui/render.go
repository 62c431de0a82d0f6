package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/birthday24/pkg/components"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// maxCardWidth 卡片最大宽度（字符）
const maxCardWidth = 64

var confettiGlyphs = []rune{'*', '•', '✦', '♥', '+'}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	styleText    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(rgb(config.ColorPrimary)).Bold(true)
	styleMuted   = tcell.StyleDefault.Foreground(rgb(config.ColorMuted))
	styleHeart   = tcell.StyleDefault.Foreground(rgb(config.ColorHeart)).Bold(true)
	styleButton  = tcell.StyleDefault.Foreground(rgb(config.ColorWhite)).Background(rgb(config.ColorPrimary)).Bold(true)
	styleOverlay = tcell.StyleDefault.Foreground(rgb(config.ColorWhite)).Background(rgb(config.ColorOverlay))
)

// card 当前帧的卡片范围
type card struct {
	left, right, top, bottom int
}

func (c card) width() int { return c.right - c.left }

func (m *Model) layoutCard() card {
	w, h := m.screen.Size()
	cw := w - 4
	if cw > maxCardWidth {
		cw = maxCardWidth
	}
	if cw < 10 {
		cw = w
	}
	left := (w - cw) / 2
	return card{left: left, right: left + cw, top: 1, bottom: h - 2}
}

// Draw 绘制当前状态
func (m *Model) Draw() {
	m.screen.Clear()
	m.targetBoxes = [config.LiveTargetCount]box{}
	m.unlockBox, m.dismissBox = box{}, box{}

	c := m.layoutCard()
	st := m.nav.State()
	switch st.Stage {
	case types.StagePreface:
		m.drawPreface(c)
	case types.StageJourney:
		m.drawJourney(c, st)
	case types.StageGame:
		m.drawGame(c, st)
	case types.StageEpilogue:
		m.drawEpilogue(c, st)
		if st.SecretRevealed {
			m.drawSecret(c)
		}
	}
	m.drawConfetti()
	m.drawStatus(st)
	m.screen.Show()
}

func (m *Model) drawPreface(c card) {
	p := m.nav.Content().Preface
	y := c.top + 2
	pulse := 1 + int(math.Round(math.Sin(m.elapsed*3)))
	drawCentered(m.screen, c.left, c.right, y+pulse, "♥", styleHeart)
	y += 5
	y += drawWrapped(m.screen, c.left, c.right, y, p.Title, styleTitle) + 1
	y += drawWrapped(m.screen, c.left, c.right, y, p.Tagline, styleMuted) + 2
	drawCentered(m.screen, c.left, c.right, y, " "+p.BeginLabel+" ", styleButton)
}

func (m *Model) drawJourney(c card, st game.State) {
	cat := m.nav.CurrentCategory()
	y := c.top + 1

	switch {
	case st.IsIntro():
		drawCentered(m.screen, c.left, c.right, y+2, categoryIcon(st.Category), styleHeart)
		drawWrapped(m.screen, c.left, c.right, y+5, cat.Intro, styleTitle)
		drawCentered(m.screen, c.left, c.right, c.bottom-1, " → ", styleButton)

	case st.IsOutro():
		drawCentered(m.screen, c.left, c.right, y+2, "✿", styleHeart)
		drawWrapped(m.screen, c.left, c.right, y+5, cat.Outro, styleTitle)
		drawCentered(m.screen, c.left, c.right, c.bottom-1, " → ", styleButton)

	default:
		item, _ := m.nav.CurrentItem()
		drawCentered(m.screen, c.left, c.right, y, cat.Label, styleTitle)
		counter := fmt.Sprintf(" %d/%d", st.SlideIndex+1, config.SlidesPerCategory)
		bar := progressBar(st.SlideProgress(), c.width()-len(counter)-2)
		drawCentered(m.screen, c.left, c.right, y+1, bar+counter, styleHeart)
		if item.Image != "" {
			drawCentered(m.screen, c.left, c.right, y+3, "[ "+item.Image+" ]", styleMuted)
		}
		drawWrapped(m.screen, c.left, c.right, y+5, "\""+item.Description+"\"", styleText)

		next := "Next →"
		if st.SlideIndex == config.SlidesPerCategory-1 {
			next = "End Chapter"
		}
		drawText(m.screen, c.left, c.bottom-1, c.right, " ← Previous ", styleMuted)
		drawText(m.screen, c.right-len([]rune(next))-2, c.bottom-1, c.right, " "+next+" ", styleButton)
	}
}

func categoryIcon(cat types.Category) string {
	switch cat {
	case types.CategoryReasons:
		return "✿"
	case types.CategoryFuture:
		return "♡"
	default:
		return "♥"
	}
}

func (m *Model) drawGame(c card, st game.State) {
	g := m.nav.Content().Game
	drawCentered(m.screen, c.left, c.right, c.top, g.Title, styleTitle)
	drawWrapped(m.screen, c.left, c.right, c.top+1, g.Hint, styleMuted)

	areaTop := c.top + 4
	areaBottom := c.bottom - 3
	height := areaBottom - areaTop
	if height < 1 {
		height = 1
	}

	// 已经不存在的爱心不再记录出现时间
	live := make(map[game.TargetID]bool, len(st.Targets))
	for _, id := range st.Targets {
		live[id] = true
		if _, ok := m.heartBorn[id]; !ok {
			m.heartBorn[id] = m.elapsed
		}
	}
	for id := range m.heartBorn {
		if !live[id] {
			delete(m.heartBorn, id)
		}
	}

	slotW := c.width() / len(st.Targets)
	for i, id := range st.Targets {
		p := math.Mod((m.elapsed-m.heartBorn[id])/heartRiseSeconds+float64(i)*0.3, 1)
		y := areaBottom - int(p*float64(height))
		x := c.left + slotW*i + slotW/2 - 2
		label := fmt.Sprintf("♥ %d", i+1)
		drawText(m.screen, x, y, c.right, label, styleHeart)
		m.targetBoxes[i] = box{x: x - 1, y: y - 1, w: 5, h: 3}
	}

	counter := fmt.Sprintf(" %d / %d", st.Score, config.GameTargetScore)
	drawCentered(m.screen, c.left, c.right, c.bottom-1,
		progressBar(st.GameProgress(), c.width()-len(counter)-2)+counter, styleHeart)
}

func (m *Model) drawEpilogue(c card, st game.State) {
	ep := m.nav.Content().Epilogue
	y := c.top
	y += drawWrapped(m.screen, c.left, c.right, y, ep.Salutation, styleTitle) + 1
	for _, para := range ep.Paragraphs {
		if y >= c.bottom-4 {
			break
		}
		y += drawWrapped(m.screen, c.left, c.right, y, para, styleText) + 1
	}
	drawWrapped(m.screen, c.left, c.right, y, ep.Signature, styleHeart)

	label := " ♥ "
	if m.flash > 0 {
		label = "(♥)"
	}
	bx := c.left + (c.width()-3)/2
	by := c.bottom - 3
	drawText(m.screen, bx, by, c.right, label, styleButton)
	m.unlockBox = box{x: bx - 1, y: by - 1, w: 5, h: 3}

	caption := fmt.Sprintf(ep.TapsLeftFmt, st.RemainingUnlockTaps())
	if st.RemainingUnlockTaps() == 0 {
		caption = ep.UnlockedMsg
	}
	drawCentered(m.screen, c.left, c.right, c.bottom-1, caption, styleMuted)
}

// drawSecret 秘密浮层盖住整张卡片
func (m *Model) drawSecret(c card) {
	s := m.nav.Content().Secret
	fillRect(m.screen, c.left, c.top, c.width(), c.bottom-c.top+1, styleOverlay)

	mid := c.top + (c.bottom-c.top)/3
	drawCentered(m.screen, c.left, c.right, mid, strings.ToUpper(s.Title), styleOverlay.Bold(true))
	drawWrapped(m.screen, c.left, c.right, mid+2, s.Tagline, styleOverlay)

	label := " " + s.DismissLabel + " "
	n := len([]rune(label))
	x := c.left + (c.width()-n)/2
	y := c.bottom - 3
	drawText(m.screen, x, y, c.right, label, styleButton.Reverse(true))
	m.dismissBox = box{x: x, y: y, w: n, h: 1}
}

// drawConfetti 把逻辑坐标的彩纸映射到字符格
func (m *Model) drawConfetti() {
	w, h := m.screen.Size()
	em := m.entityManager
	for _, id := range ecs.GetEntitiesWith3[
		*components.ConfettiComponent,
		*components.PositionComponent,
		*components.ShapeComponent,
	](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
		if shape.Alpha < 0.15 {
			continue
		}
		x := int(pos.X / config.ScreenWidth * float64(w))
		y := int(pos.Y / config.ScreenHeight * float64(h))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		glyph := confettiGlyphs[int(id)%len(confettiGlyphs)]
		m.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(rgb(shape.Color)))
	}
}

func (m *Model) drawStatus(st game.State) {
	w, h := m.screen.Size()
	var hint string
	switch st.Stage {
	case types.StagePreface:
		hint = "Enter 开始"
	case types.StageJourney:
		hint = "→/Enter 下一页  ← 上一页"
	case types.StageGame:
		hint = "1-3 点击爱心"
	case types.StageEpilogue:
		hint = "Space 点击爱心"
		if st.SecretRevealed {
			hint = "Esc 返回"
		}
	}
	style := styleMuted
	if m.flash > 0 {
		style = styleHeart
	}
	drawText(m.screen, 1, h-1, w, hint+"  q 退出", style)
}
