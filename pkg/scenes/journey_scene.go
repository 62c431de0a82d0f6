package scenes

import (
	"fmt"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/types"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 开场页/结尾页中央的"继续"按钮
const (
	continueButtonY    = 720.0
	continueButtonSize = 72.0
	slideFadeDuration  = 0.35
)

// 导航按钮文字
const (
	labelNext       = "Next →"
	labelEndChapter = "End Chapter"
	labelPrevious   = "← Previous"
	labelContinue   = "→"
)

// JourneyScene 旅程：三个分类，每个分类 开场页 + 24 张内容页 + 结尾页
//
// 页面布局随 SlideIndex 变化：
//   - -1 开场页：分类图标、大标题、继续按钮
//   - 0..23 内容页：分类标签、进度条、照片、描述、上一页/下一页
//   - 24 结尾页：图标、过渡文字、继续按钮
type JourneyScene struct {
	ctx *Context

	prev     button
	next     button
	proceed  button // 开场页和结尾页的继续按钮
	lastSeen game.State
	elapsed  float64 // 当前页面显示时长，用于淡入
}

// NewJourneyScene 创建旅程场景
func NewJourneyScene(ctx *Context) *JourneyScene {
	s := &JourneyScene{
		ctx: ctx,
		prev: button{
			rect:  utils.Rect{X: config.PrevButtonX, Y: config.NavButtonY - config.NavButtonH/2, W: config.NavButtonW, H: config.NavButtonH},
			label: labelPrevious,
		},
		next: button{
			rect:    utils.Rect{X: config.NextButtonX, Y: config.NavButtonY - config.NavButtonH/2, W: config.NavButtonW, H: config.NavButtonH},
			label:   labelNext,
			primary: true,
		},
		proceed: button{
			rect:    utils.CenteredRect(config.ScreenWidth/2, continueButtonY, continueButtonSize, continueButtonSize),
			label:   labelContinue,
			primary: true,
		},
	}
	s.layout(ctx.Navigator.State())
	return s
}

// OnEnter 进入旅程时重新布局
func (s *JourneyScene) OnEnter() {
	s.elapsed = 0
	s.layout(s.ctx.Navigator.State())
}

// layout 根据当前页决定按钮的可见性和文字
func (s *JourneyScene) layout(st game.State) {
	s.lastSeen = st
	content := st.IsContentSlide()

	s.prev.visible = content
	s.next.visible = content
	s.proceed.visible = !content

	s.next.label = labelNext
	if st.SlideIndex == config.SlidesPerCategory-1 {
		s.next.label = labelEndChapter
	}
}

// Update 处理翻页
func (s *JourneyScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if x, y, ok := tap(); ok {
		s.handleTap(x, y)
	}
	switch {
	case keyJustPressed(ebiten.KeyArrowRight, ebiten.KeyEnter, ebiten.KeySpace):
		s.ctx.Navigator.Advance()
	case keyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyBackspace):
		s.ctx.Navigator.Retreat()
	}
	s.refresh()
}

func (s *JourneyScene) handleTap(x, y float64) {
	nav := s.ctx.Navigator
	switch {
	case s.prev.hit(x, y):
		nav.Retreat()
	case s.next.hit(x, y), s.proceed.hit(x, y):
		nav.Advance()
	}
	s.refresh()
}

// refresh 页面变化后重新布局并重播淡入
func (s *JourneyScene) refresh() {
	st := s.ctx.Navigator.State()
	if st.Category == s.lastSeen.Category && st.SlideIndex == s.lastSeen.SlideIndex {
		return
	}
	s.elapsed = 0
	s.layout(st)
}

// Draw 绘制当前页
func (s *JourneyScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	s.ctx.World.DrawBackground(screen)

	pixel := s.ctx.World.Render.Images().Pixel
	drawCard(screen, pixel)

	st := s.lastSeen
	alpha := utils.EaseOutCubic(utils.Clamp01(s.elapsed / slideFadeDuration))
	switch {
	case st.IsIntro():
		s.drawIntro(screen, st.Category, alpha)
	case st.IsOutro():
		s.drawOutro(screen, alpha)
	default:
		s.drawContent(screen, st, alpha)
	}

	fonts := s.ctx.Fonts
	s.prev.draw(screen, pixel, fonts.Button)
	s.next.draw(screen, pixel, fonts.Button)
	s.proceed.draw(screen, pixel, fonts.Headline)

	s.ctx.World.DrawForeground(screen)
}

func (s *JourneyScene) drawIntro(screen *ebiten.Image, cat types.Category, alpha float64) {
	images := s.ctx.World.Render.Images()
	cx := float64(config.ScreenWidth) / 2

	icon := images.HeartFilled
	switch cat {
	case types.CategoryReasons:
		icon = images.Flower
	case types.CategoryFuture:
		icon = images.HeartOutline
	}
	size := config.IconSize * (0.9 + 0.1*alpha)
	utils.DrawShape(screen, images.HeartFilled, cx, config.IconY, config.IconSize*1.8, 0, config.ColorPrimaryDim, alpha)
	utils.DrawShape(screen, icon, cx, config.IconY, size, 0, config.ColorHeart, alpha)

	utils.DrawWrappedCentered(screen, s.ctx.Navigator.CurrentCategory().Intro, s.ctx.Fonts.Headline,
		cx, config.IntroHeadlineY, config.LetterTextWidth, 6, config.ColorPrimary)
}

func (s *JourneyScene) drawOutro(screen *ebiten.Image, alpha float64) {
	images := s.ctx.World.Render.Images()
	cx := float64(config.ScreenWidth) / 2
	y := config.OutroTextY - 20*(1-alpha)

	spark := utils.Pulse(s.elapsed, 2, 0.1)
	utils.DrawShape(screen, images.Flower, cx, config.IconY-60, config.IconSize*spark, 0, config.ColorHeart, alpha)
	utils.DrawWrappedCentered(screen, s.ctx.Navigator.CurrentCategory().Outro, s.ctx.Fonts.Body,
		cx, y, config.LetterTextWidth, 6, config.ColorPrimary)
}

func (s *JourneyScene) drawContent(screen *ebiten.Image, st game.State, alpha float64) {
	nav := s.ctx.Navigator
	fonts := s.ctx.Fonts
	cx := float64(config.ScreenWidth) / 2
	pixel := s.ctx.World.Render.Images().Pixel

	utils.DrawCentered(screen, nav.CurrentCategory().Label, fonts.Label, cx, config.HeaderLabelY, config.ColorPrimary)
	drawProgressBar(screen, pixel, cx, config.ProgressBarY, config.ProgressBarW, config.ProgressBarH, st.SlideProgress())

	item, ok := nav.CurrentItem()
	if !ok {
		return
	}
	photo := s.ctx.Resources.ImageOrPlaceholder(item.Image)
	drawImageCover(screen, photo, cx, config.PhotoY+20*(1-alpha), config.PhotoSize, alpha)

	utils.DrawWrappedCentered(screen, fmt.Sprintf("“%s”", item.Description), fonts.Body,
		cx, config.DescriptionY, config.LetterTextWidth, 4, config.ColorText)
}
