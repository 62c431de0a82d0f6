package scenes

import (
	"fmt"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 解锁按钮动画
const (
	unlockPulsePeriod  = 1.6
	unlockPulseAmp     = 0.06
	unlockPressTime    = 0.15
	unlockPressScale   = 0.8
	letterLineSpacing  = 6.0
	letterParagraphGap = 18.0
)

// EpilogueScene 尾声：一封信和需要点击 24 次才能解锁的秘密
//
// 秘密浮层只是本场景的一个绘制层：SecretRevealed 为 true 时覆盖整个屏幕，
// 关闭后不能再次打开。
type EpilogueScene struct {
	ctx *Context

	elapsed      float64
	pressElapsed float64 // 距离上一次点击解锁按钮的时间
	dismiss      button
}

// NewEpilogueScene 创建尾声场景
func NewEpilogueScene(ctx *Context) *EpilogueScene {
	return &EpilogueScene{
		ctx:          ctx,
		pressElapsed: unlockPressTime,
		dismiss: button{
			rect:    utils.CenteredRect(config.ScreenWidth/2, config.DismissButtonY, config.DismissButtonW, config.DismissButtonH),
			label:   ctx.Navigator.Content().Secret.DismissLabel,
			visible: true,
		},
	}
}

// OnEnter 重置动画计时
func (s *EpilogueScene) OnEnter() {
	s.elapsed = 0
}

// secretVisible 秘密浮层是否显示
func (s *EpilogueScene) secretVisible() bool {
	return s.ctx.Navigator.State().SecretRevealed
}

// Update 处理解锁按钮和秘密浮层
func (s *EpilogueScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.pressElapsed += deltaTime

	if x, y, ok := tap(); ok {
		s.handleTap(x, y)
	}
	switch {
	case keyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace):
		s.ctx.Navigator.DismissSecret()
	case keyJustPressed(ebiten.KeySpace, ebiten.KeyEnter):
		if !s.secretVisible() {
			s.tapUnlock()
		}
	}

	alpha := 1.0
	if s.secretVisible() {
		alpha = config.SecretFloaterAlpha
	}
	s.ctx.World.Floats.SetAlphaScale(alpha)
}

func (s *EpilogueScene) handleTap(x, y float64) {
	if s.secretVisible() {
		// 浮层打开时只响应关闭按钮
		if s.dismiss.hit(x, y) {
			s.ctx.Navigator.DismissSecret()
		}
		return
	}
	if utils.InCircle(x, y, float64(config.ScreenWidth)/2, config.UnlockButtonY, config.UnlockButtonR) {
		s.tapUnlock()
	}
}

func (s *EpilogueScene) tapUnlock() {
	s.pressElapsed = 0
	s.ctx.Navigator.TapUnlock()
}

// pressScale 点击后按钮先缩小，再回弹到原始大小
func (s *EpilogueScene) pressScale() float64 {
	if s.pressElapsed >= unlockPressTime {
		return 1
	}
	return utils.Lerp(unlockPressScale, 1, utils.EaseOutBack(s.pressElapsed/unlockPressTime))
}

// caption 解锁按钮下方的提示
func (s *EpilogueScene) caption() string {
	ep := s.ctx.Navigator.Content().Epilogue
	remaining := s.ctx.Navigator.State().RemainingUnlockTaps()
	if remaining == 0 {
		return ep.UnlockedMsg
	}
	return fmt.Sprintf(ep.TapsLeftFmt, remaining)
}

// Draw 绘制信件，必要时叠加秘密浮层
func (s *EpilogueScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	s.ctx.World.DrawBackground(screen)

	images := s.ctx.World.Render.Images()
	drawCard(screen, images.Pixel)
	s.drawLetter(screen)

	cx := float64(config.ScreenWidth) / 2
	scale := utils.Pulse(s.elapsed, unlockPulsePeriod, unlockPulseAmp)
	scale *= s.pressScale()
	r := config.UnlockButtonR * scale
	vector.StrokeCircle(screen, float32(cx), float32(config.UnlockButtonY), float32(r*1.45), 2, config.ColorPrimaryDim, true)
	utils.DrawShape(screen, images.HeartFilled, cx, config.UnlockButtonY, 2*r*1.15, 0, config.ColorPrimary, 1)
	utils.DrawShape(screen, images.HeartOutline, cx, config.UnlockButtonY, r, 0, config.ColorWhite, 1)
	utils.DrawCentered(screen, s.caption(), s.ctx.Fonts.Label, cx, config.UnlockCaptionY, config.ColorPrimary)

	if s.secretVisible() {
		s.drawSecret(screen)
	}
	s.ctx.World.DrawForeground(screen)
}

func (s *EpilogueScene) drawLetter(screen *ebiten.Image) {
	ep := s.ctx.Navigator.Content().Epilogue
	fonts := s.ctx.Fonts
	cx := float64(config.ScreenWidth) / 2

	y := config.LetterTop
	y += utils.DrawWrappedCentered(screen, ep.Salutation, fonts.Headline, cx, y,
		config.LetterTextWidth, letterLineSpacing, config.ColorPrimary) + letterParagraphGap
	for _, p := range ep.Paragraphs {
		y += utils.DrawWrappedCentered(screen, p, fonts.Body, cx, y,
			config.LetterTextWidth, letterLineSpacing, config.ColorText) + letterParagraphGap
	}
	utils.DrawWrappedCentered(screen, ep.Signature, fonts.Body, cx, y,
		config.LetterTextWidth, letterLineSpacing, config.ColorPrimary)
}

// drawSecret 全屏红色浮层，背景漂浮物以较低透明度再画一遍
func (s *EpilogueScene) drawSecret(screen *ebiten.Image) {
	images := s.ctx.World.Render.Images()
	secret := s.ctx.Navigator.Content().Secret
	fonts := s.ctx.Fonts
	cx := float64(config.ScreenWidth) / 2

	utils.FillRect(screen, images.Pixel, utils.Rect{W: config.ScreenWidth, H: config.ScreenHeight}, config.ColorOverlay)
	s.ctx.World.DrawBackground(screen)

	utils.DrawShape(screen, images.HeartFilled, cx, config.SecretTitleY-110,
		120*utils.Pulse(s.elapsed, 1.2, 0.08), 0, config.ColorWhite, 1)
	utils.DrawCentered(screen, secret.Title, fonts.Title, cx, config.SecretTitleY, config.ColorWhite)
	utils.DrawWrappedCentered(screen, secret.Tagline, fonts.Body, cx, config.SecretTaglineY,
		config.LetterTextWidth, letterLineSpacing, config.ColorWhite)

	bg, fg := config.ColorWhite, config.ColorPrimary
	utils.FillRect(screen, images.Pixel, s.dismiss.rect, bg)
	drawTextMiddle(screen, s.dismiss.label, fonts.Button, s.dismiss.rect, fg)
}
