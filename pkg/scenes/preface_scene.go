package scenes

import (
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 封面呼吸动画
const (
	coverPulsePeriod = 3.0
	coverPulseAmp    = 0.04
	fadeInDuration   = 0.6
)

// PrefaceScene 序章：封面、标题和"开始"按钮
type PrefaceScene struct {
	ctx     *Context
	elapsed float64
	begin   button
	cover   *ebiten.Image // nil 时绘制一颗大爱心
}

// NewPrefaceScene 创建序章场景
func NewPrefaceScene(ctx *Context) *PrefaceScene {
	content := ctx.Navigator.Content()
	s := &PrefaceScene{
		ctx: ctx,
		begin: button{
			rect:    utils.CenteredRect(config.ScreenWidth/2, config.BeginButtonY, config.BeginButtonW, config.BeginButtonH),
			label:   content.Preface.BeginLabel,
			primary: true,
			visible: true,
		},
	}
	if content.Preface.Cover != "" {
		s.cover = ctx.Resources.ImageOrPlaceholder(content.Preface.Cover)
	}
	return s
}

// OnEnter 每次回到序章时重新播放淡入
func (s *PrefaceScene) OnEnter() {
	s.elapsed = 0
}

// Update 处理开始按钮和键盘
func (s *PrefaceScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	if x, y, ok := tap(); ok {
		s.handleTap(x, y)
	}
	if keyJustPressed(ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyArrowRight) {
		s.ctx.Navigator.Advance()
	}
}

func (s *PrefaceScene) handleTap(x, y float64) {
	if s.begin.hit(x, y) {
		s.ctx.Navigator.Begin()
	}
}

// Draw 绘制序章
func (s *PrefaceScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	s.ctx.World.DrawBackground(screen)

	images := s.ctx.World.Render.Images()
	fonts := s.ctx.Fonts
	content := s.ctx.Navigator.Content()
	alpha := utils.EaseOutCubic(utils.Clamp01(s.elapsed / fadeInDuration))
	cx := float64(config.ScreenWidth) / 2

	size := config.CoverSize * utils.Pulse(s.elapsed, coverPulsePeriod, coverPulseAmp)
	if s.cover != nil {
		drawImageCover(screen, s.cover, cx, config.CoverY+(config.CoverSize-size)/2, size, alpha)
	} else {
		utils.DrawShape(screen, images.HeartFilled, cx, config.CoverY+config.CoverSize/2, size, 0, config.ColorPrimary, alpha)
	}

	utils.DrawWrappedCentered(screen, content.Preface.Title, fonts.Title, cx, config.TitleY,
		config.CardWidth, 6, config.ColorPrimary)
	utils.DrawWrappedCentered(screen, content.Preface.Tagline, fonts.Body, cx, config.TaglineY,
		config.CardWidth, 4, config.ColorMuted)

	s.begin.draw(screen, images.Pixel, fonts.Button)
	s.ctx.World.DrawForeground(screen)
}
