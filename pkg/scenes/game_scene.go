package scenes

import (
	"fmt"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 小游戏：点中 24 颗上升的爱心
//
// 分数只保存在导航器里。场景每帧把导航器的存活目标同步给
// HeartTargetSystem，点击命中后把目标ID交回导航器。
type GameScene struct {
	ctx *Context
}

// NewGameScene 创建小游戏场景
func NewGameScene(ctx *Context) *GameScene {
	return &GameScene{ctx: ctx}
}

// OnEnter 进入小游戏时立即生成爱心
func (s *GameScene) OnEnter() {
	s.syncHearts()
}

// Update 处理点击并同步爱心
func (s *GameScene) Update(deltaTime float64) {
	if x, y, ok := tap(); ok {
		s.handleTap(x, y)
	}
	s.syncHearts()
}

func (s *GameScene) handleTap(x, y float64) {
	id, hit := s.ctx.World.Hearts.HitTest(x, y)
	if !hit {
		return
	}
	s.ctx.Navigator.TapTarget(game.TargetID(id))
	s.syncHearts()
}

// syncHearts 让屏幕上的爱心与导航器的存活目标一致
// 通关后目标被清空，剩余的爱心会播放消失动画
func (s *GameScene) syncHearts() {
	targets := s.ctx.Navigator.State().Targets
	live := make([]uint64, 0, len(targets))
	for _, t := range targets {
		live = append(live, uint64(t))
	}
	s.ctx.World.Hearts.Sync(live)
}

// Draw 绘制小游戏
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	s.ctx.World.DrawBackground(screen)

	pixel := s.ctx.World.Render.Images().Pixel
	fonts := s.ctx.Fonts
	content := s.ctx.Navigator.Content()
	st := s.ctx.Navigator.State()
	cx := float64(config.ScreenWidth) / 2

	utils.DrawCentered(screen, content.Game.Title, fonts.Title, cx, config.GameTitleY, config.ColorPrimary)
	utils.DrawWrappedCentered(screen, content.Game.Hint, fonts.Label, cx, config.GameHintY,
		config.PlayAreaW, 2, config.ColorMuted)

	drawProgressBar(screen, pixel, cx, config.GameProgressY, config.ProgressBarW, config.ProgressBarH, st.GameProgress())
	utils.DrawCentered(screen, fmt.Sprintf("%d / %d", st.Score, config.GameTargetScore), fonts.Body,
		cx, config.GameScoreY, config.ColorPrimary)

	s.ctx.World.DrawForeground(screen)
}
