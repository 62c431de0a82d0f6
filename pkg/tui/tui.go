// Package tui 在终端里呈现同一份生日贺卡
//
// 状态机与桌面版共用 game.Navigator，这里只负责把按键和鼠标转成导航事件，
// 再把当前状态画到 tcell 屏幕上。彩纸沿用 systems.ConfettiSystem 的运动模型，
// 逻辑坐标按比例映射到字符格。
package tui

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/birthday24/pkg/app"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/ecs"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// frameInterval 终端刷新间隔
const frameInterval = 33 * time.Millisecond

// flashDuration 提示音对应的高亮持续时间(秒)
const flashDuration = 0.25

// heartRiseSeconds 爱心从底部升到顶部所需时间
const heartRiseSeconds = 6.0

// box 屏幕上的可点击区域
type box struct {
	x, y, w, h int
}

func (b box) contains(x, y int) bool {
	return b.w > 0 && x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// Model 终端前端
type Model struct {
	screen tcell.Screen
	nav    *game.Navigator

	entityManager *ecs.EntityManager
	confetti      *systems.ConfettiSystem
	lifetime      *systems.LifetimeSystem
	effects       *app.EffectDispatcher
	sounds        app.SoundPlayer // 可为 nil（静音或没有音频设备）

	lastButtons tcell.ButtonMask // 上一个鼠标事件的按键状态

	elapsed   float64
	flash     float64
	heartBorn map[game.TargetID]float64 // 爱心出现的时间

	// 上一帧绘制时记录的点击区域
	targetBoxes [config.LiveTargetCount]box
	unlockBox   box
	dismissBox  box
}

// New 创建终端前端
// sounds 可为 nil
func New(screen tcell.Screen, nav *game.Navigator, sounds app.SoundPlayer, rng *rand.Rand) *Model {
	em := ecs.NewEntityManager()
	m := &Model{
		screen:        screen,
		nav:           nav,
		entityManager: em,
		confetti:      systems.NewConfettiSystem(em, rng),
		lifetime:      systems.NewLifetimeSystem(em),
		sounds:        sounds,
		heartBorn:     make(map[game.TargetID]float64),
	}
	// 终端字符格有限，彩纸用减少模式
	m.confetti.SetReducedEffects(true)
	m.effects = app.NewEffectDispatcher(m.confetti, m)
	return m
}

// Play 实现 app.SoundPlayer：闪一下屏幕，再交给真正的播放器
func (m *Model) Play(soundID string) bool {
	m.flash = flashDuration
	if m.sounds == nil {
		return true
	}
	return m.sounds.Play(soundID)
}

// Navigator 返回驱动界面的导航器
func (m *Model) Navigator() *game.Navigator {
	return m.nav
}

// ConfettiCount 当前屏幕上的彩纸数量
func (m *Model) ConfettiCount() int {
	return m.confetti.ActiveCount()
}

// Tick 推进动画
func (m *Model) Tick(dt float64) {
	m.elapsed += dt
	if m.flash > 0 {
		m.flash -= dt
	}
	m.confetti.Update(dt)
	m.lifetime.Update(dt)
	m.entityManager.RemoveMarkedEntities()
}

// dispatchEffects 播放导航器积压的效果
func (m *Model) dispatchEffects() {
	before := m.effects.Failures()
	m.effects.Dispatch(m.nav.DrainEffects())
	if failed := m.effects.Failures() - before; failed > 0 {
		log.Printf("[TUI] %d 个效果播放失败", failed)
	}
}

// Run 事件循环：按键事件和定时刷新交替处理，直到退出或 ctx 取消
func (m *Model) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := m.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	m.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if m.HandleEvent(ev) {
				log.Printf("[TUI] 退出，停在 %s", m.nav.Stage())
				return nil
			}
			m.Draw()
		case now := <-ticker.C:
			m.Tick(now.Sub(last).Seconds())
			last = now
			m.Draw()
		}
	}
}
