package app

import (
	"fmt"
	"log"

	"github.com/decker502/birthday24/pkg/game"
)

// ConfettiLauncher 能够喷射一次彩纸
type ConfettiLauncher interface {
	Burst() int
}

// SoundPlayer 能够按ID播放音效
type SoundPlayer interface {
	Play(soundID string) bool
}

// EffectDispatcher 把导航器的效果请求变成画面和声音
//
// 每个效果在 recover 保护下播放：失败只记录日志，
// 既不阻塞后续效果，也不会影响已经发生的状态转换。
type EffectDispatcher struct {
	confetti ConfettiLauncher
	sounds   SoundPlayer // 可为 nil（无音频设备）
	failures int
}

// NewEffectDispatcher 创建效果分发器
func NewEffectDispatcher(confetti ConfettiLauncher, sounds SoundPlayer) *EffectDispatcher {
	return &EffectDispatcher{
		confetti: confetti,
		sounds:   sounds,
	}
}

// Dispatch 依次播放所有效果
//
// 返回：
//   - int: 成功播放的效果数量
func (d *EffectDispatcher) Dispatch(effects []game.Effect) int {
	played := 0
	for _, e := range effects {
		if err := d.play(e); err != nil {
			d.failures++
			log.Printf("[EffectDispatcher] Warning: %s failed: %v", e, err)
			continue
		}
		played++
	}
	return played
}

// Failures 返回累计失败次数
func (d *EffectDispatcher) Failures() int {
	return d.failures
}

func (d *EffectDispatcher) play(e game.Effect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if e.Kind == game.EffectConfetti && d.confetti != nil {
		d.confetti.Burst()
	}
	if id := soundFor(e); id != "" && d.sounds != nil {
		d.sounds.Play(id)
	}
	return nil
}

// soundFor 返回效果对应的音效ID
func soundFor(e game.Effect) string {
	switch e.Kind {
	case game.EffectConfetti:
		return game.SoundFanfare
	case game.EffectChime:
		if e.Cause == game.CauseUnlockTap {
			return game.SoundTick
		}
		return game.SoundChime
	default:
		return ""
	}
}
