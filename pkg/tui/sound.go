package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/birthday24/internal/audio"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// speakerBuffer 扬声器缓冲时长，越短延迟越低
const speakerBuffer = 50 * time.Millisecond

// SpeakerSounds 通过 beep/speaker 直接播放合成音效
// 每次播放都重新合成，streamer 只能消费一次
type SpeakerSounds struct {
	rate    beep.SampleRate
	sources map[string]func(beep.SampleRate) beep.Streamer
}

// NewSpeakerSounds 初始化扬声器
// 没有音频设备时返回错误，调用方应降级为静音
func NewSpeakerSounds() (*SpeakerSounds, error) {
	rate := beep.SampleRate(audio.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newSpeakerSounds(rate), nil
}

func newSpeakerSounds(rate beep.SampleRate) *SpeakerSounds {
	return &SpeakerSounds{
		rate: rate,
		sources: map[string]func(beep.SampleRate) beep.Streamer{
			game.SoundChime:   audio.NewChime,
			game.SoundTick:    audio.NewTick,
			game.SoundFanfare: audio.NewFanfare,
		},
	}
}

// Has 检查音效是否存在
func (s *SpeakerSounds) Has(soundID string) bool {
	_, ok := s.sources[soundID]
	return ok
}

// Play 实现 app.SoundPlayer
func (s *SpeakerSounds) Play(soundID string) bool {
	src, ok := s.sources[soundID]
	if !ok {
		log.Printf("[SpeakerSounds] Warning: Sound not found: %s", soundID)
		return false
	}
	speaker.Play(src(s.rate))
	return true
}

// Close 释放扬声器
func (s *SpeakerSounds) Close() {
	speaker.Close()
}
