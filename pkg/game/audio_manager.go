package game

import (
	"log"

	"github.com/decker502/birthday24/internal/audio"
	"github.com/gopxl/beep"
)

// 音效ID
const (
	SoundChime   = "chime"   // 点中爱心
	SoundTick    = "tick"    // 尾声爱心按钮
	SoundFanfare = "fanfare" // 彩纸庆祝
)

// AudioType 音频类型
type AudioType int

const (
	// AudioTypeSound 提示音（使用 SoundVolume）
	AudioTypeSound AudioType = iota
	// AudioTypeCelebration 庆祝音（使用 MusicVolume）
	AudioTypeCelebration
)

// AudioManager 音频管理器
// 职责：
//   - 启动时合成所有提示音并注册到 ResourceManager
//   - 播放时应用 SettingsManager 中的音量与开关
//
// 没有音频设备时 resourceManager 中不会有播放器，所有 Play 调用返回 false。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	kinds           map[string]AudioType
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例（可为 nil，使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		kinds: map[string]AudioType{
			SoundChime:   AudioTypeSound,
			SoundTick:    AudioTypeSound,
			SoundFanfare: AudioTypeCelebration,
		},
	}
}

// LoadSynthesizedSounds 合成并注册所有音效
//
// 返回：
//   - int: 成功注册的音效数量
func (am *AudioManager) LoadSynthesizedSounds() int {
	rate := beep.SampleRate(audio.SampleRate)
	sounds := map[string]beep.Streamer{
		SoundChime:   audio.NewChime(rate),
		SoundTick:    audio.NewTick(rate),
		SoundFanfare: audio.NewFanfare(rate),
	}

	loaded := 0
	for id, s := range sounds {
		if _, err := am.resourceManager.RegisterSound(id, audio.RenderPCM(s, rate)); err != nil {
			log.Printf("[AudioManager] Warning: %v", err)
			continue
		}
		loaded++
	}
	log.Printf("[AudioManager] Synthesized %d sounds", loaded)
	return loaded
}

// Play 播放指定音效
//
// 返回：
//   - bool: 是否成功播放（被禁用或未注册时返回 false）
func (am *AudioManager) Play(soundID string) bool {
	kind := am.kinds[soundID]
	if !am.isEnabled(kind) {
		return false
	}

	player := am.resourceManager.GetSound(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player.SetVolume(am.volume(kind))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// StopAll 暂停所有已注册的音效
func (am *AudioManager) StopAll() {
	for id := range am.kinds {
		if p := am.resourceManager.GetSound(id); p != nil && p.IsPlaying() {
			p.Pause()
		}
	}
}

// SetSoundVolume 设置提示音音量并更新设置
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// GetSoundVolume 获取当前提示音音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.volume(AudioTypeSound)
}

func (am *AudioManager) isEnabled(kind AudioType) bool {
	if am.settingsManager == nil {
		return true
	}
	s := am.settingsManager.GetSettings()
	if kind == AudioTypeCelebration {
		return s.MusicEnabled
	}
	return s.SoundEnabled
}

func (am *AudioManager) volume(kind AudioType) float64 {
	if am.settingsManager == nil {
		if kind == AudioTypeCelebration {
			return 0.7
		}
		return 0.8
	}
	s := am.settingsManager.GetSettings()
	if kind == AudioTypeCelebration {
		return s.MusicVolume
	}
	return s.SoundVolume
}
