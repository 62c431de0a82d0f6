package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 用户偏好
// 只保存偏好，不保存浏览进度：每次启动都从序章开始
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 庆祝音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 提示音音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 庆祝音开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 提示音开关

	Fullscreen     bool `yaml:"fullscreen"`     // 启动时是否全屏
	ReducedEffects bool `yaml:"reducedEffects"` // 减少彩纸和背景粒子
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// SettingsManager 设置管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	store    *gdata.Manager // 可为 nil（降级模式，仅内存）
	settings *Settings
}

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// NewSettingsManager 创建设置管理器
//
// store 为 nil 时进入降级模式：设置只保存在内存中。
// 加载失败不是致命错误，会回退到默认设置。
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// 文件中缺失的字段保留默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 保存设置到 gdata
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// GetSettings 返回当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// IsPersistent 设置是否会写入磁盘
func (sm *SettingsManager) IsPersistent() bool {
	return sm.store != nil
}

// SetMusicVolume 设置庆祝音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置提示音音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleFullscreen 切换全屏偏好并返回新值
func (sm *SettingsManager) ToggleFullscreen() bool {
	sm.settings.Fullscreen = !sm.settings.Fullscreen
	return sm.settings.Fullscreen
}

func (sm *SettingsManager) SetReducedEffects(reduced bool) {
	sm.settings.ReducedEffects = reduced
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
