package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "birthday24"

// GameState 存储跨场景共享的服务
// 这是一个单例；体验进度本身由 Navigator 持有，不在这里
type GameState struct {
	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 首次调用时打开 gdata 存储，失败则进入降级模式（设置仅保存在内存）
func GetGameState() *GameState {
	if globalGameState == nil {
		store, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[GameState] Warning: gdata unavailable: %v (settings will not persist)", err)
			store = nil
		}
		globalGameState = &GameState{
			settingsManager: NewSettingsManager(store),
		}
	}
	return globalGameState
}

// GetSettingsManager 返回设置管理器，永不为 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetAudioManager 设置音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，未初始化时为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}
