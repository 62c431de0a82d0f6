package game

import (
	"log"

	"github.com/decker502/birthday24/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按阶段创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(stage types.Stage) Scene

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// Scenes are created lazily per stage and reused when the navigator returns
// to a stage (e.g. journey -> preface -> journey).
type SceneManager struct {
	currentScene Scene
	currentStage types.Stage
	hasStage     bool
	sceneFactory SceneFactory
	scenes       map[types.Stage]Scene
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		scenes: make(map[types.Stage]Scene),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SyncStage 让活动场景跟随导航器阶段
//
// 返回：
//   - bool: 是否发生了场景切换
func (sm *SceneManager) SyncStage(stage types.Stage) bool {
	if sm.hasStage && sm.currentStage == stage {
		return false
	}

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	scene, ok := sm.scenes[stage]
	if !ok {
		scene = sm.sceneFactory(stage)
		if scene == nil {
			log.Printf("[SceneManager] 错误: 无法创建场景: %s", stage)
			return false
		}
		sm.scenes[stage] = scene
	}

	sm.currentStage = stage
	sm.hasStage = true
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换到场景: %s", stage)
	return true
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
