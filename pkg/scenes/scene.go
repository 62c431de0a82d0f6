package scenes

import (
	"log"

	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/systems"
	"github.com/decker502/birthday24/pkg/types"
)

// Scene is a type alias for game.Scene so callers only import this package.
type Scene = game.Scene

// Context 所有场景共享的依赖
//
// World 由应用持有：背景漂浮物和彩纸跨场景连续播放。
// 场景只通过 Navigator 修改状态，从不直接改变阶段。
type Context struct {
	Navigator *game.Navigator
	Resources *game.ResourceManager
	World     *systems.World
	Fonts     *Fonts
}

// NewSceneFactory 返回按阶段创建场景的工厂函数
func NewSceneFactory(ctx *Context) game.SceneFactory {
	return func(stage types.Stage) game.Scene {
		switch stage {
		case types.StagePreface:
			return NewPrefaceScene(ctx)
		case types.StageJourney:
			return NewJourneyScene(ctx)
		case types.StageGame:
			return NewGameScene(ctx)
		case types.StageEpilogue:
			return NewEpilogueScene(ctx)
		default:
			log.Printf("[Scenes] 未知阶段: %s", stage)
			return nil
		}
	}
}
