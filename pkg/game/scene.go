package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one stage of the card (preface, journey, game, epilogue).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景每次成为活动场景时被调用
//
// 用于重置场景内的动画计时器（例如返回序章时重新播放淡入）
type Enterable interface {
	OnEnter()
}
