package game

import (
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/types"
)

// TargetID 小游戏中一颗爱心的唯一标识
// 0 保留为无效ID
type TargetID uint64

// State 导航状态值对象
// 所有修改都通过 Transition 产生新值，可以直接比较和复制
type State struct {
	Stage      types.Stage
	Category   types.Category
	SlideIndex int // [-1, 24]：-1 开场页，0..23 内容页，24 结尾页

	// 小游戏
	Score   int
	Targets [config.LiveTargetCount]TargetID // 当前可点击的爱心
	lastID  TargetID                         // 最近分配的爱心ID，保证ID不重复

	// 尾声
	UnlockTaps     int
	SecretRevealed bool

	journeyVisited bool // 是否已经进入过旅程（只在第一次进入时放彩纸）
}

// InitialState 返回体验开始时的状态（序章）
func InitialState() State {
	return State{
		Stage:      types.StagePreface,
		Category:   types.CategoryMemories,
		SlideIndex: config.IntroSlideIndex,
	}
}

// IsIntro 是否位于分类开场页
func (s State) IsIntro() bool {
	return s.Stage == types.StageJourney && s.SlideIndex == config.IntroSlideIndex
}

// IsOutro 是否位于分类结尾页
func (s State) IsOutro() bool {
	return s.Stage == types.StageJourney && s.SlideIndex == config.OutroSlideIndex
}

// IsContentSlide 是否位于内容页（0..23）
func (s State) IsContentSlide() bool {
	return s.Stage == types.StageJourney && s.SlideIndex >= 0 && s.SlideIndex < config.SlidesPerCategory
}

// SlideProgress 当前内容页的进度 (index+1)/24，非内容页返回 0
func (s State) SlideProgress() float64 {
	if !s.IsContentSlide() {
		return 0
	}
	return float64(s.SlideIndex+1) / float64(config.SlidesPerCategory)
}

// GameProgress 小游戏进度 score/24
func (s State) GameProgress() float64 {
	return float64(s.Score) / float64(config.GameTargetScore)
}

// RemainingUnlockTaps 距离解锁秘密还需点击的次数，最小为 0
func (s State) RemainingUnlockTaps() int {
	left := config.SecretUnlockTaps - s.UnlockTaps
	if left < 0 {
		return 0
	}
	return left
}

// IsTargetLive 检查爱心ID当前是否可点击
func (s State) IsTargetLive(id TargetID) bool {
	return s.targetSlot(id) >= 0
}

func (s State) targetSlot(id TargetID) int {
	if id == 0 {
		return -1
	}
	for i, t := range s.Targets {
		if t == id {
			return i
		}
	}
	return -1
}

// respawnTargets 为所有槽位分配新的爱心ID
func (s *State) respawnTargets() {
	for i := range s.Targets {
		s.Targets[i] = s.allocTarget()
	}
}

func (s *State) allocTarget() TargetID {
	s.lastID++
	return s.lastID
}
