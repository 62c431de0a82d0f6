package game

import (
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/types"
)

// EventKind 用户事件类型
type EventKind int

const (
	// EventBegin 序章的开始按钮
	EventBegin EventKind = iota
	// EventAdvance 下一页
	EventAdvance
	// EventRetreat 上一页
	EventRetreat
	// EventTapTarget 点击小游戏中的爱心
	EventTapTarget
	// EventTapUnlock 点击尾声的爱心按钮
	EventTapUnlock
	// EventDismissSecret 关闭秘密浮层
	EventDismissSecret
)

// String 返回事件类型名称
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventAdvance:
		return "Advance"
	case EventRetreat:
		return "Retreat"
	case EventTapTarget:
		return "TapTarget"
	case EventTapUnlock:
		return "TapUnlock"
	case EventDismissSecret:
		return "DismissSecret"
	default:
		return "Unknown"
	}
}

// Event 一次离散的用户输入
type Event struct {
	Kind   EventKind
	Target TargetID // 仅 EventTapTarget 使用
}

// Transition 纯状态转换函数
// 每个 (状态, 事件) 组合都有且只有一个结果；不适用的事件原样返回状态（no-op）
//
// 返回：
//   - State: 新状态
//   - []Effect: 随转换产生的效果请求（可能为空）
func Transition(s State, ev Event) (State, []Effect) {
	switch s.Stage {
	case types.StagePreface:
		return prefaceTransition(s, ev)
	case types.StageJourney:
		return journeyTransition(s, ev)
	case types.StageGame:
		return gameTransition(s, ev)
	case types.StageEpilogue:
		return epilogueTransition(s, ev)
	}
	return s, nil
}

func prefaceTransition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EventBegin, EventAdvance:
		var effects []Effect
		if !s.journeyVisited {
			effects = append(effects, confetti(CauseJourneyStart))
		}
		s.Stage = types.StageJourney
		s.Category = types.CategoryMemories
		s.SlideIndex = config.IntroSlideIndex
		s.journeyVisited = true
		return s, effects
	}
	return s, nil
}

func journeyTransition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EventAdvance:
		if s.SlideIndex < config.OutroSlideIndex {
			s.SlideIndex++
			return s, nil
		}
		next, ok := s.Category.Next()
		if !ok {
			return enterGame(s)
		}
		s.Category = next
		s.SlideIndex = config.IntroSlideIndex
		return s, nil

	case EventRetreat:
		if s.SlideIndex > config.IntroSlideIndex {
			s.SlideIndex--
			return s, nil
		}
		prev, ok := s.Category.Prev()
		if !ok {
			s.Stage = types.StagePreface
			return s, nil
		}
		s.Category = prev
		s.SlideIndex = config.OutroSlideIndex
		return s, nil
	}
	return s, nil
}

func enterGame(s State) (State, []Effect) {
	s.Stage = types.StageGame
	s.Score = 0
	s.respawnTargets()
	return s, []Effect{confetti(CauseGameStart)}
}

func gameTransition(s State, ev Event) (State, []Effect) {
	if ev.Kind != EventTapTarget {
		return s, nil
	}

	slot := s.targetSlot(ev.Target)
	if slot < 0 {
		// 已被点过或从未存在的爱心
		return s, nil
	}

	s.Score++
	effects := []Effect{chime(CauseTargetTapped)}

	if s.Score >= config.GameTargetScore {
		s.Stage = types.StageEpilogue
		s.Targets = [config.LiveTargetCount]TargetID{}
		return s, append(effects, confetti(CauseGameWon))
	}

	s.Targets[slot] = s.allocTarget()
	return s, effects
}

func epilogueTransition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EventTapUnlock:
		if s.UnlockTaps >= config.SecretUnlockTaps {
			return s, nil
		}
		s.UnlockTaps++
		effects := []Effect{chime(CauseUnlockTap)}
		if s.UnlockTaps == config.SecretUnlockTaps {
			s.SecretRevealed = true
			effects = append(effects, confetti(CauseSecretRevealed))
		}
		return s, effects

	case EventDismissSecret:
		// 只隐藏浮层，计数器保持 24，之后无法再次解锁
		s.SecretRevealed = false
		return s, nil
	}
	return s, nil
}
