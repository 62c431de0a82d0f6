package game

import "fmt"

// EffectKind 效果请求的类型
// 导航器只请求"播放"，具体如何播放由渲染层决定
type EffectKind int

const (
	// EffectConfetti 彩纸庆祝效果
	EffectConfetti EffectKind = iota
	// EffectChime 点击反馈音效
	EffectChime
)

// EffectCause 触发效果的原因
type EffectCause int

const (
	// CauseJourneyStart 第一次进入旅程
	CauseJourneyStart EffectCause = iota
	// CauseGameStart 进入小游戏
	CauseGameStart
	// CauseGameWon 小游戏达到目标分数
	CauseGameWon
	// CauseSecretRevealed 最终秘密被解锁
	CauseSecretRevealed
	// CauseTargetTapped 点中一颗爱心
	CauseTargetTapped
	// CauseUnlockTap 点击尾声的爱心按钮
	CauseUnlockTap
)

// Effect 随状态转换一起产生的效果请求
// 纯数据，不持有任何渲染资源
type Effect struct {
	Kind  EffectKind
	Cause EffectCause
}

// String 返回效果请求的可读描述（用于日志）
func (e Effect) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.Cause)
}

// String 返回效果类型名称
func (k EffectKind) String() string {
	switch k {
	case EffectConfetti:
		return "Confetti"
	case EffectChime:
		return "Chime"
	default:
		return "Unknown"
	}
}

// String 返回触发原因名称
func (c EffectCause) String() string {
	switch c {
	case CauseJourneyStart:
		return "JourneyStart"
	case CauseGameStart:
		return "GameStart"
	case CauseGameWon:
		return "GameWon"
	case CauseSecretRevealed:
		return "SecretRevealed"
	case CauseTargetTapped:
		return "TargetTapped"
	case CauseUnlockTap:
		return "UnlockTap"
	default:
		return "Unknown"
	}
}

func confetti(cause EffectCause) Effect {
	return Effect{Kind: EffectConfetti, Cause: cause}
}

func chime(cause EffectCause) Effect {
	return Effect{Kind: EffectChime, Cause: cause}
}
