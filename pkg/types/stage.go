package types

// Stage 表示整个体验的宏观阶段
// 只会向前推进，唯一的例外是从第一个分类的开场页后退回序章
type Stage int

const (
	// StagePreface 序章（封面 + 开始按钮）
	StagePreface Stage = iota
	// StageJourney 旅程（三个分类的幻灯片）
	StageJourney
	// StageGame 小游戏（接住 24 颗爱心）
	StageGame
	// StageEpilogue 尾声（信件 + 秘密）
	StageEpilogue
)

// String 返回阶段的字符串表示
func (s Stage) String() string {
	switch s {
	case StagePreface:
		return "Preface"
	case StageJourney:
		return "Journey"
	case StageGame:
		return "Game"
	case StageEpilogue:
		return "Epilogue"
	default:
		return "Unknown"
	}
}
