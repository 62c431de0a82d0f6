package config

// 旅程与小游戏的固定参数
// 这些数字都来自"24 岁生日"这一主题，修改需同步内容文件
const (
	// SlidesPerCategory 每个分类的内容页数量
	SlidesPerCategory = 24

	// IntroSlideIndex 分类开场页的下标
	IntroSlideIndex = -1

	// OutroSlideIndex 分类结尾过渡页的下标
	OutroSlideIndex = SlidesPerCategory

	// GameTargetScore 小游戏通关所需的爱心数量
	GameTargetScore = 24

	// LiveTargetCount 小游戏中同时存在的爱心数量
	LiveTargetCount = 3

	// SecretUnlockTaps 解锁最终秘密所需的点击次数
	SecretUnlockTaps = 24
)
