package config

// 布局配置常量
// 所有坐标都是逻辑屏幕坐标（竖屏 540×960），由 ebiten 负责缩放到窗口

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 540
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 960

	// WindowScale 桌面窗口相对逻辑尺寸的缩放
	WindowScale = 0.85
)

// Card 居中的白色卡片
const (
	CardMarginX = 30.0
	CardWidth   = ScreenWidth - 2*CardMarginX
	CardTop     = 90.0
	CardHeight  = 740.0
)

// Preface 序章
const (
	CoverSize    = 256.0
	CoverY       = 150.0
	TitleY       = 450.0
	TaglineY     = 540.0
	BeginButtonY = 740.0
	BeginButtonW = 320.0
	BeginButtonH = 72.0
)

// Journey 旅程
const (
	HeaderLabelY   = 120.0 // 分类名称
	ProgressBarY   = 160.0
	ProgressBarW   = 420.0
	ProgressBarH   = 10.0
	PhotoY         = 200.0
	PhotoSize      = 420.0
	DescriptionY   = 650.0
	IntroHeadlineY = 470.0
	OutroTextY     = 360.0
	IconY          = 300.0 // 开场页图标中心
	IconSize       = 96.0

	NavButtonY  = 860.0
	NavButtonW  = 210.0
	NavButtonH  = 64.0
	PrevButtonX = 40.0
	NextButtonX = ScreenWidth - 40.0 - NavButtonW
)

// Game 小游戏
const (
	GameTitleY     = 130.0
	GameHintY      = 190.0
	PlayAreaX      = 45.0
	PlayAreaY      = 240.0
	PlayAreaW      = 450.0
	PlayAreaH      = 440.0
	HeartSize      = 64.0
	HeartHitRadius = 40.0
	HeartMinSpeed  = 70.0  // 像素/秒
	HeartMaxSpeed  = 130.0 // 像素/秒
	HeartPopTime   = 0.35  // 消失动画(秒)
	HeartPopScale  = 2.0
	GameProgressY  = 720.0
	GameScoreY     = 750.0
)

// Epilogue 尾声
const (
	LetterTop       = 120.0
	LetterTextWidth = 420.0
	UnlockButtonY   = 790.0
	UnlockButtonR   = 48.0
	UnlockCaptionY  = 860.0
	SecretTitleY    = 360.0
	SecretTaglineY  = 460.0
	DismissButtonY  = 640.0
	DismissButtonW  = 280.0
	DismissButtonH  = 68.0
)
