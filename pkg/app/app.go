// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/birthday24/internal/audio"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/scenes"
	"github.com/decker502/birthday24/pkg/systems"
	"github.com/decker502/birthday24/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tickDelta 固定时间步长（ebiten 默认 60 TPS）
const tickDelta = 1.0 / 60.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentPath 内容文件路径，为空使用 config.DefaultContentPath
	ContentPath string
	// FontPath 字体文件路径（"assets/..."），为空使用内置字体
	FontPath string
	// ReducedEffects 减少彩纸和背景漂浮物（与用户设置取或）
	ReducedEffects bool
	// Muted 本次运行静音，不写入设置
	Muted bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	navigator    *game.Navigator
	sceneManager *game.SceneManager
	world        *systems.World
	dispatcher   *EffectDispatcher
	settings     *game.SettingsManager
	audioManager *game.AudioManager // 无音频设备时为 nil
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化贺卡应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化资源。
// 内容文件不满足"每个分类 24 项"时返回的错误包装了 config.ErrInvalidContent。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ContentPath
	if path == "" {
		path = config.DefaultContentPath
	}
	content, err := config.LoadContentConfig(path)
	if err != nil {
		return nil, fmt.Errorf("内容加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := ebaudio.NewContext(audio.SampleRate)

	gameState := game.GetGameState()
	a, err := newApp(cfg, content, audioContext, gameState.GetSettingsManager())
	if err != nil {
		return nil, err
	}
	if a.audioManager != nil {
		gameState.SetAudioManager(a.audioManager)
	}
	return a, nil
}

// newApp 组装导航器、世界和场景
// audioContext 为 nil 时不合成音效（测试中使用）
func newApp(cfg Config, content *config.ContentConfig, audioContext *ebaudio.Context, settingsManager *game.SettingsManager) (*App, error) {
	navigator, err := game.NewNavigator(content)
	if err != nil {
		return nil, err
	}

	if cfg.Muted {
		settingsManager.SetMusicEnabled(false)
		settingsManager.SetSoundEnabled(false)
	}

	resourceManager := game.NewResourceManager(audioContext)

	var (
		audioManager *game.AudioManager
		sounds       SoundPlayer
	)
	if audioContext != nil {
		audioManager = game.NewAudioManager(resourceManager, settingsManager)
		audioManager.LoadSynthesizedSounds()
		sounds = audioManager
		log.Printf("[App] AudioManager initialized")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// 移动端默认减少特效
	reduced := cfg.ReducedEffects || settingsManager.GetSettings().ReducedEffects || utils.IsMobile()
	world := systems.NewWorld(rand.New(rand.NewSource(seed)), reduced)
	log.Printf("[App] World initialized (seed=%d, reduced=%v)", seed, reduced)

	ctx := &scenes.Context{
		Navigator: navigator,
		Resources: resourceManager,
		World:     world,
		Fonts:     scenes.LoadFonts(resourceManager, cfg.FontPath),
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(ctx))
	sceneManager.SyncStage(navigator.Stage())

	return &App{
		navigator:    navigator,
		sceneManager: sceneManager,
		world:        world,
		dispatcher:   NewEffectDispatcher(world.Confetti, sounds),
		settings:     settingsManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := WindowSize()
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(tickDelta)
	a.step(tickDelta)
	return nil
}

// step 场景处理完输入之后：播放效果、跟随阶段切换场景、推进实体世界
func (a *App) step(deltaTime float64) {
	a.dispatcher.Dispatch(a.navigator.DrainEffects())
	a.sceneManager.SyncStage(a.navigator.Stage())
	a.world.Update(deltaTime)
}

func (a *App) toggleFullscreen() {
	fullscreen := a.settings.ToggleFullscreen()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}

	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Navigator 返回导航器
func (a *App) Navigator() *game.Navigator {
	return a.navigator
}

// StartFullscreen 用户上次是否以全屏退出
func (a *App) StartFullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// WindowSize 桌面窗口的初始大小
func WindowSize() (int, int) {
	return int(config.ScreenWidth * config.WindowScale), int(config.ScreenHeight * config.WindowScale)
}
