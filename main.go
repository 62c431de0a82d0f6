package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/birthday24/data"
	"github.com/decker502/birthday24/pkg/app"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	env, err := config.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置错误: %v\n", err)
		os.Exit(1)
	}

	// 命令行参数覆盖环境变量
	var (
		verbose     = flag.Bool("verbose", env.Verbose, "显示详细日志")
		contentPath = flag.String("content", env.ContentPath, "内容文件路径（data/ 开头时读取内置文件）")
		assetsDir   = flag.String("assets", env.AssetsDir, "包含 assets/ 目录的根目录")
		fontPath    = flag.String("font", env.FontPath, "字体文件（assets/ 开头），为空使用内置字体")
		reduced     = flag.Bool("reduced", env.ReducedEffects, "减少彩纸和背景动画")
		muted       = flag.Bool("mute", env.Muted, "静音")
		seed        = flag.Int64("seed", env.Seed, "随机种子（0 = 当前时间）")
	)
	flag.Parse()

	embedded.Init(os.DirFS(*assetsDir), data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		ContentPath:    *contentPath,
		FontPath:       *fontPath,
		ReducedEffects: *reduced,
		Muted:          *muted,
		Seed:           *seed,
	})
	if err != nil {
		if errors.Is(err, config.ErrInvalidContent) {
			fmt.Fprintf(os.Stderr, "内容文件无效（每个分类必须恰好 %d 项）: %v\n", config.SlidesPerCategory, err)
		} else {
			fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		}
		os.Exit(1)
	}

	w, h := app.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle(gameApp))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// windowTitle 使用序章标题作为窗口标题
func windowTitle(a *app.App) string {
	if title := a.Navigator().Content().Preface.Title; title != "" {
		return title
	}
	return "Happy Birthday"
}
