// birthday24-tui 在终端里打开生日贺卡
//
// 使用方法:
//
//	birthday24-tui [-content data/content.yaml] [-mute] [-debug]
//
// 方向键或 Enter 翻页，小游戏用数字键 1-3，尾声用空格点击爱心，q 退出。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/birthday24/data"
	"github.com/decker502/birthday24/pkg/app"
	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/embedded"
	"github.com/decker502/birthday24/pkg/game"
	"github.com/decker502/birthday24/pkg/tui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	envCfg, err := config.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "环境变量错误: %v\n", err)
		os.Exit(1)
	}

	contentPath := flag.String("content", envCfg.ContentPath, "内容文件路径")
	debug := flag.Bool("debug", envCfg.Verbose, "把日志写入 logs/ 目录")
	mute := flag.Bool("mute", envCfg.Muted, "关闭声音")
	seed := flag.Int64("seed", envCfg.Seed, "随机种子，0 表示使用当前时间")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}
	initResources()

	if err := run(*contentPath, *mute, *seed); err != nil {
		if errors.Is(err, config.ErrInvalidContent) {
			fmt.Fprintf(os.Stderr, "内容文件不合法（每个分类需要恰好 %d 项）: %v\n", config.SlidesPerCategory, err)
		} else {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}

// initResources 注册内置内容文件，程序可以在任意目录运行
// 终端界面不显示照片，不需要素材文件系统
func initResources() {
	embedded.Init(nil, data.FS)
}

// loadNavigator 加载内容并创建导航器
func loadNavigator(contentPath string) (*game.Navigator, error) {
	content, err := config.LoadContentConfig(contentPath)
	if err != nil {
		return nil, fmt.Errorf("内容加载失败: %w", err)
	}
	return game.NewNavigator(content)
}

func run(contentPath string, mute bool, seed int64) (err error) {
	nav, err := loadNavigator(contentPath)
	if err != nil {
		return err
	}

	var sounds app.SoundPlayer
	if !mute {
		s, err := tui.NewSpeakerSounds()
		if err != nil {
			log.Printf("[TUI] Warning: 音频不可用，静音运行: %v", err)
		} else {
			defer s.Close()
			sounds = s
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// panic 时先恢复终端再报告
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			err = fmt.Errorf("panic: %v", r)
			log.Printf("[TUI] %v", err)
			return
		}
		screen.Fini()
	}()
	// 只要按键事件，拖动和移动不产生点击
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.SetStyle(tcell.StyleDefault)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := tui.New(screen, nav, sounds, rand.New(rand.NewSource(seed)))
	if err := model.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
