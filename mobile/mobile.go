//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.birthday24 -o build/android/birthday24.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Birthday24.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/birthday24/data"
	"github.com/decker502/birthday24/pkg/app"
	"github.com/decker502/birthday24/pkg/embedded"
)

func init() {
	// 移动端照片也打包进应用
	embedded.Init(assetsFS, data.FS)

	cfg := app.Config{
		Verbose:        true,
		ReducedEffects: true, // 移动端默认减少粒子
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("贺卡初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
