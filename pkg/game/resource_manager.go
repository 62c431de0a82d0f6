package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/decker502/birthday24/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontKey 内置字体的缓存键
const DefaultFontKey = "builtin:goregular"

// placeholderSize 占位图边长
const placeholderSize = 64

// ResourceManager is responsible for centralized management of card resources.
// It loads and caches images, fonts and synthesized sound players so each
// resource is decoded only once.
//
// Images are read through the embedded package: "assets/..." paths resolve to
// the on-disk asset directory registered in embedded.Init. Missing or broken
// photos are not fatal; ImageOrPlaceholder returns a tinted placeholder so the
// slideshow keeps going.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All calls happen on the ebiten game loop.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	soundCache    map[string]*audio.Player
	audioContext  *audio.Context // 可为 nil（无音频设备时）
	fontSources   map[string]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
	placeholder   *ebiten.Image
}

// NewResourceManager creates a ResourceManager.
// audioContext may be nil, in which case sound registration is skipped.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		soundCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image and caches it.
//
// Returns an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, ok := rm.imageCache[path]; ok {
		return cached, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// ImageOrPlaceholder 加载图片，失败时返回占位图
// 失败的路径也会缓存占位图，避免每帧重复读取磁盘
func (rm *ResourceManager) ImageOrPlaceholder(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img
	}
	log.Printf("[ResourceManager] Warning: %v (using placeholder)", err)
	ph := rm.Placeholder()
	rm.imageCache[path] = ph
	return ph
}

// GetImage returns a cached image or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// Placeholder 返回淡粉色占位图
func (rm *ResourceManager) Placeholder() *ebiten.Image {
	if rm.placeholder == nil {
		rm.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		rm.placeholder.Fill(color.RGBA{R: 0xfc, G: 0xe7, B: 0xf3, A: 0xff})
	}
	return rm.placeholder
}

// RegisterSound 用已合成的 PCM 数据创建播放器
//
// 参数：
//   - id: 音效ID（如 "chime"）
//   - pcm: 16 位小端立体声 PCM，采样率与 audioContext 一致
func (rm *ResourceManager) RegisterSound(id string, pcm []byte) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound %s", id)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("empty pcm for sound %s", id)
	}
	player := rm.audioContext.NewPlayerFromBytes(pcm)
	rm.soundCache[id] = player
	return player, nil
}

// GetSound returns a registered sound player or nil.
func (rm *ResourceManager) GetSound(id string) *audio.Player {
	return rm.soundCache[id]
}

// LoadFont loads a TTF/OTF font at the given size.
// path may be DefaultFontKey to use the built-in Go Regular face.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cached, ok := rm.fontFaceCache[cacheKey]; ok {
		return cached, nil
	}

	source, ok := rm.fontSources[path]
	if !ok {
		data := goregular.TTF
		if path != DefaultFontKey {
			var err error
			data, err = embedded.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// FontOrDefault 加载字体，失败时退回内置字体
// 内置字体总能解析，因此返回值永不为 nil
func (rm *ResourceManager) FontOrDefault(path string, size float64) *text.GoTextFace {
	if path != "" && path != DefaultFontKey {
		face, err := rm.LoadFont(path, size)
		if err == nil {
			return face
		}
		log.Printf("[ResourceManager] Warning: %v (using built-in font)", err)
	}
	face, err := rm.LoadFont(DefaultFontKey, size)
	if err != nil {
		panic(fmt.Sprintf("built-in font unusable: %v", err))
	}
	return face
}
