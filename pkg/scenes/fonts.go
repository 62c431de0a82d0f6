package scenes

import (
	"github.com/decker502/birthday24/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 字号
const (
	fontSizeTitle    = 44.0
	fontSizeHeadline = 34.0
	fontSizeBody     = 24.0
	fontSizeLabel    = 18.0
	fontSizeButton   = 20.0
)

// Fonts 场景使用的全部字体
type Fonts struct {
	Title    *text.GoTextFace
	Headline *text.GoTextFace
	Body     *text.GoTextFace
	Label    *text.GoTextFace
	Button   *text.GoTextFace
}

// LoadFonts 从 path 加载各个字号的字体
// path 为空或加载失败时使用内置字体
func LoadFonts(rm *game.ResourceManager, path string) *Fonts {
	return &Fonts{
		Title:    rm.FontOrDefault(path, fontSizeTitle),
		Headline: rm.FontOrDefault(path, fontSizeHeadline),
		Body:     rm.FontOrDefault(path, fontSizeBody),
		Label:    rm.FontOrDefault(path, fontSizeLabel),
		Button:   rm.FontOrDefault(path, fontSizeButton),
	}
}
