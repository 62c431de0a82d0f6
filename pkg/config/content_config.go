package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/birthday24/pkg/embedded"
	"github.com/decker502/birthday24/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidContent 内容文件不满足"每个分类恰好 24 项"的前置条件
var ErrInvalidContent = errors.New("invalid content")

// DefaultContentPath 默认内容文件路径（嵌入资源）
const DefaultContentPath = "data/content.yaml"

// ContentItem 单张内容幻灯片
// 加载后不再修改
type ContentItem struct {
	Image       string `yaml:"image"`       // 图片路径，如 "assets/images/memories/01.jpg"
	Description string `yaml:"description"` // 图片下方的文字
}

// CategoryContent 单个分类的全部文案与内容页
type CategoryContent struct {
	Label string        `yaml:"label"` // 内容页顶部的分类标签，如 "Fav Memories With You"
	Intro string        `yaml:"intro"` // 开场页大标题
	Outro string        `yaml:"outro"` // 结尾过渡页文字
	Items []ContentItem `yaml:"items"` // 有序的 24 项内容
}

// PrefaceContent 序章文案
type PrefaceContent struct {
	Title      string `yaml:"title"`
	Tagline    string `yaml:"tagline"`
	Cover      string `yaml:"cover"` // 封面图片路径（可选）
	BeginLabel string `yaml:"beginLabel"`
}

// GameContent 小游戏文案
type GameContent struct {
	Title string `yaml:"title"`
	Hint  string `yaml:"hint"`
}

// EpilogueContent 尾声信件文案
type EpilogueContent struct {
	Salutation  string   `yaml:"salutation"`
	Paragraphs  []string `yaml:"paragraphs"`
	Signature   string   `yaml:"signature"`
	TapsLeftFmt string   `yaml:"tapsLeftFormat"` // 如 "Tap %d more times"
	UnlockedMsg string   `yaml:"unlockedMessage"`
}

// SecretContent 秘密浮层文案
type SecretContent struct {
	Title        string `yaml:"title"`
	Tagline      string `yaml:"tagline"`
	DismissLabel string `yaml:"dismissLabel"`
}

// ContentConfig 内容文件的顶层结构（data/content.yaml）
type ContentConfig struct {
	Recipient  string                     `yaml:"recipient"`
	Preface    PrefaceContent             `yaml:"preface"`
	Categories map[string]CategoryContent `yaml:"categories"` // 键为 memories / reasons / future
	Game       GameContent                `yaml:"game"`
	Epilogue   EpilogueContent            `yaml:"epilogue"`
	Secret     SecretContent              `yaml:"secret"`
}

// Category 返回指定分类的内容
func (c *ContentConfig) Category(cat types.Category) CategoryContent {
	return c.Categories[cat.Key()]
}

// Items 返回指定分类的有序内容项
func (c *ContentConfig) Items(cat types.Category) []ContentItem {
	return c.Categories[cat.Key()].Items
}

// LoadContentConfig 加载内容文件
// 以 "data/" 开头且嵌入资源已初始化时优先读取嵌入资源，否则读取磁盘文件
//
// 返回：
//   - *ContentConfig: 解析并校验后的内容
//   - error: 读取、解析失败，或内容不满足前置条件（可用 errors.Is 判断 ErrInvalidContent）
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	cfg, err := ParseContentConfig(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseContentConfig 从 YAML 数据解析内容
func ParseContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}

	applyContentDefaults(&cfg)

	if err := ValidateContent(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateContent 检查每个分类恰好有 SlidesPerCategory 项
// 只检查数量，不检查文字和图片是否存在
func ValidateContent(cfg *ContentConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: no content", ErrInvalidContent)
	}
	for _, cat := range types.Categories() {
		n := len(cfg.Items(cat))
		if n != SlidesPerCategory {
			return fmt.Errorf("%w: category %s has %d items, want %d",
				ErrInvalidContent, cat.Key(), n, SlidesPerCategory)
		}
	}
	return nil
}

// applyContentDefaults 为缺失的文案填充默认值
func applyContentDefaults(cfg *ContentConfig) {
	if cfg.Recipient == "" {
		cfg.Recipient = "you"
	}
	if cfg.Preface.BeginLabel == "" {
		cfg.Preface.BeginLabel = "Begin the Story"
	}
	if cfg.Game.Title == "" {
		cfg.Game.Title = "Catch My Love!"
	}
	if cfg.Game.Hint == "" {
		cfg.Game.Hint = fmt.Sprintf("Tap %d hearts to unlock the final letter", GameTargetScore)
	}
	if cfg.Epilogue.TapsLeftFmt == "" || !strings.Contains(cfg.Epilogue.TapsLeftFmt, "%d") {
		cfg.Epilogue.TapsLeftFmt = "Tap %d more times"
	}
	if cfg.Epilogue.UnlockedMsg == "" {
		cfg.Epilogue.UnlockedMsg = "THE FINAL SECRET"
	}
	if cfg.Secret.DismissLabel == "" {
		cfg.Secret.DismissLabel = "Back to Us"
	}
	if cfg.Categories == nil {
		cfg.Categories = make(map[string]CategoryContent)
	}
}

// readConfigFile 读取配置文件
func readConfigFile(path string) ([]byte, error) {
	if embedded.IsInitialized() && strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") {
		if data, err := embedded.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return os.ReadFile(path)
}
