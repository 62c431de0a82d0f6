package game

import (
	"fmt"
	"testing"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/types"
)

// newTestContent 构造每个分类 n 项的内容
func newTestContent(n int) *config.ContentConfig {
	cfg := &config.ContentConfig{
		Recipient:  "Tester",
		Categories: make(map[string]config.CategoryContent),
	}
	for _, cat := range types.Categories() {
		items := make([]config.ContentItem, n)
		for i := range items {
			items[i] = config.ContentItem{
				Image:       fmt.Sprintf("assets/images/%s/%02d.jpg", cat.Key(), i+1),
				Description: fmt.Sprintf("%s #%d", cat.Key(), i),
			}
		}
		cfg.Categories[cat.Key()] = config.CategoryContent{
			Label: cat.String(),
			Intro: cat.Key() + " intro",
			Outro: cat.Key() + " outro",
			Items: items,
		}
	}
	return cfg
}

// newTestNavigator 创建使用合法内容的导航器
func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	nav, err := NewNavigator(newTestContent(config.SlidesPerCategory))
	if err != nil {
		t.Fatalf("NewNavigator() error: %v", err)
	}
	return nav
}

// journeyStart 返回 (Journey, Memories, -1) 状态
func journeyStart() State {
	s, _ := Transition(InitialState(), Event{Kind: EventBegin})
	return s
}

// advanceN 从 s 开始连续前进 n 次
func advanceN(s State, n int) State {
	for i := 0; i < n; i++ {
		s, _ = Transition(s, Event{Kind: EventAdvance})
	}
	return s
}

// stateToGame 前进到小游戏阶段
func stateToGame() State {
	return advanceN(journeyStart(), 3*(config.SlidesPerCategory+2))
}

// stateToEpilogue 通过点击爱心进入尾声
func stateToEpilogue() State {
	s := stateToGame()
	for s.Stage == types.StageGame {
		s, _ = Transition(s, Event{Kind: EventTapTarget, Target: s.Targets[0]})
	}
	return s
}

// countEffects 统计指定类型与原因的效果数量
func countEffects(effects []Effect, kind EffectKind, cause EffectCause) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind && e.Cause == cause {
			n++
		}
	}
	return n
}
