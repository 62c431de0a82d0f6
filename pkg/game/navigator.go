package game

import (
	"fmt"
	"log"

	"github.com/decker502/birthday24/pkg/config"
	"github.com/decker502/birthday24/pkg/types"
)

// Navigator 控制整个体验的唯一状态持有者
//
// 职责：
//   - 持有当前 State，所有修改都经过 Transition
//   - 持有已校验的内容（每个分类 24 项）
//   - 缓存随转换产生的效果请求，由渲染层通过 DrainEffects 取走
//
// 单线程使用：所有方法都应在游戏主循环中调用
type Navigator struct {
	state   State
	content *config.ContentConfig
	pending []Effect
}

// NewNavigator 创建导航器
//
// 参数：
//   - content: 内容数据，必须满足每个分类恰好 24 项
//
// 返回：
//   - error: 内容不满足前置条件时返回包装了 config.ErrInvalidContent 的错误
func NewNavigator(content *config.ContentConfig) (*Navigator, error) {
	if err := config.ValidateContent(content); err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	return &Navigator{
		state:   InitialState(),
		content: content,
	}, nil
}

// State 返回当前状态（值拷贝）
func (n *Navigator) State() State {
	return n.state
}

// Content 返回导航器使用的内容数据
func (n *Navigator) Content() *config.ContentConfig {
	return n.content
}

// Dispatch 应用一个事件并返回新状态
func (n *Navigator) Dispatch(ev Event) State {
	prev := n.state
	next, effects := Transition(prev, ev)
	n.state = next
	n.pending = append(n.pending, effects...)

	if prev.Stage != next.Stage {
		log.Printf("[Navigator] 阶段切换: %s -> %s (事件: %s)", prev.Stage, next.Stage, ev.Kind)
	} else if prev.Category != next.Category {
		log.Printf("[Navigator] 分类切换: %s -> %s", prev.Category, next.Category)
	}
	return next
}

// Begin 从序章进入旅程
func (n *Navigator) Begin() State {
	return n.Dispatch(Event{Kind: EventBegin})
}

// Advance 下一页
func (n *Navigator) Advance() State {
	return n.Dispatch(Event{Kind: EventAdvance})
}

// Retreat 上一页
func (n *Navigator) Retreat() State {
	return n.Dispatch(Event{Kind: EventRetreat})
}

// TapTarget 点击一颗爱心
// 同一个ID只会计分一次
func (n *Navigator) TapTarget(id TargetID) State {
	return n.Dispatch(Event{Kind: EventTapTarget, Target: id})
}

// TapUnlock 点击尾声的爱心按钮
func (n *Navigator) TapUnlock() State {
	return n.Dispatch(Event{Kind: EventTapUnlock})
}

// DismissSecret 关闭秘密浮层
func (n *Navigator) DismissSecret() State {
	return n.Dispatch(Event{Kind: EventDismissSecret})
}

// DrainEffects 取走所有待处理的效果请求
func (n *Navigator) DrainEffects() []Effect {
	if len(n.pending) == 0 {
		return nil
	}
	out := n.pending
	n.pending = nil
	return out
}

// CurrentCategory 返回当前分类的内容与文案
func (n *Navigator) CurrentCategory() config.CategoryContent {
	return n.content.Category(n.state.Category)
}

// CurrentItem 返回当前内容页对应的内容项
// 非内容页返回 false
func (n *Navigator) CurrentItem() (config.ContentItem, bool) {
	if !n.state.IsContentSlide() {
		return config.ContentItem{}, false
	}
	items := n.content.Items(n.state.Category)
	return items[n.state.SlideIndex], true
}

// Stage 返回当前阶段
func (n *Navigator) Stage() types.Stage {
	return n.state.Stage
}
