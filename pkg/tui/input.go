package tui

import (
	"github.com/decker502/birthday24/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// HandleEvent 处理一个终端事件
//
// 返回: true 表示用户要求退出
func (m *Model) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.screen.Sync()
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		m.handleKey(ev)
	case *tcell.EventMouse:
		// 只在左键按下的那一刻算一次点击，按住拖动不会重复触发
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && m.lastButtons&tcell.Button1 == 0 {
			x, y := ev.Position()
			m.handleClick(x, y)
		}
		m.lastButtons = ev.Buttons()
	}
	m.dispatchEffects()
	return false
}

func isQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}

func isAdvanceKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRight, tcell.KeyEnter:
		return true
	case tcell.KeyRune:
		return ev.Rune() == ' ' || ev.Rune() == 'l'
	}
	return false
}

func isRetreatKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'h'
	}
	return false
}

func (m *Model) handleKey(ev *tcell.EventKey) {
	st := m.nav.State()
	switch st.Stage {
	case types.StagePreface:
		if isAdvanceKey(ev) {
			m.nav.Begin()
		}

	case types.StageJourney:
		switch {
		case isAdvanceKey(ev):
			m.nav.Advance()
		case isRetreatKey(ev):
			m.nav.Retreat()
		}

	case types.StageGame:
		// 数字键 1..3 对应三个爱心槽位
		if ev.Key() == tcell.KeyRune && ev.Rune() >= '1' && ev.Rune() < '1'+rune(len(st.Targets)) {
			m.nav.TapTarget(st.Targets[ev.Rune()-'1'])
		}

	case types.StageEpilogue:
		if st.SecretRevealed {
			if ev.Key() == tcell.KeyEscape || isRetreatKey(ev) || ev.Key() == tcell.KeyEnter {
				m.nav.DismissSecret()
			}
			return
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'u')) {
			m.nav.TapUnlock()
		}
	}
}

// handleClick 鼠标点击使用上一帧记录的区域
func (m *Model) handleClick(x, y int) {
	st := m.nav.State()
	switch st.Stage {
	case types.StagePreface:
		m.nav.Begin()

	case types.StageJourney:
		w, _ := m.screen.Size()
		if x < w/3 {
			m.nav.Retreat()
		} else {
			m.nav.Advance()
		}

	case types.StageGame:
		for i, b := range m.targetBoxes {
			if b.contains(x, y) {
				m.nav.TapTarget(st.Targets[i])
				return
			}
		}

	case types.StageEpilogue:
		if st.SecretRevealed {
			if m.dismissBox.contains(x, y) {
				m.nav.DismissSecret()
			}
			return
		}
		if m.unlockBox.contains(x, y) {
			m.nav.TapUnlock()
		}
	}
}
