package game

import (
	"testing"

	"github.com/decker502/birthday24/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	entered      int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() {
	m.entered++
}

// TestSceneManagerUpdateAndDraw verifies Update/Draw are forwarded to the current scene.
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%v", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Draw not forwarded")
	}
	if mockScene.entered != 1 {
		t.Errorf("OnEnter calls: got %d, want 1", mockScene.entered)
	}
}

// TestSceneManagerNoScene verifies nil scene is handled gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))
	if sm.GetCurrentScene() != nil {
		t.Error("expected no current scene")
	}
}

// TestSceneManagerSyncStage 场景跟随阶段切换并复用
func TestSceneManagerSyncStage(t *testing.T) {
	sm := NewSceneManager()
	created := make(map[types.Stage]int)
	scenes := make(map[types.Stage]*MockScene)
	sm.SetSceneFactory(func(stage types.Stage) Scene {
		created[stage]++
		s := &MockScene{}
		scenes[stage] = s
		return s
	})

	if !sm.SyncStage(types.StagePreface) {
		t.Fatal("first sync should switch")
	}
	if sm.SyncStage(types.StagePreface) {
		t.Error("same stage should not switch again")
	}

	sm.SyncStage(types.StageJourney)
	sm.SyncStage(types.StagePreface)
	sm.SyncStage(types.StageJourney)

	if created[types.StagePreface] != 1 || created[types.StageJourney] != 1 {
		t.Errorf("scenes should be created once per stage, got %v", created)
	}
	if sm.GetCurrentScene() != scenes[types.StageJourney] {
		t.Error("current scene should be the journey scene")
	}
	if scenes[types.StageJourney].entered != 2 {
		t.Errorf("journey OnEnter: got %d, want 2", scenes[types.StageJourney].entered)
	}
}

// TestSceneManagerSyncWithoutFactory 未设置工厂时不切换
func TestSceneManagerSyncWithoutFactory(t *testing.T) {
	sm := NewSceneManager()
	if sm.SyncStage(types.StageGame) {
		t.Error("sync without factory should not switch")
	}
}

// TestSceneManagerFactoryReturnsNil 工厂返回 nil 时保持原场景并在下次重试
func TestSceneManagerFactoryReturnsNil(t *testing.T) {
	sm := NewSceneManager()
	preface := &MockScene{}
	calls := 0
	sm.SetSceneFactory(func(stage types.Stage) Scene {
		calls++
		if stage == types.StagePreface {
			return preface
		}
		return nil
	})

	sm.SyncStage(types.StagePreface)
	if sm.SyncStage(types.StageGame) {
		t.Error("nil scene should not switch")
	}
	if sm.GetCurrentScene() != preface {
		t.Error("current scene should remain the preface")
	}
	sm.SyncStage(types.StageGame)
	if calls != 3 {
		t.Errorf("factory should be retried, calls=%d", calls)
	}
}
