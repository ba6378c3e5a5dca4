package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不做任何事
	sm.Update(0.016)
	sm.Draw(nil)

	mock := &MockScene{}
	sm.SwitchTo(mock)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mock.updateCalled || mock.deltaTime != 0.016 {
		t.Errorf("Update: called=%v deltaTime=%v", mock.updateCalled, mock.deltaTime)
	}
	if !mock.drawCalled {
		t.Error("Draw was not forwarded to the current scene")
	}
	if sm.GetCurrentScene() != mock {
		t.Error("GetCurrentScene should return the active scene")
	}
}

func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	if sm.Load(SceneGame) {
		t.Error("Load without a factory should fail")
	}

	created := map[string]*MockScene{}
	sm.SetSceneFactory(func(id string) Scene {
		if id != SceneGame && id != SceneResult {
			return nil
		}
		s := &MockScene{}
		created[id] = s
		return s
	})

	tests := []struct {
		id   string
		want bool
	}{
		{SceneGame, true},
		{"unknown", false},
		{SceneResult, true},
	}
	for _, tt := range tests {
		if got := sm.Load(tt.id); got != tt.want {
			t.Errorf("Load(%q): got %v, want %v", tt.id, got, tt.want)
		}
	}

	if sm.CurrentID() != SceneResult || sm.GetCurrentScene() != created[SceneResult] {
		t.Errorf("current scene: got %q", sm.CurrentID())
	}
}
