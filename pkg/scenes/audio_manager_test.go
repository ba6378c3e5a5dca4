package scenes

import (
	"testing"

	"github.com/decker502/conga/pkg/game"
)

func TestSoundBankComplete(t *testing.T) {
	am := NewAudioManager(nil, nil)
	for _, id := range game.AllSounds() {
		if len(am.pcm[id]) == 0 {
			t.Errorf("sound %s was not synthesized", id)
		}
	}
}

func TestPlaySoundWithoutContext(t *testing.T) {
	sm := game.NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.PlaySound(game.SoundCapture) {
		t.Error("PlaySound without audio context should report false")
	}
	if am.PlaySound("missing") {
		t.Error("unknown sound should report false")
	}

	am.SetSoundVolume(0.25)
	if got := am.GetSoundVolume(); got != 0.25 {
		t.Errorf("volume: got %v, want 0.25", got)
	}

	// 监听器在无音频环境下也不会出错
	l := am.Listener()
	l.OnCaptureAcquired(1)
	l.OnHazardStruck(3)
	l.OnConvoyScattered(nil)
	l.OnGameWon()
	l.OnGameLost()
}
