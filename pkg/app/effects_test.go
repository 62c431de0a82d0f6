package app

import (
	"testing"

	"github.com/decker502/birthday24/pkg/game"
)

type mockConfetti struct {
	bursts int
	panics bool
}

func (m *mockConfetti) Burst() int {
	if m.panics {
		panic("renderer gone")
	}
	m.bursts++
	return 1
}

type mockPlayer struct {
	played []string
}

func (m *mockPlayer) Play(id string) bool {
	m.played = append(m.played, id)
	return true
}

func TestDispatchRoutesEffects(t *testing.T) {
	confetti := &mockConfetti{}
	player := &mockPlayer{}
	d := NewEffectDispatcher(confetti, player)

	played := d.Dispatch([]game.Effect{
		{Kind: game.EffectConfetti, Cause: game.CauseJourneyStart},
		{Kind: game.EffectChime, Cause: game.CauseTargetTapped},
		{Kind: game.EffectChime, Cause: game.CauseUnlockTap},
	})

	if played != 3 {
		t.Errorf("played = %d, want 3", played)
	}
	if confetti.bursts != 1 {
		t.Errorf("bursts = %d, want 1", confetti.bursts)
	}
	want := []string{game.SoundFanfare, game.SoundChime, game.SoundTick}
	if len(player.played) != len(want) {
		t.Fatalf("played sounds = %v, want %v", player.played, want)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("sound[%d] = %s, want %s", i, player.played[i], want[i])
		}
	}
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	confetti := &mockConfetti{panics: true}
	player := &mockPlayer{}
	d := NewEffectDispatcher(confetti, player)

	played := d.Dispatch([]game.Effect{
		{Kind: game.EffectConfetti, Cause: game.CauseGameWon},
		{Kind: game.EffectChime, Cause: game.CauseTargetTapped},
	})

	if played != 1 {
		t.Errorf("played = %d, want 1", played)
	}
	if d.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", d.Failures())
	}
	// 失败的彩纸不影响后面的音效
	if len(player.played) != 1 || player.played[0] != game.SoundChime {
		t.Errorf("played sounds = %v, want [chime]", player.played)
	}
}

func TestDispatchWithoutAudio(t *testing.T) {
	confetti := &mockConfetti{}
	d := NewEffectDispatcher(confetti, nil)

	if played := d.Dispatch([]game.Effect{{Kind: game.EffectConfetti, Cause: game.CauseSecretRevealed}}); played != 1 {
		t.Errorf("played = %d, want 1", played)
	}
	if confetti.bursts != 1 {
		t.Errorf("bursts = %d, want 1", confetti.bursts)
	}
}
