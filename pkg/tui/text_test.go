package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapUsesDisplayWidth(t *testing.T) {
	lines := wrap("你好世界", 4)
	if len(lines) != 2 || lines[0] != "你好" || lines[1] != "世界" {
		t.Errorf("wrap() = %q, want [你好 世界]", lines)
	}

	for _, line := range wrap("the first time you laughed at my terrible joke", 12) {
		if w := runewidth.StringWidth(line); w > 12 {
			t.Errorf("line %q width %d > 12", line, w)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
		want     string
	}{
		{0, 4, "░░░░"},
		{0.5, 4, "██░░"},
		{1, 4, "████"},
		{2, 2, "██"},
		{0.5, 0, ""},
	}
	for _, tt := range tests {
		if got := progressBar(tt.progress, tt.width); got != tt.want {
			t.Errorf("progressBar(%v, %d) = %q, want %q", tt.progress, tt.width, got, tt.want)
		}
	}
}

func TestSpeakerSoundsKnowsGameSounds(t *testing.T) {
	s := newSpeakerSounds(48000)
	for _, id := range []string{"chime", "tick", "fanfare"} {
		if !s.Has(id) {
			t.Errorf("Has(%q) = false", id)
		}
	}
	if s.Play("missing") {
		t.Error("Play() of an unknown sound should fail")
	}
}
