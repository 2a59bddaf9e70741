package task

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{-5, 1}, // clamped
	}
	for _, tc := range tests {
		if got := LevelFor(tc.xp); got != tc.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestAddXP(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	b := DefaultBrainState(at.Add(-time.Hour))

	b.AddXP(120, at)
	if b.XP != 120 {
		t.Errorf("xp = %d, want 120", b.XP)
	}
	if b.Level != 2 {
		t.Errorf("level = %d, want 2", b.Level)
	}
	if !b.LastUpdated.Equal(at) {
		t.Errorf("lastUpdated = %v, want %v", b.LastUpdated, at)
	}

	b.AddXP(300, at)
	if b.XP != 420 || b.Level != 3 {
		t.Errorf("after second credit: xp=%d level=%d", b.XP, b.Level)
	}
}

func TestCompletionXP(t *testing.T) {
	heavy := Task{CognitiveLoad: 10}
	light := Task{CognitiveLoad: 1}

	// base 10 + load*0.5, scaled by the reflection multiplier, floored.
	if got := CompletionXP(heavy, 1.0); got != 15 {
		t.Errorf("heavy x1.0 = %d, want 15", got)
	}
	if got := CompletionXP(heavy, 1.2); got != 18 {
		t.Errorf("heavy x1.2 = %d, want 18", got)
	}
	if got := CompletionXP(light, 0.8); got != 8 {
		t.Errorf("light x0.8 = %d, want 8", got)
	}
}

func TestDefaultBrainState(t *testing.T) {
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	b := DefaultBrainState(at)
	if b.Fatigue != 5 || b.Motivation != 5 || b.XP != 0 || b.Level != 1 {
		t.Errorf("unexpected defaults: %+v", b)
	}
}
