package engine

import (
	"testing"

	"github.com/prioria/prioria/internal/task"
)

func TestLoad_AlwaysInRange(t *testing.T) {
	difficulties := []task.Difficulty{task.DifficultyLow, task.DifficultyMedium, task.DifficultyHigh}
	durations := []int{1, 10, 15, 30, 60, 61, 240}

	for _, typ := range task.Types {
		for _, d := range difficulties {
			for _, min := range durations {
				got := Load(typ, d, min)
				if got < 1 || got > 10 {
					t.Errorf("Load(%s, %s, %d) = %d, out of [1,10]", typ, d, min, got)
				}
			}
		}
	}
}

func TestLoad_Values(t *testing.T) {
	tests := []struct {
		typ        task.Type
		difficulty task.Difficulty
		minutes    int
		want       int
	}{
		{task.TypeLogic, task.DifficultyHigh, 90, 10},  // 9+2+1 clamped to 10
		{task.TypeRoutine, task.DifficultyLow, 10, 1},  // 3-2-1 clamped to 1
		{task.TypeMemorization, task.DifficultyMedium, 30, 6},
		{task.TypeComprehension, task.DifficultyHigh, 10, 8},
		{task.TypeCreation, task.DifficultyLow, 90, 7},
		{task.TypeRoutine, task.DifficultyMedium, 30, 3},
		{task.TypeLogic, task.DifficultyLow, 30, 7},
	}

	for _, tc := range tests {
		got := Load(tc.typ, tc.difficulty, tc.minutes)
		if got != tc.want {
			t.Errorf("Load(%s, %s, %d) = %d, want %d", tc.typ, tc.difficulty, tc.minutes, got, tc.want)
		}
	}
}

func TestLoad_UnknownTypeGetsNeutralBase(t *testing.T) {
	got := Load(task.Type("Juggling"), task.DifficultyMedium, 30)
	if got != 5 {
		t.Errorf("unknown type: got %d, want 5", got)
	}
}

func TestLoad_BoundaryDurations(t *testing.T) {
	// 15 and 60 are inside the neutral band; 14 and 61 are not.
	base := Load(task.TypeMemorization, task.DifficultyMedium, 30)

	if got := Load(task.TypeMemorization, task.DifficultyMedium, 15); got != base {
		t.Errorf("15 min: got %d, want %d", got, base)
	}
	if got := Load(task.TypeMemorization, task.DifficultyMedium, 60); got != base {
		t.Errorf("60 min: got %d, want %d", got, base)
	}
	if got := Load(task.TypeMemorization, task.DifficultyMedium, 14); got != base-1 {
		t.Errorf("14 min: got %d, want %d", got, base-1)
	}
	if got := Load(task.TypeMemorization, task.DifficultyMedium, 61); got != base+1 {
		t.Errorf("61 min: got %d, want %d", got, base+1)
	}
}
