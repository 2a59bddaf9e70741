package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
)

var testNow = time.Date(2026, 3, 10, 9, 2, 0, 0, time.UTC)

// pendingTask builds a minimal pending task for scoring tests.
func pendingTask(id string, importance, load, minutes int) task.Task {
	return task.Task{
		ID:               id,
		Title:            "Task " + id,
		EstimatedMinutes: minutes,
		Type:             task.TypeComprehension,
		Difficulty:       task.DifficultyMedium,
		Importance:       importance,
		CognitiveLoad:    load,
		Status:           task.StatusPending,
		CreatedAt:        testNow,
	}
}

func neutralState() task.BrainState {
	return task.BrainState{Fatigue: 5, Motivation: 5, LastUpdated: testNow, Level: 1}
}

func TestRecommend_EmptyInput(t *testing.T) {
	if got := Recommend(nil, neutralState(), i18n.EN, testNow); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
	if got := Recommend([]task.Task{}, neutralState(), i18n.EN, testNow); got != nil {
		t.Errorf("expected nil for empty slice, got %+v", got)
	}
}

func TestRecommend_OverdueBeatsImportance(t *testing.T) {
	overdue := testNow.Add(-2 * time.Hour)

	a := pendingTask("a", 3, 5, 30)
	a.Deadline = &overdue
	b := pendingTask("b", 5, 5, 30)

	rec := Recommend([]task.Task{b, a}, neutralState(), i18n.EN, testNow)
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	// Overdue bonus (+100) dominates max importance (+25).
	if rec.TaskID != "a" {
		t.Errorf("expected overdue task a, got %s", rec.TaskID)
	}
}

func TestRecommend_DeadlineBands(t *testing.T) {
	in12h := testNow.Add(12 * time.Hour)
	in48h := testNow.Add(48 * time.Hour)
	in200h := testNow.Add(200 * time.Hour)

	soon := pendingTask("soon", 1, 5, 30)
	soon.Deadline = &in12h
	midweek := pendingTask("midweek", 1, 5, 30)
	midweek.Deadline = &in48h
	far := pendingTask("far", 1, 5, 30)
	far.Deadline = &in200h

	rec := Recommend([]task.Task{far, midweek, soon}, neutralState(), i18n.EN, testNow)
	if rec.TaskID != "soon" {
		t.Errorf("expected task due within 24h to win, got %s", rec.TaskID)
	}

	rec = Recommend([]task.Task{far, midweek}, neutralState(), i18n.EN, testNow)
	if rec.TaskID != "midweek" {
		t.Errorf("expected task due within 72h to win, got %s", rec.TaskID)
	}
}

func TestRecommend_HighFatiguePenalizesHighLoad(t *testing.T) {
	tired := neutralState()
	tired.Fatigue = 9

	heavy := pendingTask("heavy", 3, 8, 30)
	light := pendingTask("light", 3, 4, 30)

	rec := Recommend([]task.Task{heavy, light}, tired, i18n.EN, testNow)
	// heavy: -20, light: +10 under high fatigue.
	if rec.TaskID != "light" {
		t.Errorf("expected low-load task under high fatigue, got %s", rec.TaskID)
	}
}

func TestRecommend_FreshBoostsHighLoad(t *testing.T) {
	fresh := neutralState()
	fresh.Fatigue = 2

	heavy := pendingTask("heavy", 3, 8, 30)
	light := pendingTask("light", 3, 4, 30)

	rec := Recommend([]task.Task{light, heavy}, fresh, i18n.EN, testNow)
	if rec.TaskID != "heavy" {
		t.Errorf("expected high-load task when fresh, got %s", rec.TaskID)
	}
}

func TestRecommend_LowMotivationFavorsQuickWins(t *testing.T) {
	unmotivated := neutralState()
	unmotivated.Motivation = 2

	quick := pendingTask("quick", 3, 5, 15)
	long := pendingTask("long", 3, 5, 90)

	rec := Recommend([]task.Task{long, quick}, unmotivated, i18n.EN, testNow)
	if rec.TaskID != "quick" {
		t.Errorf("expected short task under low motivation, got %s", rec.TaskID)
	}
}

func TestRecommend_FirstEqualScoreWins(t *testing.T) {
	a := pendingTask("a", 3, 5, 30)
	b := pendingTask("b", 3, 5, 30)

	rec := Recommend([]task.Task{a, b}, neutralState(), i18n.EN, testNow)
	if rec.TaskID != "a" {
		t.Errorf("tie should keep the first task, got %s", rec.TaskID)
	}
}

func TestRecommend_Reasoning(t *testing.T) {
	in2h := testNow.Add(2 * time.Hour)

	tests := []struct {
		name  string
		tasks []task.Task
		state task.BrainState
		want  string
	}{
		{
			name: "urgent deadline",
			tasks: func() []task.Task {
				tk := pendingTask("u", 2, 5, 30)
				tk.Deadline = &in2h
				return []task.Task{tk}
			}(),
			state: neutralState(),
			want:  i18n.T(i18n.EN).ReasonUrgent,
		},
		{
			name:  "tired and low load",
			tasks: []task.Task{pendingTask("t", 2, 3, 30)},
			state: task.BrainState{Fatigue: 9, Motivation: 5},
			want:  i18n.T(i18n.EN).ReasonTired,
		},
		{
			name:  "high importance",
			tasks: []task.Task{pendingTask("i", 4, 5, 30)},
			state: neutralState(),
			want:  i18n.T(i18n.EN).ReasonImportant,
		},
		{
			name:  "balanced fallback",
			tasks: []task.Task{pendingTask("b", 2, 5, 30)},
			state: neutralState(),
			want:  i18n.T(i18n.EN).ReasonBalanced,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(tc.tasks, tc.state, i18n.EN, testNow)
			if rec == nil {
				t.Fatal("expected a recommendation")
			}
			if rec.Reasoning != tc.want {
				t.Errorf("reasoning = %q, want %q", rec.Reasoning, tc.want)
			}
		})
	}
}

func TestRecommend_ReasoningJapanese(t *testing.T) {
	rec := Recommend([]task.Task{pendingTask("b", 2, 5, 30)}, neutralState(), i18n.JA, testNow)
	if rec.Reasoning != i18n.T(i18n.JA).ReasonBalanced {
		t.Errorf("expected Japanese balanced reasoning, got %q", rec.Reasoning)
	}
	if !strings.Contains(rec.SuggestedAction, "30") {
		t.Errorf("suggested action missing minute count: %q", rec.SuggestedAction)
	}
}

func TestRecommend_SuggestedAction(t *testing.T) {
	rec := Recommend([]task.Task{pendingTask("a", 3, 5, 45)}, neutralState(), i18n.EN, testNow)
	if rec.SuggestedAction != "Focus for 45 minutes." {
		t.Errorf("suggested action = %q", rec.SuggestedAction)
	}
	if rec.VoiceModeAvailable {
		t.Error("voice mode flag should always be false")
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	tasks := []task.Task{
		pendingTask("a", 3, 5, 30),
		pendingTask("b", 5, 8, 60),
		pendingTask("c", 1, 2, 10),
	}
	state := neutralState()

	first := Recommend(tasks, state, i18n.EN, testNow)
	second := Recommend(tasks, state, i18n.EN, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}
