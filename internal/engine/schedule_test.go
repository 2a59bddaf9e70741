package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
)

func TestParseAvailability(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  int
	}{
		{"", 120}, // default
		{"whenever", 120},
		{"2h", 120},
		{"3 hours", 180},
		{"1 hour", 60},
		{"45 min", 45},
		{"90m", 90},
		// Both patterns present: the minute match overwrites the hour match.
		{"1 hour 30 min", 30},
		{"until 17:00", 120},
		{"until 5pm", 120},
		{"by 16:30", 90},
		{"until 5:45pm", 165},
		// Target already passed: earlier value stands.
		{"by 9am", 120},
		{"until 2pm", 120},
	}

	for _, tc := range tests {
		got := parseAvailability(tc.input, now)
		if got != tc.want {
			t.Errorf("parseAvailability(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseAvailability_MidnightAM(t *testing.T) {
	// "12am" maps to hour 0, which is always in the past during the day,
	// so the default survives.
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	if got := parseAvailability("until 12am", now); got != 120 {
		t.Errorf("got %d, want 120", got)
	}
}

func TestBuildSchedule_SingleTaskWithBuffer(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 2, 0, 0, time.UTC)
	tired := task.BrainState{Fatigue: 8, Motivation: 5}

	tk := pendingTask("a", 3, 5, 30)

	items := BuildSchedule([]task.Task{tk}, tired, "1h", i18n.EN, now)
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(items), items)
	}

	if items[0].Kind != ItemTask || items[0].Duration != 30 {
		t.Errorf("first entry = %+v, want 30-minute task", items[0])
	}
	if items[0].Time != "10:05" {
		t.Errorf("start should round up to next 5-minute mark, got %s", items[0].Time)
	}
	if items[0].Note != "" {
		t.Errorf("full allocation should carry no note, got %q", items[0].Note)
	}

	if items[1].Kind != ItemBuffer || items[1].Duration != 30 {
		t.Errorf("second entry = %+v, want 30-minute buffer", items[1])
	}
	if items[1].Time != "10:35" {
		t.Errorf("buffer start = %s, want 10:35", items[1].Time)
	}
}

func TestBuildSchedule_DefaultBudgetFullyAllocated(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5}

	tasks := []task.Task{
		pendingTask("a", 5, 5, 60),
		pendingTask("b", 4, 5, 60),
		pendingTask("c", 3, 5, 60),
	}

	items := BuildSchedule(tasks, state, "", i18n.EN, now)

	total := 0
	for _, it := range items {
		if it.Duration <= 0 {
			t.Errorf("entry %+v has non-positive duration", it)
		}
		total += it.Duration
	}
	if total != 120 {
		t.Errorf("total scheduled minutes = %d, want 120", total)
	}
}

func TestBuildSchedule_BreakAfterWorkBlock(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5} // 60-min blocks, 10-min breaks

	tasks := []task.Task{
		pendingTask("a", 5, 5, 60),
		pendingTask("b", 4, 5, 40),
	}

	items := BuildSchedule(tasks, state, "2h", i18n.EN, now)
	if len(items) < 3 {
		t.Fatalf("expected task, break, task..., got %+v", items)
	}

	if items[0].Kind != ItemTask || items[0].Duration != 60 {
		t.Errorf("first entry = %+v", items[0])
	}
	if items[1].Kind != ItemBreak || items[1].Duration != 10 {
		t.Errorf("expected 10-minute break after full block, got %+v", items[1])
	}
	if items[1].Activity != "Break" {
		t.Errorf("break label = %q", items[1].Activity)
	}
	if items[2].Kind != ItemTask || items[2].TaskID != "b" {
		t.Errorf("third entry = %+v", items[2])
	}
}

func TestBuildSchedule_FatiguedBlocks(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	tired := task.BrainState{Fatigue: 7, Motivation: 5} // fatigue >= 7: 45/15

	tasks := []task.Task{
		pendingTask("a", 5, 5, 90),
		pendingTask("b", 4, 5, 30),
	}

	items := BuildSchedule(tasks, tired, "2h", i18n.EN, now)

	// The 90-minute task is capped at the 45-minute work block, then a
	// 15-minute break follows.
	if items[0].Duration != 45 {
		t.Errorf("first allocation = %d, want 45", items[0].Duration)
	}
	if items[0].Note != "(Partial)" {
		t.Errorf("capped task should be annotated, got %q", items[0].Note)
	}
	if items[1].Kind != ItemBreak || items[1].Duration != 15 {
		t.Errorf("expected 15-minute break, got %+v", items[1])
	}
}

func TestBuildSchedule_PartialNoteJapanese(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5}

	items := BuildSchedule([]task.Task{pendingTask("a", 3, 5, 90)}, state, "30m", i18n.JA, now)
	if len(items) == 0 {
		t.Fatal("expected at least one entry")
	}
	if items[0].Note != "(一部実施)" {
		t.Errorf("partial note = %q", items[0].Note)
	}
}

func TestBuildSchedule_SkipsNonPending(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5}

	done := pendingTask("done", 5, 5, 30)
	done.Status = task.StatusCompleted
	open := pendingTask("open", 3, 5, 30)

	items := BuildSchedule([]task.Task{done, open}, state, "1h", i18n.EN, now)
	for _, it := range items {
		if it.TaskID == "done" {
			t.Errorf("completed task leaked into the plan: %+v", it)
		}
	}
}

func TestBuildSchedule_EmptyTasks(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5}

	items := BuildSchedule(nil, state, "2h", i18n.EN, now)
	// No tasks means no work entries; the whole budget falls into the buffer.
	if len(items) != 1 || items[0].Kind != ItemBuffer || items[0].Duration != 120 {
		t.Errorf("expected single 120-minute buffer, got %+v", items)
	}
}

func TestBuildSchedule_PriorityOrder(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 5, Motivation: 5}
	deadline := now.Add(200 * time.Hour)

	// Same importance, but a present deadline adds a flat +20 regardless of
	// how far away it is.
	withDeadline := pendingTask("dl", 3, 5, 20)
	withDeadline.Deadline = &deadline
	without := pendingTask("free", 3, 5, 20)

	items := BuildSchedule([]task.Task{without, withDeadline}, state, "1h", i18n.EN, now)
	if len(items) < 2 {
		t.Fatalf("expected two task entries, got %+v", items)
	}
	if items[0].TaskID != "dl" {
		t.Errorf("deadline-bearing task should come first, got %s", items[0].TaskID)
	}
}

func TestBuildSchedule_InputNotMutated(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 8, Motivation: 2}

	original := pendingTask("a", 3, 8, 90)
	tasks := []task.Task{original}

	BuildSchedule(tasks, state, "1h", i18n.EN, now)
	if !reflect.DeepEqual(tasks[0], original) {
		t.Errorf("input task mutated: %+v", tasks[0])
	}
}

func TestBuildSchedule_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	state := task.BrainState{Fatigue: 6, Motivation: 4}

	tasks := []task.Task{
		pendingTask("a", 5, 7, 45),
		pendingTask("b", 2, 3, 20),
	}

	first := BuildSchedule(tasks, state, "90 min", i18n.EN, now)
	second := BuildSchedule(tasks, state, "90 min", i18n.EN, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ:\n%+v\n%+v", first, second)
	}
}
