package task

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func TestComplete_NonRecurring(t *testing.T) {
	tk := Task{ID: "a", Title: "One-off", Status: StatusPending, Recurrence: RecurrenceNone}

	tk.Complete(now)

	if tk.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", tk.Status)
	}
	if tk.CompletedAt == nil || !tk.CompletedAt.Equal(now) {
		t.Errorf("completedAt = %v, want %v", tk.CompletedAt, now)
	}
}

func TestComplete_DailyRecurrence(t *testing.T) {
	old := now.Add(-3 * time.Hour)
	tk := Task{
		ID:         "a",
		Title:      "Review flashcards",
		Status:     StatusPending,
		Recurrence: RecurrenceDaily,
		Deadline:   &old,
		Subtasks: []Subtask{
			{ID: "s1", Title: "Deck A", Completed: true},
			{ID: "s2", Title: "Deck B", Completed: true},
		},
	}

	tk.Complete(now)

	// A recurring task resets instead of completing.
	if tk.Status != StatusPending {
		t.Errorf("status = %s, want pending", tk.Status)
	}
	if tk.CompletedAt != nil {
		t.Errorf("recurring task must not record completion, got %v", tk.CompletedAt)
	}
	want := now.AddDate(0, 0, 1)
	if tk.Deadline == nil || !tk.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", tk.Deadline, want)
	}
	for _, st := range tk.Subtasks {
		if st.Completed {
			t.Errorf("subtask %s not reset", st.ID)
		}
	}
}

func TestComplete_WeeklyRecurrence(t *testing.T) {
	tk := Task{ID: "a", Status: StatusPending, Recurrence: RecurrenceWeekly}

	tk.Complete(now)

	want := now.AddDate(0, 0, 7)
	if tk.Deadline == nil || !tk.Deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", tk.Deadline, want)
	}
	if tk.Status != StatusPending {
		t.Errorf("status = %s, want pending", tk.Status)
	}
}

func TestToggleSubtask(t *testing.T) {
	tk := Task{
		Subtasks: []Subtask{
			{ID: "s1", Title: "First"},
			{ID: "s2", Title: "Second", Completed: true},
		},
	}

	if !tk.ToggleSubtask("s1") {
		t.Fatal("toggle s1 should succeed")
	}
	if !tk.Subtasks[0].Completed {
		t.Error("s1 not toggled on")
	}

	if !tk.ToggleSubtask("s2") {
		t.Fatal("toggle s2 should succeed")
	}
	if tk.Subtasks[1].Completed {
		t.Error("s2 not toggled off")
	}

	if tk.ToggleSubtask("missing") {
		t.Error("toggle of unknown subtask should report false")
	}
}

func TestPending(t *testing.T) {
	tasks := []Task{
		{ID: "a", Status: StatusPending},
		{ID: "b", Status: StatusCompleted},
		{ID: "c", Status: StatusPending},
	}

	got := Pending(tasks)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Pending = %+v", got)
	}
}

func TestParseType(t *testing.T) {
	if _, err := ParseType("Logic"); err != nil {
		t.Errorf("Logic should parse: %v", err)
	}
	if _, err := ParseType("logic"); err == nil {
		t.Error("types are case sensitive")
	}
	if _, err := ParseType("Sorcery"); err == nil {
		t.Error("unknown type should fail")
	}
}

func TestParseDifficultyAndRecurrence(t *testing.T) {
	for _, s := range []string{"Low", "Medium", "High"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%s): %v", s, err)
		}
	}
	if _, err := ParseDifficulty("Extreme"); err == nil {
		t.Error("unknown difficulty should fail")
	}

	for _, s := range []string{"none", "daily", "weekly"} {
		if _, err := ParseRecurrence(s); err != nil {
			t.Errorf("ParseRecurrence(%s): %v", s, err)
		}
	}
	if _, err := ParseRecurrence("monthly"); err == nil {
		t.Error("unknown recurrence should fail")
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("IDs should be unique and non-empty: %q %q", a, b)
	}
}
