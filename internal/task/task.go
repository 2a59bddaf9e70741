package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type categorizes the kind of mental work a task demands.
type Type string

const (
	TypeMemorization  Type = "Memorization"
	TypeComprehension Type = "Comprehension"
	TypeCreation      Type = "Creation"
	TypeLogic         Type = "Logic"
	TypeRoutine       Type = "Routine"
)

// Types lists all valid task types in display order.
var Types = []Type{TypeMemorization, TypeComprehension, TypeCreation, TypeLogic, TypeRoutine}

// Difficulty is the user's own estimate of how hard a task is.
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Recurrence is a policy causing a completed task to reset instead of
// terminating.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Subtask is a single checklist item inside a task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is one unit of work. CognitiveLoad is derived from type, difficulty
// and duration by the engine at creation/edit time; it is never set directly.
type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Type             Type       `json:"type"`
	Difficulty       Difficulty `json:"difficulty"`
	Importance       int        `json:"importance"` // 1-5, 5 highest
	CognitiveLoad    int        `json:"cognitive_load"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	Subtasks         []Subtask  `json:"subtasks,omitempty"`
	Recurrence       Recurrence `json:"recurrence,omitempty"`
	GoalID           string     `json:"goal_id,omitempty"`
}

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.NewString()
}

// ParseType validates a task type string.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown task type %q (valid: Memorization, Comprehension, Creation, Logic, Routine)", s)
}

// ParseDifficulty validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (valid: Low, Medium, High)", s)
}

// ParseRecurrence validates a recurrence string.
func ParseRecurrence(s string) (Recurrence, error) {
	switch Recurrence(s) {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return Recurrence(s), nil
	}
	return "", fmt.Errorf("unknown recurrence %q (valid: none, daily, weekly)", s)
}

// Complete finalizes a task the user has finished.
//
// A recurring task is never marked completed: its deadline advances by the
// recurrence interval from now, its subtask checkmarks are cleared, and it
// stays pending. A non-recurring task transitions to completed and records
// the completion time.
func (t *Task) Complete(now time.Time) {
	if t.Recurrence == RecurrenceDaily || t.Recurrence == RecurrenceWeekly {
		days := 1
		if t.Recurrence == RecurrenceWeekly {
			days = 7
		}
		next := now.AddDate(0, 0, days)
		t.Deadline = &next
		for i := range t.Subtasks {
			t.Subtasks[i].Completed = false
		}
		return
	}

	t.Status = StatusCompleted
	done := now
	t.CompletedAt = &done
}

// ToggleSubtask flips the completed flag of the subtask with the given ID.
// Returns false if no such subtask exists.
func (t *Task) ToggleSubtask(subtaskID string) bool {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return true
		}
	}
	return false
}

// Pending filters a task list down to pending tasks.
func Pending(tasks []Task) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Status == StatusPending {
			out = append(out, t)
		}
	}
	return out
}
