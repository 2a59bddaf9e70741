package task

import "testing"

func TestGoalProgress(t *testing.T) {
	tasks := []Task{
		{ID: "a", GoalID: "g1", Status: StatusCompleted},
		{ID: "b", GoalID: "g1", Status: StatusPending},
		{ID: "c", GoalID: "g1", Status: StatusCompleted},
		{ID: "d", GoalID: "g2", Status: StatusPending},
		{ID: "e", Status: StatusCompleted}, // unlinked
	}

	if got := GoalProgress("g1", tasks); got != 67 {
		t.Errorf("g1 progress = %d, want 67", got)
	}
	if got := GoalProgress("g2", tasks); got != 0 {
		t.Errorf("g2 progress = %d, want 0", got)
	}
	// Nothing links to g3.
	if got := GoalProgress("g3", tasks); got != 0 {
		t.Errorf("g3 progress = %d, want 0", got)
	}
}

func TestGoalProgress_AllDone(t *testing.T) {
	tasks := []Task{
		{ID: "a", GoalID: "g", Status: StatusCompleted},
		{ID: "b", GoalID: "g", Status: StatusCompleted},
	}
	if got := GoalProgress("g", tasks); got != 100 {
		t.Errorf("progress = %d, want 100", got)
	}
}
