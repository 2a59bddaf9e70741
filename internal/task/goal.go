package task

import (
	"math"
	"time"
)

// Goal is a long-term objective that tasks may link to.
type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GoalProgress returns the percentage of a goal's linked tasks that are
// completed, 0 when nothing links to it. Progress is always derived, never
// stored.
func GoalProgress(goalID string, tasks []Task) int {
	total := 0
	completed := 0
	for _, t := range tasks {
		if t.GoalID != goalID {
			continue
		}
		total++
		if t.Status == StatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
