package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
)

// Recommendation names the single task the user should do next, with a
// human-readable explanation. Ephemeral: recomputed on every relevant state
// change, never persisted.
type Recommendation struct {
	TaskID             string
	Reasoning          string
	SuggestedAction    string
	VoiceModeAvailable bool
}

// Recommend scores every task against the current brain state and returns
// the best candidate, or nil if the list is empty. Callers pass pending
// tasks only; the function does not filter by status itself.
func Recommend(tasks []task.Task, state task.BrainState, loc i18n.Locale, now time.Time) *Recommendation {
	if len(tasks) == 0 {
		return nil
	}

	var best *task.Task
	maxScore := math.Inf(-1)

	for i := range tasks {
		score := priorityScore(tasks[i], state, now)
		if float64(score) > maxScore {
			maxScore = float64(score)
			best = &tasks[i]
		}
	}
	if best == nil {
		best = &tasks[0]
	}

	strs := i18n.T(loc)
	isTired := state.Fatigue > 7
	isUrgent := best.Deadline != nil && best.Deadline.Sub(now) < 24*time.Hour

	var reasoning string
	switch {
	case isUrgent:
		reasoning = strs.ReasonUrgent
	case isTired && best.CognitiveLoad < 5:
		reasoning = strs.ReasonTired
	case best.Importance >= 4:
		reasoning = strs.ReasonImportant
	default:
		reasoning = strs.ReasonBalanced
	}

	return &Recommendation{
		TaskID:             best.ID,
		Reasoning:          reasoning,
		SuggestedAction:    fmt.Sprintf(strs.FocusAction, best.EstimatedMinutes),
		VoiceModeAvailable: false,
	}
}

// priorityScore is the recommendation-side scoring pass. The schedule
// builder carries its own, simpler variant; the two are tuned separately
// and intentionally kept apart.
func priorityScore(t task.Task, state task.BrainState, now time.Time) int {
	score := 0

	// Urgency: only the highest applicable deadline band counts.
	if t.Deadline != nil {
		hoursLeft := t.Deadline.Sub(now).Hours()
		switch {
		case hoursLeft < 0:
			score += 100 // overdue
		case hoursLeft < 24:
			score += 50
		case hoursLeft < 72:
			score += 20
		}
	}

	imp := t.Importance
	if imp == 0 {
		imp = 1
	}
	score += imp * 5

	// Match load against fatigue: exhausted users get steered away from
	// heavy tasks, fresh users toward them.
	if state.Fatigue > 7 {
		if t.CognitiveLoad > 6 {
			score -= 20
		} else {
			score += 10
		}
	} else if state.Fatigue < 4 {
		if t.CognitiveLoad > 6 {
			score += 15
		}
	}

	// Low motivation favors quick wins.
	if state.Motivation < 4 && t.EstimatedMinutes <= 20 {
		score += 15
	}

	return score
}
