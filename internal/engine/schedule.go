package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
)

// ItemKind distinguishes the three kinds of schedule entries.
type ItemKind string

const (
	ItemTask   ItemKind = "task"
	ItemBreak  ItemKind = "break"
	ItemBuffer ItemKind = "buffer"
)

// ScheduleItem is one time-boxed entry in a generated daily plan.
type ScheduleItem struct {
	Time     string // "HH:MM" start label
	Activity string
	Kind     ItemKind
	Duration int // minutes, always > 0
	TaskID   string
	Note     string
}

var (
	hourPattern  = regexp.MustCompile(`(\d+)\s*(h|hour)`)
	minPattern   = regexp.MustCompile(`(\d+)\s*(m|min)`)
	clockPattern = regexp.MustCompile(`(\d+)(?::(\d+))?\s*(am|pm)?`)
)

// parseAvailability turns free-text availability into a minute budget.
// Defaults to 120 when nothing matches. The hour pattern is checked before
// the minute pattern, so when both appear the minute match wins. "until"/"by"
// extracts a time of day; a target already in the past is silently ignored
// and the earlier value stands.
func parseAvailability(input string, now time.Time) int {
	minutes := 120
	in := strings.ToLower(input)

	if m := hourPattern.FindStringSubmatch(in); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes = n * 60
	}
	if m := minPattern.FindStringSubmatch(in); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes = n
	}

	if strings.Contains(in, "until") || strings.Contains(in, "by") {
		if m := clockPattern.FindStringSubmatch(in); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			switch m[3] {
			case "pm":
				if hour < 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			}

			target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			if !target.Before(now) {
				minutes = int(target.Sub(now).Minutes())
			}
		}
	}

	return minutes
}

// scheduleScore is the ordering pass for the plan. Flat deadline bonus, no
// banding; deliberately simpler than the recommender's score.
func scheduleScore(t task.Task, fatigued bool) int {
	score := 0
	if t.Deadline != nil {
		score += 20
	}
	imp := t.Importance
	if imp == 0 {
		imp = 1
	}
	score += imp * 5
	if fatigued && t.CognitiveLoad > 6 {
		score -= 10
	}
	if !fatigued && t.CognitiveLoad > 6 {
		score += 10
	}
	return score
}

// BuildSchedule assembles a time-boxed plan from pending tasks, the current
// brain state, and a free-text availability input. The plan interleaves
// work blocks with breaks sized by fatigue, allocates tasks greedily in
// priority order (splitting the last one if the block or budget runs short),
// and appends a trailing buffer when meaningful time remains. Input tasks
// are never mutated.
func BuildSchedule(tasks []task.Task, state task.BrainState, availability string, loc i18n.Locale, now time.Time) []ScheduleItem {
	strs := i18n.T(loc)
	available := parseAvailability(availability, now)

	fatigued := state.Fatigue >= 7
	workBlock := 60
	breakDuration := 10
	if fatigued {
		workBlock = 45
		breakDuration = 15
	}

	type scored struct {
		t     task.Task
		score int
	}
	var order []scored
	for _, t := range tasks {
		if t.Status != task.StatusPending {
			continue
		}
		order = append(order, scored{t: t, score: scheduleScore(t, fatigued)})
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].score > order[j].score })

	var schedule []ScheduleItem
	current := roundUpToFiveMinutes(now)
	remaining := available
	sinceBreak := 0

	for _, item := range order {
		t := item.t
		if remaining <= 0 {
			break
		}
		if remaining < 15 {
			break // too short for anything useful
		}

		if sinceBreak >= workBlock {
			schedule = append(schedule, ScheduleItem{
				Time:     current.Format("15:04"),
				Activity: strs.BreakLabel,
				Kind:     ItemBreak,
				Duration: breakDuration,
				Note:     strs.BreakNote,
			})
			current = current.Add(time.Duration(breakDuration) * time.Minute)
			remaining -= breakDuration
			sinceBreak = 0
			if remaining <= 0 {
				break
			}
		}

		allocate := t.EstimatedMinutes
		if remaining < allocate {
			allocate = remaining
		}
		if workBlock-sinceBreak < allocate {
			allocate = workBlock - sinceBreak
		}

		entry := ScheduleItem{
			Time:     current.Format("15:04"),
			Activity: t.Title,
			Kind:     ItemTask,
			Duration: allocate,
			TaskID:   t.ID,
		}
		if allocate < t.EstimatedMinutes {
			entry.Note = strs.PartialNote
		}
		schedule = append(schedule, entry)

		current = current.Add(time.Duration(allocate) * time.Minute)
		remaining -= allocate
		sinceBreak += allocate
	}

	if remaining > 10 {
		schedule = append(schedule, ScheduleItem{
			Time:     current.Format("15:04"),
			Activity: strs.BufferLabel,
			Kind:     ItemBuffer,
			Duration: remaining,
			Note:     strs.BufferNote,
		})
	}

	return schedule
}

// roundUpToFiveMinutes snaps the plan start to the next 5-minute mark.
func roundUpToFiveMinutes(t time.Time) time.Time {
	rem := t.Minute() % 5
	if rem == 0 {
		return t
	}
	return t.Add(time.Duration(5-rem) * time.Minute)
}
