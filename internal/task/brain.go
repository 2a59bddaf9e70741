package task

import (
	"math"
	"time"
)

// BrainState is the user's self-reported cognitive condition. Exactly one
// exists per user; the store owns the live copy and every engine call
// receives it by value.
type BrainState struct {
	Fatigue     int       `json:"fatigue"`    // 1 (fresh) - 10 (exhausted)
	Motivation  int       `json:"motivation"` // 1 (low) - 10 (high)
	LastUpdated time.Time `json:"last_updated"`
	XP          int       `json:"xp"`
	Level       int       `json:"level"`
}

// DefaultBrainState returns the neutral starting state.
func DefaultBrainState(now time.Time) BrainState {
	return BrainState{
		Fatigue:     5,
		Motivation:  5,
		LastUpdated: now,
		XP:          0,
		Level:       1,
	}
}

// LevelFor computes the level reached at the given XP total.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// AddXP credits experience points and recomputes the level.
func (s *BrainState) AddXP(points int, now time.Time) {
	s.XP += points
	if s.XP < 0 {
		s.XP = 0
	}
	s.Level = LevelFor(s.XP)
	s.LastUpdated = now
}

// CompletionXP returns the points earned for completing a task. Harder tasks
// pay more, and the reflection multiplier (0.8 rough / 1.0 normal / 1.2
// smooth) scales the total.
func CompletionXP(t Task, multiplier float64) int {
	const baseXP = 10
	loadBonus := float64(t.CognitiveLoad) * 0.5
	return int(math.Floor((baseXP + loadBonus) * multiplier))
}
