// Package engine is the deterministic prioritization core: the cognitive
// load calculator, the single-task recommender, and the time-boxed schedule
// builder. Everything here is a pure computation over the values passed in;
// callers own all state, persistence, and the live clock.
package engine

import "github.com/prioria/prioria/internal/task"

// Load maps a task's type, difficulty and estimated duration to a cognitive
// load score in [1,10]. Total over all inputs; unknown types land on a
// neutral base of 5.
func Load(typ task.Type, difficulty task.Difficulty, minutes int) int {
	var load int
	switch typ {
	case task.TypeMemorization:
		load = 6
	case task.TypeComprehension:
		load = 7
	case task.TypeCreation:
		load = 8
	case task.TypeLogic:
		load = 9
	case task.TypeRoutine:
		load = 3
	default:
		load = 5
	}

	switch difficulty {
	case task.DifficultyLow:
		load -= 2
	case task.DifficultyHigh:
		load += 2
	}

	// Longer tasks drain more; very short ones barely register.
	if minutes > 60 {
		load++
	}
	if minutes < 15 {
		load--
	}

	if load < 1 {
		load = 1
	}
	if load > 10 {
		load = 10
	}
	return load
}
