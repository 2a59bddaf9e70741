package cli

import (
	"fmt"
	"sort"

	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workload analytics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tasks, err := s.ListTasks("")
	if err != nil {
		return err
	}
	state, err := s.BrainState()
	if err != nil {
		return err
	}

	pending := task.Pending(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}

	totalLoad := 0
	totalMinutes := 0
	byDifficulty := map[task.Difficulty]int{}
	byType := map[task.Type]int{}
	for _, t := range pending {
		totalLoad += t.CognitiveLoad
		totalMinutes += t.EstimatedMinutes
		byDifficulty[t.Difficulty]++
		byType[t.Type]++
	}

	fmt.Printf("%sWorkload%s\n", colorBold, colorReset)
	fmt.Printf("  Active tasks:   %d\n", len(pending))
	if len(pending) > 0 {
		fmt.Printf("  Average load:   %.1f/10\n", float64(totalLoad)/float64(len(pending)))
	}
	fmt.Printf("  Estimated time: %.1f h\n", float64(totalMinutes)/60)
	if len(tasks) > 0 {
		fmt.Printf("  Completion:     %d%% (%d of %d)\n",
			completed*100/len(tasks), completed, len(tasks))
	}

	if len(pending) > 0 {
		fmt.Printf("\n%sBy difficulty%s\n", colorBold, colorReset)
		for _, d := range []task.Difficulty{task.DifficultyHigh, task.DifficultyMedium, task.DifficultyLow} {
			if n := byDifficulty[d]; n > 0 {
				fmt.Printf("  %-8s %s\n", d, bar(n, len(pending)))
			}
		}

		fmt.Printf("\n%sBy type%s\n", colorBold, colorReset)
		types := make([]task.Type, 0, len(byType))
		for typ := range byType {
			types = append(types, typ)
		}
		sort.Slice(types, func(i, j int) bool {
			if byType[types[i]] != byType[types[j]] {
				return byType[types[i]] > byType[types[j]]
			}
			return types[i] < types[j]
		})
		for _, typ := range types {
			fmt.Printf("  %-14s %s\n", typ, bar(byType[typ], len(pending)))
		}
	}

	fmt.Printf("\n%sProgress%s\n", colorBold, colorReset)
	fmt.Printf("  Level %d  %s(%d XP)%s\n", state.Level, colorDim, state.XP, colorReset)
	return nil
}

func bar(n, total int) string {
	const width = 20
	filled := n * width / total
	if filled == 0 && n > 0 {
		filled = 1
	}
	out := colorCyan
	for i := 0; i < width; i++ {
		if i < filled {
			out += "■"
		} else {
			out += " "
		}
	}
	return out + colorReset + fmt.Sprintf(" %d", n)
}
