package cli

import (
	"fmt"
	"time"

	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Recommend the single best task for right now",
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	loc := currentLocale()
	tasks, err := s.ListTasks("")
	if err != nil {
		return err
	}

	state, err := s.BrainState()
	if err != nil {
		return err
	}

	rec := engine.Recommend(task.Pending(tasks), state, loc, time.Now())
	if rec == nil {
		fmt.Println(i18n.T(loc).NoRecommendation)
		return nil
	}

	var picked *task.Task
	for i := range tasks {
		if tasks[i].ID == rec.TaskID {
			picked = &tasks[i]
			break
		}
	}
	if picked == nil {
		return fmt.Errorf("recommended task not found: %s", rec.TaskID)
	}

	fmt.Printf("%s▶ %s%s  %s%s%s\n", colorBold, picked.Title, colorReset,
		colorCyan, shortID(picked.ID), colorReset)
	fmt.Printf("  %s\n", rec.Reasoning)
	fmt.Printf("  %s%s%s\n", colorGreen, rec.SuggestedAction, colorReset)
	fmt.Printf("  %simportance %d/5, load %d/10%s\n",
		colorDim, picked.Importance, picked.CognitiveLoad, colorReset)
	return nil
}
