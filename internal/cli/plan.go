package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/i18n"
	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [availability]",
	Short: "Build a schedule for your available time",
	Long: `Build a greedy schedule from your pending tasks.

Availability is free text, for example:
  prioria plan 2 hours
  prioria plan 45 min
  prioria plan until 17:30

With no argument a two hour window is assumed.`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
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

	if len(task.Pending(tasks)) == 0 {
		fmt.Println(i18n.T(loc).NoTasks)
		return nil
	}

	availability := strings.Join(args, " ")
	items := engine.BuildSchedule(tasks, state, availability, loc, time.Now())
	if len(items) == 0 {
		fmt.Println(i18n.T(loc).NoTasks)
		return nil
	}

	fmt.Printf("%s%s%s\n", colorBold, i18n.T(loc).PlanHeader, colorReset)
	for _, item := range items {
		var color string
		switch item.Kind {
		case engine.ItemBreak:
			color = colorBlue
		case engine.ItemBuffer:
			color = colorDim
		default:
			color = colorWhite
		}
		fmt.Printf("  %s%s%s  %s%-40s%s %s%3d min%s",
			colorCyan, item.Time, colorReset,
			color, truncate(item.Activity, 40), colorReset,
			colorDim, item.Duration, colorReset)
		if item.Note != "" {
			fmt.Printf("  %s%s%s", colorYellow, item.Note, colorReset)
		}
		fmt.Println()
	}
	fmt.Printf("%s%s%s\n", colorDim, i18n.T(loc).PlanNote, colorReset)
	return nil
}
