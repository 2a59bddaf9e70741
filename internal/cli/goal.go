package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

var goalDescription string

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage long-term goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE:  runGoalList,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a goal (linked tasks are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalDescription, "desc", "d", "", "Goal description")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalRmCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	g := task.Goal{
		ID:          task.NewID(),
		Title:       strings.Join(args, " "),
		Description: goalDescription,
		CreatedAt:   time.Now(),
	}
	if err := s.CreateGoal(g); err != nil {
		return err
	}

	fmt.Printf("Added goal %s%s%s: %s\n", colorCyan, shortID(g.ID), colorReset, g.Title)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	goals, err := s.ListGoals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with: prioria goal add")
		return nil
	}

	tasks, err := s.ListTasks("")
	if err != nil {
		return err
	}

	for _, g := range goals {
		progress := task.GoalProgress(g.ID, tasks)
		linked := 0
		for _, t := range tasks {
			if t.GoalID == g.ID {
				linked++
			}
		}
		fmt.Printf("%s%s%s %s%s%s  %s %d%%  %s(%d tasks)%s\n",
			colorCyan, shortID(g.ID), colorReset,
			colorBold, g.Title, colorReset,
			progressBar(progress), progress,
			colorDim, linked, colorReset)
		if g.Description != "" {
			fmt.Printf("         %s%s%s\n", colorDim, g.Description, colorReset)
		}
	}
	return nil
}

func progressBar(percent int) string {
	const width = 10
	filled := percent * width / 100
	var b strings.Builder
	b.WriteString(colorGreen)
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	b.WriteString(colorReset)
	return b.String()
}

func runGoalRm(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := s.FindGoal(args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteGoal(g.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted goal %s: %s\n", shortID(g.ID), g.Title)
	return nil
}
