package cli

import (
	"fmt"
	"strings"

	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage subtasks of a task",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add [task-id] [title]",
	Short: "Add a subtask to a task",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSubtaskAdd,
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle [task-id] [subtask-id]",
	Short: "Toggle a subtask's completion",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskToggle,
}

func init() {
	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}

	st := task.Subtask{ID: task.NewID(), Title: strings.Join(args[1:], " ")}
	t.Subtasks = append(t.Subtasks, st)
	if err := s.UpdateTask(*t); err != nil {
		return err
	}

	fmt.Printf("Added subtask %s%s%s to %s: %s\n",
		colorCyan, shortID(st.ID), colorReset, shortID(t.ID), st.Title)
	return nil
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}

	// Allow a prefix for the subtask ID too.
	var target string
	for _, st := range t.Subtasks {
		if st.ID == args[1] || strings.HasPrefix(st.ID, args[1]) {
			if target != "" {
				return fmt.Errorf("subtask ID %q is ambiguous", args[1])
			}
			target = st.ID
		}
	}
	if target == "" {
		return fmt.Errorf("subtask not found: %s", args[1])
	}

	t.ToggleSubtask(target)
	if err := s.UpdateTask(*t); err != nil {
		return err
	}

	for _, st := range t.Subtasks {
		if st.ID == target {
			mark := "[ ]"
			if st.Completed {
				mark = colorGreen + "[x]" + colorReset
			}
			fmt.Printf("%s %s\n", mark, st.Title)
		}
	}
	return nil
}
