package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/prioria/prioria/internal/engine"
	"github.com/prioria/prioria/internal/task"
	"github.com/spf13/cobra"
)

// ANSI color codes.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorDim     = "\033[2m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

var (
	taskDescription string
	taskDue         string
	taskMinutes     int
	taskType        string
	taskDifficulty  string
	taskImportance  int
	taskRecurrence  string
	taskGoal        string
	taskSubtasks    []string
	taskReflect     string

	editTitle       string
	editDescription string
	editDue         string
	editMinutes     int
	editType        string
	editDifficulty  string
	editImportance  int
	editRecurrence  string
	editGoal        string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Create or manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks, optionally filtered by status (pending, completed)",
	RunE:  runTaskList,
}

var taskShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a task; the load score is recomputed when type, difficulty or duration change",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Complete a task (recurring tasks reset instead)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

func init() {
	addFlags := taskAddCmd.Flags()
	addFlags.StringVarP(&taskDescription, "desc", "d", "", "Task description")
	addFlags.StringVar(&taskDue, "due", "", "Deadline (YYYY-MM-DD, 'YYYY-MM-DD HH:MM', today, tomorrow)")
	addFlags.IntVarP(&taskMinutes, "minutes", "m", 30, "Estimated minutes")
	addFlags.StringVarP(&taskType, "type", "t", "Comprehension", "Type: Memorization, Comprehension, Creation, Logic, Routine")
	addFlags.StringVar(&taskDifficulty, "difficulty", "Medium", "Difficulty: Low, Medium, High")
	addFlags.IntVarP(&taskImportance, "importance", "i", 3, "Importance 1-5 (5 highest)")
	addFlags.StringVarP(&taskRecurrence, "recurrence", "r", "none", "Recurrence: none, daily, weekly")
	addFlags.StringVarP(&taskGoal, "goal", "g", "", "Link to a goal (ID or prefix)")
	addFlags.StringArrayVar(&taskSubtasks, "subtask", nil, "Subtask title (repeatable)")

	editFlags := taskEditCmd.Flags()
	editFlags.StringVar(&editTitle, "title", "", "New title")
	editFlags.StringVar(&editDescription, "desc", "", "Task description")
	editFlags.StringVar(&editDue, "due", "", "Deadline (YYYY-MM-DD, 'YYYY-MM-DD HH:MM', today, tomorrow, or 'none')")
	editFlags.IntVar(&editMinutes, "minutes", 0, "Estimated minutes")
	editFlags.StringVar(&editType, "type", "", "Type")
	editFlags.StringVar(&editDifficulty, "difficulty", "", "Difficulty")
	editFlags.IntVar(&editImportance, "importance", 0, "Importance 1-5")
	editFlags.StringVar(&editRecurrence, "recurrence", "", "Recurrence: none, daily, weekly")
	editFlags.StringVar(&editGoal, "goal", "", "Link to a goal (ID or prefix, 'none' to unlink)")

	taskDoneCmd.Flags().StringVar(&taskReflect, "reflect", "normal", "How it went: rough, normal, smooth (affects XP)")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(subtaskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	title := strings.Join(args, " ")

	typ, err := task.ParseType(taskType)
	if err != nil {
		return err
	}
	difficulty, err := task.ParseDifficulty(taskDifficulty)
	if err != nil {
		return err
	}
	recurrence, err := task.ParseRecurrence(taskRecurrence)
	if err != nil {
		return err
	}
	if taskMinutes <= 0 {
		return fmt.Errorf("estimated minutes must be positive, got %d", taskMinutes)
	}
	if taskImportance < 1 || taskImportance > 5 {
		return fmt.Errorf("importance must be 1-5, got %d", taskImportance)
	}

	t := task.Task{
		ID:               task.NewID(),
		Title:            title,
		Description:      taskDescription,
		EstimatedMinutes: taskMinutes,
		Type:             typ,
		Difficulty:       difficulty,
		Importance:       taskImportance,
		CognitiveLoad:    engine.Load(typ, difficulty, taskMinutes),
		Status:           task.StatusPending,
		CreatedAt:        now,
		Recurrence:       recurrence,
	}

	if taskDue != "" {
		due, err := parseDue(taskDue, now)
		if err != nil {
			return err
		}
		t.Deadline = &due
	}

	if taskGoal != "" {
		g, err := s.FindGoal(taskGoal)
		if err != nil {
			return err
		}
		t.GoalID = g.ID
	}

	for _, title := range taskSubtasks {
		t.Subtasks = append(t.Subtasks, task.Subtask{ID: task.NewID(), Title: title})
	}

	if err := s.CreateTask(t); err != nil {
		return err
	}

	fmt.Printf("Added task %s%s%s: %s  %s(load %d)%s\n",
		colorCyan, shortID(t.ID), colorReset, t.Title, colorDim, t.CognitiveLoad, colorReset)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	status := ""
	if len(args) > 0 {
		status = args[0]
	}

	tasks, err := s.ListTasks(status)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%s%-10s %-10s %-4s %-4s %-12s %s%s\n",
		colorBold, "ID", "STATUS", "IMP", "LOAD", "DUE", "TITLE", colorReset)
	for _, t := range tasks {
		statusColor := colorWhite
		if t.Status == task.StatusCompleted {
			statusColor = colorGreen
		}
		rec := ""
		if t.Recurrence == task.RecurrenceDaily || t.Recurrence == task.RecurrenceWeekly {
			rec = colorDim + " ↻" + colorReset
		}
		fmt.Printf("%s%-10s%s %s%-10s%s %-4d %-4d %-12s %s%s\n",
			colorCyan, shortID(t.ID), colorReset,
			statusColor, t.Status, colorReset,
			t.Importance, t.CognitiveLoad,
			stripLen(fmtDue(t.Deadline, now), 12),
			truncate(t.Title, 50), rec)
	}
	return nil
}

// stripLen pads a possibly-colored cell to a fixed visible width.
func stripLen(s string, width int) string {
	visible := s
	for _, c := range []string{colorReset, colorBold, colorDim, colorRed, colorGreen, colorYellow, colorBlue, colorMagenta, colorCyan, colorWhite} {
		visible = strings.ReplaceAll(visible, c, "")
	}
	if pad := width - len(visible); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("%sTask %s%s\n", colorBold, shortID(t.ID), colorReset)
	fmt.Printf("  Title:      %s\n", t.Title)
	if t.Description != "" {
		fmt.Printf("  Desc:       %s\n", t.Description)
	}
	fmt.Printf("  Status:     %s\n", t.Status)
	fmt.Printf("  Type:       %s (%s)\n", t.Type, t.Difficulty)
	fmt.Printf("  Importance: %d/5\n", t.Importance)
	fmt.Printf("  Load:       %d/10\n", t.CognitiveLoad)
	fmt.Printf("  Estimate:   %d min\n", t.EstimatedMinutes)
	if t.Deadline != nil {
		fmt.Printf("  Due:        %s (%s)\n", t.Deadline.Format("2006-01-02 15:04"), fmtDue(t.Deadline, now))
	}
	if t.Recurrence != "" && t.Recurrence != task.RecurrenceNone {
		fmt.Printf("  Repeats:    %s\n", t.Recurrence)
	}
	if t.GoalID != "" {
		fmt.Printf("  Goal:       %s\n", shortID(t.GoalID))
	}
	fmt.Printf("  Created:    %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		fmt.Printf("  Completed:  %s\n", t.CompletedAt.Format("2006-01-02 15:04"))
	}

	if len(t.Subtasks) > 0 {
		fmt.Println("\n  Subtasks:")
		for _, st := range t.Subtasks {
			mark := "[ ]"
			if st.Completed {
				mark = colorGreen + "[x]" + colorReset
			}
			fmt.Printf("    %s %s %s%s%s\n", mark, st.Title, colorDim, shortID(st.ID), colorReset)
		}
	}

	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	flags := cmd.Flags()
	loadInputsChanged := false

	if flags.Changed("title") {
		if editTitle == "" {
			return fmt.Errorf("title cannot be empty")
		}
		t.Title = editTitle
	}
	if flags.Changed("desc") {
		t.Description = editDescription
	}
	if flags.Changed("due") {
		if editDue == "none" {
			t.Deadline = nil
		} else {
			due, err := parseDue(editDue, now)
			if err != nil {
				return err
			}
			t.Deadline = &due
		}
	}
	if flags.Changed("minutes") {
		if editMinutes <= 0 {
			return fmt.Errorf("estimated minutes must be positive, got %d", editMinutes)
		}
		t.EstimatedMinutes = editMinutes
		loadInputsChanged = true
	}
	if flags.Changed("type") {
		typ, err := task.ParseType(editType)
		if err != nil {
			return err
		}
		t.Type = typ
		loadInputsChanged = true
	}
	if flags.Changed("difficulty") {
		difficulty, err := task.ParseDifficulty(editDifficulty)
		if err != nil {
			return err
		}
		t.Difficulty = difficulty
		loadInputsChanged = true
	}
	if flags.Changed("importance") {
		if editImportance < 1 || editImportance > 5 {
			return fmt.Errorf("importance must be 1-5, got %d", editImportance)
		}
		t.Importance = editImportance
	}
	if flags.Changed("recurrence") {
		recurrence, err := task.ParseRecurrence(editRecurrence)
		if err != nil {
			return err
		}
		t.Recurrence = recurrence
	}
	if flags.Changed("goal") {
		if editGoal == "none" {
			t.GoalID = ""
		} else {
			g, err := s.FindGoal(editGoal)
			if err != nil {
				return err
			}
			t.GoalID = g.ID
		}
	}

	if loadInputsChanged {
		t.CognitiveLoad = engine.Load(t.Type, t.Difficulty, t.EstimatedMinutes)
	}

	if err := s.UpdateTask(*t); err != nil {
		return err
	}

	fmt.Printf("Updated task %s: %s", shortID(t.ID), t.Title)
	if loadInputsChanged {
		fmt.Printf("  %s(load %d)%s", colorDim, t.CognitiveLoad, colorReset)
	}
	fmt.Println()
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}
	if t.Status == task.StatusCompleted {
		return fmt.Errorf("task %s is already completed", shortID(t.ID))
	}

	var multiplier float64
	switch taskReflect {
	case "rough":
		multiplier = 0.8
	case "normal":
		multiplier = 1.0
	case "smooth":
		multiplier = 1.2
	default:
		return fmt.Errorf("unknown reflection %q (valid: rough, normal, smooth)", taskReflect)
	}

	now := time.Now()
	t.Complete(now)
	if err := s.UpdateTask(*t); err != nil {
		return err
	}

	// Credit experience for the completion.
	brain, err := s.BrainState()
	if err != nil {
		return err
	}
	before := brain.Level
	gained := task.CompletionXP(*t, multiplier)
	brain.AddXP(gained, now)
	if err := s.SaveBrainState(brain); err != nil {
		return err
	}

	if t.Status == task.StatusPending {
		// Recurring task: reset, not completed.
		fmt.Printf("%s✓%s %s  %s(repeats %s, next due %s)%s\n",
			colorGreen, colorReset, t.Title,
			colorDim, t.Recurrence, t.Deadline.Format("2006-01-02"), colorReset)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, t.Title)
	}
	fmt.Printf("  %s+%d XP%s", colorYellow, gained, colorReset)
	if brain.Level > before {
		fmt.Printf("  %s⬆ Level %d!%s", colorMagenta+colorBold, brain.Level, colorReset)
	}
	fmt.Println()
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.FindTask(args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteTask(t.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task %s: %s\n", shortID(t.ID), t.Title)
	return nil
}
