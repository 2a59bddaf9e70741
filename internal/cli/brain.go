package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	brainFatigue    int
	brainMotivation int
)

var brainCmd = &cobra.Command{
	Use:   "brain",
	Short: "Show or update your brain state (fatigue and motivation)",
	RunE:  runBrain,
}

func init() {
	brainCmd.Flags().IntVarP(&brainFatigue, "fatigue", "f", 0, "Fatigue level 1-10")
	brainCmd.Flags().IntVarP(&brainMotivation, "motivation", "m", 0, "Motivation level 1-10")
}

func runBrain(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.BrainState()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("fatigue") {
		if brainFatigue < 1 || brainFatigue > 10 {
			return fmt.Errorf("fatigue must be 1-10, got %d", brainFatigue)
		}
		state.Fatigue = brainFatigue
		changed = true
	}
	if flags.Changed("motivation") {
		if brainMotivation < 1 || brainMotivation > 10 {
			return fmt.Errorf("motivation must be 1-10, got %d", brainMotivation)
		}
		state.Motivation = brainMotivation
		changed = true
	}
	if changed {
		state.LastUpdated = time.Now()
		if err := s.SaveBrainState(state); err != nil {
			return err
		}
	}

	fmt.Printf("%sBrain state%s\n", colorBold, colorReset)
	fmt.Printf("  Fatigue:    %s %d/10\n", gauge(state.Fatigue, colorRed), state.Fatigue)
	fmt.Printf("  Motivation: %s %d/10\n", gauge(state.Motivation, colorGreen), state.Motivation)
	fmt.Printf("  Level:      %d  %s(%d XP)%s\n", state.Level, colorDim, state.XP, colorReset)
	if !state.LastUpdated.IsZero() {
		fmt.Printf("  Updated:    %s\n", state.LastUpdated.Format("2006-01-02 15:04"))
	}
	return nil
}

func gauge(value int, color string) string {
	const width = 10
	if value < 0 {
		value = 0
	}
	if value > width {
		value = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < value {
			bar += "▰"
		} else {
			bar += "▱"
		}
	}
	return color + bar + colorReset
}
