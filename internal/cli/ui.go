package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prioria/prioria/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive dashboard",
	Long:  "Opens an interactive dashboard with your task list, the current recommendation, brain state gauges, and a schedule preview.",
	RunE:  runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}

	model := tui.New(s, currentLocale())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		s.Close()
		return fmt.Errorf("TUI error: %w", err)
	}

	s.Close()
	return nil
}
