package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/prioria/prioria/internal/backup"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks, goals and brain state to a JSON backup",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default prioria-backup-YYYY-MM-DD.json)")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	tasks, err := s.ListTasks("")
	if err != nil {
		return err
	}
	goals, err := s.ListGoals()
	if err != nil {
		return err
	}
	state, err := s.BrainState()
	if err != nil {
		return err
	}

	now := time.Now()
	data, err := backup.Export(tasks, state, goals, now)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = fmt.Sprintf("prioria-backup-%s.json", now.Format("2006-01-02"))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Printf("Exported %d tasks and %d goals to %s\n", len(tasks), len(goals), path)
	return nil
}
