package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/prioria/prioria/internal/backup"
	"github.com/spf13/cobra"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON backup, replacing all current data",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	f, err := backup.Parse(data)
	if err != nil {
		return err
	}

	if !importYes {
		fmt.Printf("This replaces all current data with %d tasks and %d goals from %s.\n",
			len(f.Tasks), len(f.Goals), args[0])
		fmt.Print("Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	s, err := mustStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ReplaceAll(f.Tasks, f.Goals, f.BrainState); err != nil {
		return err
	}

	fmt.Printf("Imported %d tasks and %d goals", len(f.Tasks), len(f.Goals))
	if f.BrainState != nil {
		fmt.Print(" with brain state")
	}
	fmt.Println(".")
	return nil
}
