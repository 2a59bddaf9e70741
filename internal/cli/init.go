package cli

import (
	"fmt"
	"os"

	"github.com/prioria/prioria/internal/config"
	"github.com/spf13/cobra"
)

var initLanguage string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize prioria in the current directory",
	Long:  "Creates a .prioria/ directory with default config and database.",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initLanguage, "lang", "l", "en", "Display language: en, ja")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check if already initialized.
	if _, err := os.Stat(prioriaDirName); err == nil {
		return fmt.Errorf("prioria already initialized in this directory (.prioria/ exists)")
	}

	if err := os.MkdirAll(prioriaDirName, 0755); err != nil {
		return fmt.Errorf("create .prioria: %w", err)
	}

	// Write default config.
	cfg := config.DefaultConfig()
	cfg.Language = initLanguage
	if err := config.Save(prioriaPath("config.yaml"), cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Create database by opening the store (migration runs automatically).
	s, err := openStore(prioriaPath("prioria.db"))
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	s.Close()

	fmt.Println("Initialized prioria in .prioria/")
	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Println("  1. Run: prioria task add \"your first task\"")
	fmt.Println("  2. Run: prioria brain --fatigue 5 --motivation 5")
	fmt.Println("  3. Run: prioria next")

	return nil
}
