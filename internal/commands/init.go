package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagosx-dev/pagosx/internal/config"
	"github.com/pagosx-dev/pagosx/internal/reftab"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new pagosx workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	cfg := config.Default()

	// Create directory structure.
	dirs := []string{
		cfg.Dirs.Input,
		filepath.Join(cfg.Dirs.Input, "processed"),
		cfg.Dirs.Output,
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write pagosx.yaml.
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the built-in reference tables.
	if err := reftab.Save(filepath.Join(dir, cfg.TablesFile), reftab.Default()); err != nil {
		return fmt.Errorf("writing reference tables: %w", err)
	}

	fmt.Printf("Initialized pagosx workspace at %s\n", dir)
	return nil
}
