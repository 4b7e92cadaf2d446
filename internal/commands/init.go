package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statline-dev/statline/internal/config"
	"github.com/statline-dev/statline/internal/gl"
	"github.com/statline-dev/statline/internal/hierarchy"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new statline project",
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

			return runInit(cmd, absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name string) error {
	cfg := config.Default(name)
	dataDir := filepath.Join(dir, cfg.Data.Dir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, "statline.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the starter chart of accounts.
	af, err := os.Create(filepath.Join(dataDir, "accounts.csv"))
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	if err := gl.WriteAccounts(af, gl.DefaultAccounts()); err != nil {
		af.Close()
		return fmt.Errorf("writing accounts: %w", err)
	}
	if err := af.Close(); err != nil {
		return fmt.Errorf("closing accounts file: %w", err)
	}

	// Write an empty GL history with just the header row.
	hf, err := os.Create(filepath.Join(dataDir, "gl-history.csv"))
	if err != nil {
		return fmt.Errorf("creating GL history file: %w", err)
	}
	if err := gl.WriteHistory(hf, nil); err != nil {
		hf.Close()
		return fmt.Errorf("writing GL history: %w", err)
	}
	if err := hf.Close(); err != nil {
		return fmt.Errorf("closing GL history file: %w", err)
	}

	// Write the default income statement hierarchy.
	chart, cfgErrs := hierarchy.DefaultIncomeStatement()
	if len(cfgErrs) > 0 {
		return fmt.Errorf("building default hierarchy: %s", cfgErrs[0].Error())
	}
	if err := hierarchy.Save(filepath.Join(dataDir, "statement.yaml"), chart); err != nil {
		return fmt.Errorf("writing statement hierarchy: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized statline project at %s\n", dir)
	return nil
}
