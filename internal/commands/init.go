package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-ledger/tally/internal/config"
	"github.com/tally-ledger/tally/internal/journal"
)

func newInitCommand(g *globals) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and an empty records file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if currency != "" {
				cfg.Report.Currency = currency
			}
			if g.filePath != "" {
				cfg.Storage.Path = g.filePath
			}
			return runInit(cmd, g.configPath, cfg)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "display currency code (default TWD)")

	return cmd
}

func runInit(cmd *cobra.Command, configPath string, cfg *config.Config) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", configPath, err)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Leave an existing records file alone.
	records := journal.NewFile(cfg.Storage.Path)
	if _, err := os.Stat(records.Path); errors.Is(err, fs.ErrNotExist) {
		if err := records.Save(nil); err != nil {
			return fmt.Errorf("creating records file: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized tally ledger (config %s, records %s)\n", configPath, cfg.Storage.Path)
	return nil
}
