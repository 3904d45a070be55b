package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/tally-ledger/tally/internal/buildinfo"
	"github.com/tally-ledger/tally/internal/config"
	"github.com/tally-ledger/tally/internal/journal"
	"github.com/tally-ledger/tally/internal/ledger"
	"github.com/tally-ledger/tally/internal/logging"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	filePath   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal income and expense ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().StringVar(&g.filePath, "file", "", "records file (overrides config)")

	rootCmd.AddCommand(
		newInitCommand(g),
		newAddCommand(g),
		newListCommand(g),
		newEditCommand(g),
		newDeleteCommand(g),
		newBalanceCommand(g),
		newReportCommand(g),
		newImportCommand(g),
	)

	return rootCmd
}

// loadConfig reads the config file (defaults if absent), then applies
// environment and flag overrides.
func (g *globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	if g.filePath != "" {
		cfg.Storage.Path = g.filePath
	}
	return cfg, nil
}

// session is everything a subcommand needs to act on the ledger.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *ledger.Engine
}

func (g *globals) open(cmd *cobra.Command) (*session, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		logger.Warn("falling back to info logging", "error", err)
	}

	engine := ledger.Open(journal.NewFile(cfg.Storage.Path), ledger.WithLogger(logger))
	logger.Debug("ledger opened", "path", cfg.Storage.Path, "records", len(engine.List()))

	return &session{cfg: cfg, logger: logger, engine: engine}, nil
}

// printMarkdown renders doc for the terminal, or writes it untouched when
// raw is set.
func printMarkdown(w io.Writer, doc, style string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, doc)
		return err
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
