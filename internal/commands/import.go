package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-ledger/tally/internal/importer"
	"github.com/tally-ledger/tally/internal/ledger"
)

func newImportCommand(g *globals) *cobra.Command {
	var format string
	var inbox string

	cmd := &cobra.Command{
		Use:   "import [file.csv...]",
		Short: "Append records from bank CSV exports",
		Long: "Append records from bank CSV exports. Negative amounts become expenses, " +
			"positive amounts income. With --inbox, every CSV in the directory is imported " +
			"and moved to its processed/ subdirectory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := importer.DefaultRegistry()
			parser := reg.Get(format)
			if parser == nil {
				formats := reg.Formats()
				sort.Strings(formats)
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(formats, ", "))
			}
			if len(args) == 0 && inbox == "" {
				return errors.New("no files given (pass CSV paths or --inbox)")
			}

			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			total := 0
			for _, path := range args {
				n, err := importFile(s.engine, path, parser)
				if err != nil {
					return err
				}
				total += n
			}

			if inbox != "" {
				files, err := importer.Scan(inbox)
				if err != nil {
					return err
				}
				for _, f := range files {
					n, err := importFile(s.engine, f.Path, parser)
					if err != nil {
						return err
					}
					if err := importer.MarkProcessed(inbox, f.Name); err != nil {
						return err
					}
					s.logger.Info("imported file", "file", filepath.Base(f.Path), "records", n)
					total += n
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records (%d total)\n", total, len(s.engine.List()))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "CSV format (chase, simple)")
	cmd.Flags().StringVar(&inbox, "inbox", "", "directory of CSV files to import")

	return cmd
}

func importFile(engine *ledger.Engine, path string, parser importer.Parser) (int, error) {
	records, err := importer.ReadFile(path, parser)
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		if _, err := engine.Add(rec.Input()); err != nil {
			return 0, fmt.Errorf("importing %s: %w", path, err)
		}
	}
	return len(records), nil
}
