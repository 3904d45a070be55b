package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-ledger/tally/internal/id"
	"github.com/tally-ledger/tally/internal/model"
	"github.com/tally-ledger/tally/internal/report"
)

// recordFlags are the field flags shared by add and edit.
type recordFlags struct {
	kind        string
	description string
	amount      string
	date        string
}

func (f *recordFlags) register(cmd *cobra.Command, kindDefault string) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", kindDefault, "income or expense")
	cmd.Flags().StringVarP(&f.description, "desc", "d", "", "description (max 49 characters)")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 120.50")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default today)")
}

// overlay copies every flag the user set onto in.
func (f *recordFlags) overlay(cmd *cobra.Command, in model.Input) (model.Input, error) {
	if cmd.Flags().Changed("kind") {
		kind, err := model.ParseKind(f.kind)
		if err != nil {
			return in, err
		}
		in.Kind = kind
	}
	if cmd.Flags().Changed("desc") {
		in.Description = f.description
	}
	if cmd.Flags().Changed("amount") {
		in.Amount = f.amount
	}
	if cmd.Flags().Changed("date") {
		in.Date = f.date
	}
	return in, nil
}

// checkDescription refuses descriptions the records file cannot hold
// and warns about ones it cannot hold intact.
func checkDescription(cmd *cobra.Command, desc string) error {
	if strings.TrimSpace(desc) == "" {
		return errors.New("a description is required (an empty one shifts the other fields when the records file is read back)")
	}
	if strings.ContainsAny(desc, " \t") {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: the records file splits on whitespace; a description with spaces will not reload intact")
	}
	return nil
}

func newAddCommand(g *globals) *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(f.kind)
			if err != nil {
				return err
			}
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			in := model.Input{Kind: kind, Description: f.description, Amount: f.amount, Date: f.date}
			if err := checkDescription(cmd, in.Description); err != nil {
				return err
			}

			ordinal, err := s.engine.Add(in)
			if err != nil {
				return fmt.Errorf("adding record: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d\n", ordinal)
			return nil
		},
	}

	f.register(cmd, "income")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newListCommand(g *globals) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records with their ordinals and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			cur := s.cfg.Report.Currency
			rep := s.engine.Report()

			var b strings.Builder
			b.WriteString(report.RecordsMarkdown(s.engine.List(), cur))
			fmt.Fprintf(&b, "\nTotal income: %s  \nTotal expense: %s  \nBalance: %s\n",
				report.FormatMoney(rep.TotalIncome, cur),
				report.FormatMoney(rep.TotalExpense, cur),
				report.FormatMoney(rep.Balance, cur))

			return printMarkdown(cmd.OutOrStdout(), b.String(), s.cfg.Report.Style, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal rendering")

	return cmd
}

func newEditCommand(g *globals) *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:   "edit <ordinal>",
		Short: "Change fields of a record; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := id.ParseOrdinal(args[0])
			if err != nil {
				return err
			}
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			if err := s.engine.Select(index); err != nil {
				return fmt.Errorf("selecting %s: %w", id.FormatOrdinal(index), err)
			}
			buf, err := s.engine.BeginEdit()
			if err != nil {
				return err
			}

			in, err := f.overlay(cmd, buf)
			if err != nil {
				s.engine.CancelEdit()
				return err
			}
			if err := checkDescription(cmd, in.Description); err != nil {
				s.engine.CancelEdit()
				return err
			}

			if err := s.engine.CommitEdit(in); err != nil {
				s.engine.CancelEdit()
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", id.FormatOrdinal(index))
			return nil
		},
	}

	f.register(cmd, "")

	return cmd
}

func newDeleteCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <ordinal>",
		Short: "Delete a record; later ordinals shift down by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := id.ParseOrdinal(args[0])
			if err != nil {
				return err
			}
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			if err := s.engine.Delete(index); err != nil {
				return fmt.Errorf("deleting %s: %w", id.FormatOrdinal(index), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id.FormatOrdinal(index))
			return nil
		},
	}

	return cmd
}

func newBalanceCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Print total income minus total expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}
			rep := s.engine.Report()
			fmt.Fprintln(cmd.OutOrStdout(), report.FormatMoney(rep.Balance, s.cfg.Report.Currency))
			return nil
		},
	}

	return cmd
}
