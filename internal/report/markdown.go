package report

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/tally-ledger/tally/internal/model"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "TWD"

// FormatMoney displays amount in currency, e.g. "$1,000.00". An empty
// code means DefaultCurrency. Unknown codes and amounts past
// model.MaxAmountDigits fall back to a plain two-digit number.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	cur := money.GetCurrency(currency)
	if cur == nil || !model.AmountInRange(amount) {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return amount.StringFixed(2)
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// SummaryMarkdown renders the totals and the monthly breakdown.
func SummaryMarkdown(r Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Amount"},
		Rows: [][]string{
			{"Total income", FormatMoney(r.TotalIncome, currency)},
			{"Total expense", FormatMoney(r.TotalExpense, currency)},
			{md.Bold("Balance"), md.Bold(FormatMoney(r.Balance, currency))},
		},
	})

	doc.H2("Monthly")
	months := r.Breakdown()
	if len(months) == 0 {
		doc.PlainText("No dated records.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Income", "Expense", "Net"},
		Rows:      [][]string{},
	}
	for i, m := range months {
		table.Rows = append(table.Rows, []string{
			monthNames[i],
			FormatMoney(m.Income, currency),
			FormatMoney(m.Expense, currency),
			FormatMoney(m.Income.Sub(m.Expense), currency),
		})
	}
	doc.Table(table)

	return doc.String()
}

// RecordsMarkdown renders the ledger listing with ordinals.
func RecordsMarkdown(entries []model.Entry, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Records")
	if len(entries) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", "Date", "Kind", "Description", "Amount"},
		Rows:      [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.Ordinal),
			e.Record.Date,
			e.Record.Kind.String(),
			e.Record.Description,
			FormatMoney(e.Record.Amount, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
