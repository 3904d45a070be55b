package report

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-ledger/tally/internal/model"
)

// MonthTotals holds one month's accumulated income and expense.
type MonthTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// IsZero reports whether neither side has accumulated anything.
func (m MonthTotals) IsZero() bool {
	return m.Income.IsZero() && m.Expense.IsZero()
}

// Report is a snapshot of the ledger's totals.
type Report struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal

	// Months is indexed by month-1 and accumulates across all years.
	Months [12]MonthTotals

	// HighestActiveMonth is the largest 1-based month with a nonzero
	// bucket, or 0 when no record landed in any month.
	HighestActiveMonth int
}

// Breakdown returns the months January..HighestActiveMonth. It is empty
// when no month is active.
func (r Report) Breakdown() []MonthTotals {
	out := make([]MonthTotals, r.HighestActiveMonth)
	copy(out, r.Months[:r.HighestActiveMonth])
	return out
}

// Aggregate computes a Report from records. Records whose date has no
// usable month still count toward the totals.
func Aggregate(records []model.Record) Report {
	rep := Report{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for i := range rep.Months {
		rep.Months[i] = MonthTotals{Income: decimal.Zero, Expense: decimal.Zero}
	}

	for _, rec := range records {
		month, ok := Month(rec.Date)
		switch rec.Kind {
		case model.KindIncome:
			rep.TotalIncome = rep.TotalIncome.Add(rec.Amount)
			if ok {
				rep.Months[month-1].Income = rep.Months[month-1].Income.Add(rec.Amount)
			}
		default:
			rep.TotalExpense = rep.TotalExpense.Add(rec.Amount)
			if ok {
				rep.Months[month-1].Expense = rep.Months[month-1].Expense.Add(rec.Amount)
			}
		}
	}

	rep.Balance = rep.TotalIncome.Sub(rep.TotalExpense)
	for i := len(rep.Months) - 1; i >= 0; i-- {
		if !rep.Months[i].IsZero() {
			rep.HighestActiveMonth = i + 1
			break
		}
	}
	return rep
}

// Month extracts the month from a "<year>-<month>-<day>" date. It reports
// false unless all three parts are integers and the month is 1..12. The
// day may carry trailing text.
func Month(date string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(date), "-", 3)
	if len(parts) != 3 {
		return 0, false
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if !startsWithDigit(parts[2]) {
		return 0, false
	}
	if month < 1 || month > 12 {
		return 0, false
	}
	return month, true
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
