package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-ledger/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func income(desc, amount, date string) model.Record {
	return model.Record{Kind: model.KindIncome, Description: desc, Amount: dec(amount), Date: date}
}

func expense(desc, amount, date string) model.Record {
	return model.Record{Kind: model.KindExpense, Description: desc, Amount: dec(amount), Date: date}
}

func TestAggregate_PayAndRent(t *testing.T) {
	rep := Aggregate([]model.Record{
		income("Pay", "1000.00", "2025-01-15"),
		expense("Rent", "500.00", "2025-01-01"),
	})

	assert.True(t, rep.TotalIncome.Equal(dec("1000")), "income: %s", rep.TotalIncome)
	assert.True(t, rep.TotalExpense.Equal(dec("500")), "expense: %s", rep.TotalExpense)
	assert.True(t, rep.Balance.Equal(dec("500")), "balance: %s", rep.Balance)
	assert.True(t, rep.Months[0].Income.Equal(dec("1000")))
	assert.True(t, rep.Months[0].Expense.Equal(dec("500")))
	assert.Equal(t, 1, rep.HighestActiveMonth)
	require.Len(t, rep.Breakdown(), 1)
}

func TestAggregate_Empty(t *testing.T) {
	rep := Aggregate(nil)

	assert.True(t, rep.TotalIncome.IsZero())
	assert.True(t, rep.TotalExpense.IsZero())
	assert.True(t, rep.Balance.IsZero())
	assert.Equal(t, 0, rep.HighestActiveMonth)
	assert.Empty(t, rep.Breakdown())
}

func TestAggregate_YearsShareBuckets(t *testing.T) {
	rep := Aggregate([]model.Record{
		income("Pay", "100", "2024-03-10"),
		income("Pay", "200", "2025-03-10"),
		expense("Gift", "50", "2023-11-30"),
	})

	assert.True(t, rep.Months[2].Income.Equal(dec("300")))
	assert.True(t, rep.Months[10].Expense.Equal(dec("50")))
	assert.Equal(t, 11, rep.HighestActiveMonth)
	assert.Len(t, rep.Breakdown(), 11)
}

func TestAggregate_BadDatesCountInTotalsOnly(t *testing.T) {
	records := []model.Record{
		income("Pay", "1000", "2025-02-01"),
		expense("Typo", "40", "2025-13-01"),
		expense("NoDate", "60", "someday"),
		income("Zero", "5", "2025-00-09"),
	}
	rep := Aggregate(records)

	assert.True(t, rep.TotalIncome.Equal(dec("1005")))
	assert.True(t, rep.TotalExpense.Equal(dec("100")))
	assert.True(t, rep.Balance.Equal(dec("905")))
	assert.Equal(t, 2, rep.HighestActiveMonth)

	// Bucket sum equals totals minus the unbucketed records.
	sum := decimal.Zero
	for _, m := range rep.Months {
		sum = sum.Add(m.Income).Add(m.Expense)
	}
	assert.True(t, sum.Equal(dec("1000")), "bucket sum: %s", sum)
}

func TestAggregate_BalanceInvariant(t *testing.T) {
	records := []model.Record{
		income("A", "12.34", "2025-04-01"),
		expense("B", "56.78", "2025-05-01"),
		expense("C", "0.01", "2025-06-01"),
		income("D", "999.99", "2025-07-01"),
	}
	rep := Aggregate(records)
	assert.True(t, rep.TotalIncome.Sub(rep.TotalExpense).Equal(rep.Balance))
	assert.True(t, rep.Balance.Equal(dec("955.54")), "balance: %s", rep.Balance)
}

func TestAggregate_ZeroAmountDoesNotActivateMonth(t *testing.T) {
	rep := Aggregate([]model.Record{
		income("Pay", "10", "2025-02-01"),
		expense("Nothing", "0", "2025-09-01"),
	})
	assert.Equal(t, 2, rep.HighestActiveMonth)
}

func TestAggregate_Deterministic(t *testing.T) {
	records := []model.Record{income("Pay", "10", "2025-02-01")}
	first := Aggregate(records)
	second := Aggregate(records)
	assert.True(t, first.TotalIncome.Equal(second.TotalIncome))
	assert.Equal(t, first.HighestActiveMonth, second.HighestActiveMonth)
}

func TestMonth(t *testing.T) {
	tests := []struct {
		date  string
		month int
		ok    bool
	}{
		{"2025-01-15", 1, true},
		{"2025-12-31", 12, true},
		{"2025-7-4", 7, true},
		{"2025-+1-05", 1, true},
		{"+2025-02-05", 2, true},
		{"2025-03-0x", 3, true},
		{"2025-13-01", 0, false},
		{"2025-00-01", 0, false},
		{"2025-01", 0, false},
		{"2025/01/15", 0, false},
		{"abcd-01-15", 0, false},
		{"2025-01-", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		month, ok := Month(tt.date)
		assert.Equal(t, tt.ok, ok, "Month(%q)", tt.date)
		assert.Equal(t, tt.month, month, "Month(%q)", tt.date)
	}
}
