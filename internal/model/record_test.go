package model

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000", "1000"},
		{"12.50", "12.5"},
		{"  42.10", "42.1"},
		{"12abc", "12"},
		{"3.14.15", "3.14"},
		{"-7.25", "7.25"},
		{"+8", "8"},
		{".5", "0.5"},
		{"1e3", "1000"},
		{"2e", "2"},
		{"abc", "0"},
		{"", "0"},
		{"-", "0"},
		{".", "0"},
		{"1e14", "100000000000000"},
		{"999999999999999.99", "999999999999999.99"},
		{"1e-5", "0"},
		{"0.004", "0.004"},
		{"1e300000000", "0"},
		{"1e-300000000", "0"},
		{"0e300000000", "0"},
		{"1e99999999999999999999", "0"},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.in)
		assert.True(t, got.Equal(dec(tt.want)), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestScanAmount_Range(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"999999999999999", true},
		{"1000000000000000", false},
		{"1e15", false},
		{"1e300000000", false},
		{"-1e300000000", false},
		{"1e-300000000", true},
		{"0e300000000", true},
	}
	for _, tt := range tests {
		_, ok := ScanAmount(tt.in)
		assert.Equal(t, tt.wantOK, ok, "ScanAmount(%q)", tt.in)
	}
}

func TestNewRecord_HugeExponentFormats(t *testing.T) {
	rec := NewRecord(Input{Description: "x", Amount: "1e300000000", Date: "2025-01-01"}, time.Now())
	assert.Equal(t, "0.00", rec.Input().Amount)

	rec = NewRecord(Input{Description: "x", Amount: "5e-300000000", Date: "2025-01-01"}, time.Now())
	assert.Equal(t, "0.00", rec.Input().Amount)
}

func TestAmountInRange(t *testing.T) {
	assert.True(t, AmountInRange(decimal.Zero))
	assert.True(t, AmountInRange(dec("-999999999999999.99")))
	assert.True(t, AmountInRange(dec("0.01")))
	assert.False(t, AmountInRange(dec("1e15")))
	assert.False(t, AmountInRange(decimal.New(1, 300000000)))
	assert.False(t, AmountInRange(decimal.New(1, -300000000)))
}

func TestNewRecord_Truncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	rec := NewRecord(Input{
		Kind:        KindExpense,
		Description: long,
		Amount:      "10",
		Date:        "2025-03-04T10:00",
	}, time.Now())

	assert.Len(t, rec.Description, MaxDescription)
	assert.Equal(t, "2025-03-04", rec.Date)
	assert.Equal(t, KindExpense, rec.Kind)
}

func TestNewRecord_TruncatesByCharacter(t *testing.T) {
	desc := strings.Repeat("薪", 60)
	rec := NewRecord(Input{Description: desc}, time.Now())
	assert.Equal(t, MaxDescription, len([]rune(rec.Description)))
}

func TestNewRecord_DefaultDate(t *testing.T) {
	now := time.Date(2025, 7, 9, 15, 30, 0, 0, time.Local)
	rec := NewRecord(Input{Kind: KindIncome, Description: "Pay", Amount: "1000"}, now)
	assert.Equal(t, "2025-07-09", rec.Date)
	assert.True(t, rec.Amount.Equal(dec("1000")))
}

func TestNewRecord_UnparseableAmount(t *testing.T) {
	rec := NewRecord(Input{Amount: "lots"}, time.Now())
	assert.True(t, rec.Amount.IsZero())
}

func TestRecordInput(t *testing.T) {
	rec := Record{Kind: KindExpense, Description: "Rent", Amount: dec("500"), Date: "2025-01-01"}
	in := rec.Input()
	assert.Equal(t, Input{Kind: KindExpense, Description: "Rent", Amount: "500.00", Date: "2025-01-01"}, in)

	// Rebuilding from the edit buffer yields the same record.
	assert.Equal(t, rec.Date, NewRecord(in, time.Now()).Date)
	assert.True(t, rec.Amount.Equal(NewRecord(in, time.Now()).Amount))
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"income", "IN", "0", " Income "} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, KindIncome, k, s)
	}
	for _, s := range []string{"expense", "out", "1"} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, KindExpense, k, s)
	}
	_, err := ParseKind("transfer")
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "income", KindIncome.String())
	assert.Equal(t, "expense", KindExpense.String())
}

func TestBankTransactionRecord(t *testing.T) {
	date := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)

	out := BankTransaction{Date: date, Description: "GITHUB", Amount: dec("-4.00")}.Record()
	assert.Equal(t, KindExpense, out.Kind)
	assert.True(t, out.Amount.Equal(dec("4")))
	assert.Equal(t, "2025-01-03", out.Date)

	in := BankTransaction{Date: date, Description: "STRIPE TRANSFER", Amount: dec("1500.00")}.Record()
	assert.Equal(t, KindIncome, in.Kind)
	assert.True(t, in.Amount.Equal(dec("1500")))
}
