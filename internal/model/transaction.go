package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Type        string          // bank transaction type (ACH_DEBIT, etc.)
}

// Record converts the bank row into a ledger record. The sign of the
// amount selects the kind; the stored amount is its magnitude.
func (t BankTransaction) Record() Record {
	kind := KindIncome
	if t.Amount.IsNegative() {
		kind = KindExpense
	}
	return Record{
		Kind:        kind,
		Description: TruncateDescription(t.Description),
		Amount:      t.Amount.Abs(),
		Date:        t.Date.Format(DateFormat),
	}
}
