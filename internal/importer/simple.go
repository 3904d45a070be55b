package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-ledger/tally/internal/model"
)

// SimpleParser reads a three-column "date,description,amount" CSV with a
// header row. Dates are YYYY-MM-DD; negative amounts are expenses.
type SimpleParser struct{}

const (
	simpleNumFields = 3
	simpleColDate   = 0
	simpleColDesc   = 1
	simpleColAmount = 2
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a simple CSV and returns BankTransactions.
func (p *SimpleParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	return readRows(r, "simple", simpleNumFields, parseSimpleRow)
}

func parseSimpleRow(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(model.DateFormat, rec[simpleColDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}
	amount, err := decimal.NewFromString(rec[simpleColAmount])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[simpleColAmount], err)
	}
	if !model.AmountInRange(amount) {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: out of range", rec[simpleColAmount])
	}
	return model.BankTransaction{
		Date:        date,
		Description: rec[simpleColDesc],
		Amount:      amount,
	}, nil
}
