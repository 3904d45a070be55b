package journal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tally-ledger/tally/internal/model"
)

// FallbackDate is substituted when a stored line carries no date.
const FallbackDate = "2025-01-01"

const (
	minFields = 3
	colKind   = 0
	colDesc   = 1
	colAmount = 2
	colDate   = 3
)

// ReadRecords reads every well-formed line from r. Lines that cannot be
// parsed are skipped rather than reported.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	var records []model.Record

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rec, ok := UnmarshalRecord(sc.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

// WriteRecords writes one line per record to w.
func WriteRecords(w io.Writer, records []model.Record) error {
	bw := bufio.NewWriter(w)
	for i, rec := range records {
		if _, err := fmt.Fprintln(bw, MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// MarshalRecord formats a record as "<kind> <description> <amount> <date>".
// The description is written verbatim; embedded spaces are not escaped and
// will not survive a reload.
func MarshalRecord(rec model.Record) string {
	return fmt.Sprintf("%d %s %s %s", int(rec.Kind), rec.Description, rec.Amount.StringFixed(2), rec.Date)
}

// UnmarshalRecord parses a stored line. It reports false when the line has
// fewer than three fields or its kind or amount does not start numeric.
func UnmarshalRecord(line string) (model.Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < minFields {
		return model.Record{}, false
	}

	kind, err := strconv.Atoi(fields[colKind])
	if err != nil {
		return model.Record{}, false
	}

	amount, ok := model.ScanAmount(fields[colAmount])
	if !ok {
		return model.Record{}, false
	}

	date := FallbackDate
	if len(fields) > colDate {
		date = model.TruncateDate(fields[colDate])
	}

	rec := model.Record{
		Kind:        model.KindExpense,
		Description: model.TruncateDescription(fields[colDesc]),
		Amount:      amount,
		Date:        date,
	}
	if kind == int(model.KindIncome) {
		rec.Kind = model.KindIncome
	}
	return rec, true
}
