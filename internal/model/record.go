package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind classifies a record as money in or money out.
type Kind int

const (
	KindIncome  Kind = 0
	KindExpense Kind = 1
)

const (
	// MaxDescription is the longest description kept, in characters.
	MaxDescription = 49
	// DateLen is the length of a canonical YYYY-MM-DD date.
	DateLen = 10
	// DateFormat is the canonical textual date layout.
	DateFormat = "2006-01-02"
	// MaxAmountDigits is the most integer digits an amount may have.
	MaxAmountDigits = 15
)

func (k Kind) String() string {
	if k == KindIncome {
		return "income"
	}
	return "expense"
}

// ParseKind accepts income/expense, in/out or 0/1, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "in", "0":
		return KindIncome, nil
	case "expense", "out", "1":
		return KindExpense, nil
	}
	return 0, fmt.Errorf("unknown kind %q (want income or expense)", s)
}

// Record is one ledger entry.
type Record struct {
	Kind        Kind
	Description string          // at most MaxDescription characters
	Amount      decimal.Decimal // never negative; direction comes from Kind
	Date        string          // "YYYY-MM-DD", not calendar-validated
}

// Entry is a record together with its 1-based position in the ledger.
// Ordinals shift whenever an earlier record is deleted.
type Entry struct {
	Ordinal int
	Record  Record
}

// Input holds the raw, caller-supplied fields of a record before the
// construction rules are applied. It doubles as the edit buffer.
type Input struct {
	Kind        Kind
	Description string
	Amount      string
	Date        string
}

// NewRecord applies the construction rules: description truncation,
// best-effort amount parsing and, when no date is given, now's calendar
// date. Callers pass local time.
func NewRecord(in Input, now time.Time) Record {
	date := in.Date
	if date == "" {
		date = now.Format(DateFormat)
	}
	return Record{
		Kind:        in.Kind,
		Description: TruncateDescription(in.Description),
		Amount:      ParseAmount(in.Amount),
		Date:        TruncateDate(date),
	}
}

// Input returns the record's fields in editable form.
func (r Record) Input() Input {
	return Input{
		Kind:        r.Kind,
		Description: r.Description,
		Amount:      r.Amount.StringFixed(2),
		Date:        r.Date,
	}
}

// TruncateDescription cuts s to MaxDescription characters.
func TruncateDescription(s string) string {
	return truncate(s, MaxDescription)
}

// TruncateDate cuts s to DateLen characters.
func TruncateDate(s string) string {
	return truncate(s, DateLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// ParseAmount reads the longest numeric prefix of s, the way atof does.
// Text with no numeric prefix yields zero. The result is never negative.
func ParseAmount(s string) decimal.Decimal {
	d, _ := ScanAmount(s)
	return d
}

// ScanAmount is ParseAmount that also reports whether s had a numeric
// prefix at all. Amounts with more than MaxAmountDigits integer digits are
// rejected; amounts too small to show in cents read as zero.
func ScanAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	mantissa, exp, ok := numericPrefix(s)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(mantissa)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsZero() {
		return decimal.Zero, true
	}

	d = d.Shift(exp)
	switch mag := magnitude(d); {
	case mag > MaxAmountDigits:
		return decimal.Zero, false
	case mag < -3:
		return decimal.Zero, true
	}
	return d.Abs(), true
}

// AmountInRange reports whether d has at most MaxAmountDigits integer
// digits and no more than MaxAmountDigits leading fractional zeros.
func AmountInRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	mag := magnitude(d)
	return mag <= MaxAmountDigits && mag >= -MaxAmountDigits
}

// magnitude is the power of ten just above |d|: 3 for 123.4, -1 for 0.05.
func magnitude(d decimal.Decimal) int64 {
	return int64(d.NumDigits()) + int64(d.Exponent())
}

// maxExponent caps a parsed exponent. Anything past it is out of range
// whatever the mantissa.
const maxExponent = 1 << 20

// numericPrefix splits the longest prefix of s that forms a decimal number
// into its mantissa (optional sign, digits with at most one point) and an
// optional exponent, saturated at ±maxExponent.
func numericPrefix(s string) (string, int32, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return "", 0, false
	}

	// decimal.NewFromString rejects a trailing point ("12.").
	mantissa := strings.TrimSuffix(s[:i], ".")
	mantissa = strings.TrimPrefix(mantissa, "+")

	// Exponent only counts if at least one digit follows it.
	var exp int32
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		neg := false
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			neg = s[j] == '-'
			j++
		}
		for ; j < len(s) && isDigit(s[j]); j++ {
			if exp < maxExponent {
				exp = exp*10 + int32(s[j]-'0')
			}
		}
		exp = min(exp, maxExponent)
		if neg {
			exp = -exp
		}
	}
	return mantissa, exp, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
