// Package money implements fixed-point arithmetic for certificate balances.
//
// Values are held at InternalScale fractional digits; rounding to DisplayScale only
// happens at presentation boundaries (Display, Round2).
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	InternalScale int32 = 4
	DisplayScale  int32 = 2
)

var ErrInvalidAmount = errors.New("invalid amount")

type Amount struct {
	d decimal.Decimal
}

func Zero() Amount {
	return Amount{d: decimal.Zero}
}

// New normalises d to the internal scale, rounding half away from zero.
func New(d decimal.Decimal) Amount {
	return Amount{d: d.Round(InternalScale)}
}

func FromInt(units int64) Amount {
	return Amount{d: decimal.NewFromInt(units)}
}

// FromString is the strict parser used where malformed input must be rejected.
func FromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return New(d), nil
}

// MustFromString panics on malformed input. Intended for constants and tests.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic("money: " + err.Error() + ": " + s)
	}
	return a
}

// Parse tolerates noisy upstream form data: everything except digits and the first
// decimal point is dropped ("$1,234.50 USD" -> 1234.50). Empty or malformed input
// yields zero instead of an error. Signs are dropped too, so the result is never negative.
func Parse(input string) Amount {
	var b strings.Builder
	seenPoint := false
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		case r == '.':
			// a second point ends the number
			return parseCleaned(b.String())
		}
	}
	return parseCleaned(b.String())
}

func parseCleaned(s string) Amount {
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "." {
		return Zero()
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero()
	}
	return New(d)
}

func Add(a, b Amount) Amount { return a.Add(b) }

func Subtract(a, b Amount) Amount { return a.Sub(b) }

// Compare returns -1, 0 or 1.
func Compare(a, b Amount) int { return a.d.Cmp(b.d) }

func Min(a, b Amount) Amount {
	if Compare(a, b) <= 0 {
		return a
	}
	return b
}

func (a Amount) Add(b Amount) Amount       { return New(a.d.Add(b.d)) }
func (a Amount) Sub(b Amount) Amount       { return New(a.d.Sub(b.d)) }
func (a Amount) Cmp(b Amount) int          { return a.d.Cmp(b.d) }
func (a Amount) Equal(b Amount) bool       { return a.d.Equal(b.d) }
func (a Amount) IsZero() bool              { return a.d.IsZero() }
func (a Amount) IsPositive() bool          { return a.d.IsPositive() }
func (a Amount) IsNegative() bool          { return a.d.IsNegative() }
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }
func (a Amount) LessThan(b Amount) bool    { return a.d.LessThan(b.d) }

func (a Amount) Decimal() decimal.Decimal { return a.d }

// Round2 rounds half-up to the display scale (half away from zero; identical for
// the non-negative values money takes here).
func (a Amount) Round2() Amount {
	return Amount{d: a.d.Round(DisplayScale)}
}

// Display renders the amount with exactly two decimals: 10.555 -> "10.56".
func (a Amount) Display() string {
	return a.d.StringFixed(DisplayScale)
}

// String renders the full internal precision, e.g. "10.5550".
func (a Amount) String() string {
	return a.d.StringFixed(InternalScale)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
