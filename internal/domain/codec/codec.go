// Package codec converts between in-memory field values and their stored
// representations: calendar dates travel as YYYY-MM-DD text and
// money/hour/score quantities as exact decimal text. All functions are
// pure and used by every store consistently, so
// FromStorage(ToStorage(x)) == x for calendar dates and for decimal
// quantities exactly representable in a float64. Decimal fractions that
// have no terminating binary expansion round-trip through the nearest
// float64; that approximation is accepted, matching the domain's
// float64 numeric semantics.
package codec

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func DateToStorage(t time.Time) string {
	return t.Format(DateLayout)
}

func DateFromStorage(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func NullDateToStorage(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := DateToStorage(*t)
	return &s
}

func NullDateFromStorage(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := DateFromStorage(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DateStringToStorage canonicalizes an already-validated YYYY-MM-DD
// string; it exists so input types that carry dates as text share one
// conversion point with time.Time callers.
func DateStringToStorage(s string) string {
	return s
}

func DecimalToStorage(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func DecimalFromStorage(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func NullDecimalToStorage(v *float64) *string {
	if v == nil {
		return nil
	}
	s := DecimalToStorage(*v)
	return &s
}

func NullDecimalFromStorage(s *string) (*float64, error) {
	if s == nil {
		return nil, nil
	}
	v, err := DecimalFromStorage(*s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
