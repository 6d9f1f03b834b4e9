package mapper

import (
	"time"

	"github.com/ashitosh07/lambda/internal/document"
	"github.com/shopspring/decimal"
)

// DateTimeLayout is the upstream wire format for every date field.
const DateTimeLayout = "2006-01-02T15:04:05"

// DefaultText is the literal used when a text or decimal-text source is absent.
const DefaultText = "Default"

// Amount is a fixed-point decimal that marshals as a bare JSON number.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Timestamp marshals as DateTimeLayout without a zone suffix.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(DateTimeLayout) + `"`), nil
}

func (t Timestamp) String() string {
	return t.Format(DateTimeLayout)
}

// decimalText keeps the exact decimal representation of an amount, or the
// literal default when the source is absent or not a number.
func decimalText(v document.Value, def string) string {
	if d, ok := v.Decimal(); ok {
		return d.String()
	}
	return def
}

func dateText(v document.Value, def time.Time) string {
	if t, ok := v.Date(); ok {
		return t.Format(DateTimeLayout)
	}
	return def.Format(DateTimeLayout)
}
