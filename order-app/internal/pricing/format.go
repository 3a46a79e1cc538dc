package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Formatter struct {
	Symbol           string
	DecimalSeparator string
	GroupSeparator   string
}

// BRL is the layout the app has always displayed: R$ 1.234,56.
var BRL = Formatter{Symbol: "R$", DecimalSeparator: ",", GroupSeparator: "."}

func NewFormatter(symbol string) Formatter {
	f := BRL
	if symbol != "" {
		f.Symbol = symbol
	}
	return f
}

// Format renders amount with two decimal places, rounding half away from zero.
func (f Formatter) Format(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteString("-")
	}
	if f.Symbol != "" {
		b.WriteString(f.Symbol)
		b.WriteString(" ")
	}
	b.WriteString(groupThousands(integer, f.GroupSeparator))
	b.WriteString(f.DecimalSeparator)
	b.WriteString(fraction)
	return b.String()
}

// FormatValue formats with the default BRL layout.
func FormatValue(amount decimal.Decimal) string {
	return BRL.Format(amount)
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
