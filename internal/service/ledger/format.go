package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a peso amount for a ledger cell. Zero means the
// line does not apply and prints as a dash, never as ₱0.00.
func FormatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}

	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("₱")
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
