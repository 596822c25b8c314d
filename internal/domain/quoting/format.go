package quoting

import (
	"strings"
	"time"

	"arclean_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders v as pt-BR reais, e.g. "R$ 1.234,56".
// Rounding to cents happens here only; stored values keep full precision.
func FormatCurrency(v float64) string {
	sign, amount := splitAmount(v)
	return sign + "R$ " + amount
}

func splitAmount(v float64) (sign, amount string) {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign, groupThousands(intPart) + "," + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate renders a quote date as DD/MM/YYYY. Unparseable dates are returned as-is.
func FormatDate(q entities.Quote) string {
	t, ok := q.Time()
	if !ok {
		return q.Date
	}
	return t.Format("02/01/2006")
}

// Today returns now as a quote date.
func Today(now time.Time) string {
	return now.Format(entities.DateLayout)
}
