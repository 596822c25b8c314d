// Package quoting holds the pure quote rules: totals, finalize validation,
// line-item editing, document numbers and display formatting.
//
// Nothing in this package performs I/O.
package quoting

import "arclean_orcamentos/internal/domain/entities"

// Totals is the derived money view of a quote.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// ItemSubtotal is qty × unitPrice, unrounded.
func ItemSubtotal(item entities.LineItem) float64 {
	return item.Qty * item.UnitPrice
}

// DiscountAmount resolves the quote discount against a subtotal.
func DiscountAmount(subtotal, discount float64, kind entities.DiscountType) float64 {
	if kind == entities.DiscountPercentage {
		return subtotal * discount / 100
	}
	return discount
}

// ComputeTotals derives the totals of q from its items and adjustment fields.
// Total is not clamped: a discount larger than the subtotal yields a negative total.
func ComputeTotals(q entities.Quote) Totals {
	var subtotal float64
	for _, item := range q.Items {
		subtotal += ItemSubtotal(item)
	}
	discount := DiscountAmount(subtotal, q.Discount, q.DiscountType)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          subtotal - discount + q.Taxes + q.TravelFee,
	}
}

// Recalculate rewrites every derived field of q in place: each item's subtotal,
// then the quote subtotal and total. It must run after any change to items or
// adjustment fields and before the quote is persisted.
func Recalculate(q *entities.Quote) Totals {
	for i := range q.Items {
		q.Items[i].Subtotal = ItemSubtotal(q.Items[i])
	}
	t := ComputeTotals(*q)
	q.Subtotal = t.Subtotal
	q.Total = t.Total
	return t
}
