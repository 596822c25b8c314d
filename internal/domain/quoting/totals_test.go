package quoting

import (
	"testing"

	"arclean_orcamentos/internal/domain/entities"
)

func TestComputeTotals(t *testing.T) {
	item := func(qty, price float64) entities.LineItem {
		return entities.LineItem{ServiceName: "svc", Qty: qty, UnitPrice: price}
	}

	cases := []struct {
		name         string
		quote        entities.Quote
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:         "percent discount",
			quote:        entities.Quote{Items: []entities.LineItem{item(2, 50)}, Discount: 10, DiscountType: entities.DiscountPercentage},
			wantSubtotal: 100,
			wantDiscount: 10,
			wantTotal:    90,
		},
		{
			name:         "zero discount with fees",
			quote:        entities.Quote{Items: []entities.LineItem{item(1, 80), item(3, 10)}, DiscountType: entities.DiscountAbsolute, Taxes: 5, TravelFee: 15},
			wantSubtotal: 110,
			wantDiscount: 0,
			wantTotal:    130,
		},
		{
			name:         "hundred percent",
			quote:        entities.Quote{Items: []entities.LineItem{item(4, 25)}, Discount: 100, DiscountType: entities.DiscountPercentage},
			wantSubtotal: 100,
			wantDiscount: 100,
			wantTotal:    0,
		},
		{
			name:         "absolute discount above subtotal goes negative",
			quote:        entities.Quote{Items: []entities.LineItem{item(1, 30)}, Discount: 50, DiscountType: entities.DiscountAbsolute, TravelFee: 5},
			wantSubtotal: 30,
			wantDiscount: 50,
			wantTotal:    -15,
		},
		{
			name:         "no items",
			quote:        entities.Quote{Taxes: 2},
			wantSubtotal: 0,
			wantDiscount: 0,
			wantTotal:    2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.quote)
			if got.Subtotal != tc.wantSubtotal || got.DiscountAmount != tc.wantDiscount || got.Total != tc.wantTotal {
				t.Fatalf("unexpected totals: %+v", got)
			}
		})
	}
}

func TestRecalculate_KeepsDerivedFieldsConsistent(t *testing.T) {
	q := entities.Quote{
		Items: []entities.LineItem{
			{ServiceName: "a", Qty: 1.5, UnitPrice: 33.33, Subtotal: 999},
			{ServiceName: "b", Qty: 2, UnitPrice: 12.1},
		},
		Discount:     7.5,
		DiscountType: entities.DiscountPercentage,
		Taxes:        3.2,
		TravelFee:    20,
	}

	got := Recalculate(&q)

	var sum float64
	for i, it := range q.Items {
		if it.Subtotal != it.Qty*it.UnitPrice {
			t.Fatalf("item %d subtotal %v != %v", i, it.Subtotal, it.Qty*it.UnitPrice)
		}
		sum += it.Subtotal
	}
	if q.Subtotal != sum {
		t.Fatalf("quote subtotal %v != sum of items %v", q.Subtotal, sum)
	}
	wantTotal := q.Subtotal - q.Subtotal*q.Discount/100 + q.Taxes + q.TravelFee
	if q.Total != wantTotal || got.Total != wantTotal {
		t.Fatalf("total %v, want %v", q.Total, wantTotal)
	}
}

func TestDiscountAmount(t *testing.T) {
	if got := DiscountAmount(200, 15, entities.DiscountAbsolute); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
	if got := DiscountAmount(200, 15, entities.DiscountPercentage); got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}
	if got := DiscountAmount(200, 0, entities.DiscountPercentage); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
