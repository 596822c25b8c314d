package quoting

import (
	"errors"
	"testing"

	"arclean_orcamentos/internal/domain/entities"
)

func TestValidateForFinalize(t *testing.T) {
	valid := func() entities.Quote {
		return entities.Quote{
			Client: entities.Client{Name: "Maria"},
			Items:  []entities.LineItem{{ServiceName: "Limpeza", Qty: 1, UnitPrice: 0}},
		}
	}

	cases := []struct {
		name      string
		mutate    func(q *entities.Quote)
		wantField string
	}{
		{name: "valid with zero price", mutate: func(q *entities.Quote) {}},
		{name: "missing client", mutate: func(q *entities.Quote) { q.Client.Name = "  " }, wantField: "client.name"},
		{name: "no items", mutate: func(q *entities.Quote) { q.Items = nil }, wantField: "items"},
		{name: "blank name", mutate: func(q *entities.Quote) { q.Items[0].ServiceName = "" }, wantField: "items[0].serviceName"},
		{name: "zero qty", mutate: func(q *entities.Quote) { q.Items[0].Qty = 0 }, wantField: "items[0].qty"},
		{name: "negative price", mutate: func(q *entities.Quote) { q.Items[0].UnitPrice = -1 }, wantField: "items[0].unitPrice"},
		{
			name: "first offending item wins",
			mutate: func(q *entities.Quote) {
				q.Items = append(q.Items, entities.LineItem{ServiceName: "x", Qty: -1}, entities.LineItem{})
			},
			wantField: "items[1].qty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid()
			tc.mutate(&q)
			err := ValidateForFinalize(q)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrQuoteInvalid) {
				t.Fatalf("expected ErrQuoteInvalid, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.wantField {
				t.Fatalf("expected field %s, got %v", tc.wantField, err)
			}
		})
	}
}
