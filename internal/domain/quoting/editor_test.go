package quoting

import (
	"errors"
	"testing"

	"arclean_orcamentos/internal/domain/entities"
)

func assertConsistent(t *testing.T, q entities.Quote) {
	t.Helper()
	var sum float64
	for i, it := range q.Items {
		if it.Subtotal != it.Qty*it.UnitPrice {
			t.Fatalf("item %d subtotal %v != %v", i, it.Subtotal, it.Qty*it.UnitPrice)
		}
		sum += it.Subtotal
	}
	if q.Subtotal != sum {
		t.Fatalf("subtotal %v != %v", q.Subtotal, sum)
	}
	if q.Total != ComputeTotals(q).Total {
		t.Fatalf("total %v out of date", q.Total)
	}
}

func TestEditor_ItemMutationsRecalculate(t *testing.T) {
	entry := entities.CatalogEntry{ID: "svc-0013", Name: "Recarga", Category: "Corretiva", Subcategory: "Gás", Unit: "kg", DefaultPrice: 120}
	q := entities.Quote{DiscountType: entities.DiscountAbsolute}

	AddBlankItem(&q)
	assertConsistent(t, q)
	if q.Items[0].Unit != DefaultItemUnit || q.Items[0].Qty != 1 {
		t.Fatalf("unexpected blank item: %+v", q.Items[0])
	}

	if _, err := SelectCatalogEntry(&q, 0, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, q)
	if q.Items[0].ServiceID != "svc-0013" || q.Items[0].UnitPrice != 120 || q.Subtotal != 120 {
		t.Fatalf("catalog snapshot not applied: %+v", q.Items[0])
	}

	if _, err := SetQty(&q, 0, 2.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, q)
	if q.Subtotal != 300 {
		t.Fatalf("expected 300, got %v", q.Subtotal)
	}

	AddItem(&q, entities.LineItem{ServiceName: "Visita", Qty: 1, UnitPrice: 50})
	if _, err := SetUnitPrice(&q, 1, 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, q)

	SetDiscount(&q, 10, entities.DiscountPercentage)
	SetTaxes(&q, 4)
	SetTravelFee(&q, 6)
	assertConsistent(t, q)
	if q.Total != 360-36+4+6 {
		t.Fatalf("unexpected total %v", q.Total)
	}

	if _, err := RemoveItem(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertConsistent(t, q)
	if len(q.Items) != 1 || q.Items[0].ServiceName != "Visita" {
		t.Fatalf("unexpected items after remove: %+v", q.Items)
	}
}

func TestEditor_SnapshotIndependentOfCatalog(t *testing.T) {
	entry := entities.CatalogEntry{ID: "svc-1", Name: "Limpeza", DefaultPrice: 90}
	q := entities.Quote{}
	AddItem(&q, ItemFromCatalog(entry, 1))

	entry.Name = "Limpeza premium"
	entry.DefaultPrice = 150

	if q.Items[0].ServiceName != "Limpeza" || q.Items[0].UnitPrice != 90 {
		t.Fatalf("item followed catalog edit: %+v", q.Items[0])
	}
}

func TestEditor_MoveItem(t *testing.T) {
	q := entities.Quote{Items: []entities.LineItem{{ServiceName: "a"}, {ServiceName: "b"}, {ServiceName: "c"}}}

	if _, err := MoveItem(&q, 0, Up); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Items[0].ServiceName != "a" {
		t.Fatalf("moving first item up must be a no-op")
	}

	if _, err := MoveItem(&q, 0, Down); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Items[0].ServiceName != "b" || q.Items[1].ServiceName != "a" {
		t.Fatalf("unexpected order: %+v", q.Items)
	}

	if _, err := MoveItem(&q, 2, Down); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Items[2].ServiceName != "c" {
		t.Fatalf("moving last item down must be a no-op")
	}
}

func TestEditor_IndexOutOfRange(t *testing.T) {
	q := entities.Quote{}
	if _, err := SetQty(&q, 0, 1); !errors.Is(err, ErrItemIndex) {
		t.Fatalf("expected ErrItemIndex, got %v", err)
	}
	if _, err := RemoveItem(&q, -1); !errors.Is(err, ErrItemIndex) {
		t.Fatalf("expected ErrItemIndex, got %v", err)
	}
	if _, err := MoveItem(&q, 3, Up); !errors.Is(err, ErrItemIndex) {
		t.Fatalf("expected ErrItemIndex, got %v", err)
	}
}

func TestLookupCatalogEntry(t *testing.T) {
	catalog := map[string]entities.CatalogEntry{"svc-1": {ID: "svc-1", Name: "x"}}
	lookup := func(id string) (entities.CatalogEntry, bool) {
		e, ok := catalog[id]
		return e, ok
	}

	if _, ok := LookupCatalogEntry(entities.LineItem{ServiceName: "manual"}, lookup); ok {
		t.Fatalf("manual item must not resolve")
	}
	if e, ok := LookupCatalogEntry(entities.LineItem{ServiceID: "svc-1"}, lookup); !ok || e.Name != "x" {
		t.Fatalf("expected svc-1, got %+v %v", e, ok)
	}
	if _, ok := LookupCatalogEntry(entities.LineItem{ServiceID: "svc-gone"}, lookup); ok {
		t.Fatalf("deleted entry must not resolve")
	}
}
