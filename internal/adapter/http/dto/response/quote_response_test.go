package response

import (
	"encoding/json"
	"testing"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	q := entities.Quote{
		ID:           "q-1",
		OSNumber:     "OS-2025-0001",
		Date:         "2025-03-09",
		Items:        []entities.LineItem{{ServiceName: "Instalação", Qty: 1, UnitPrice: 1500, Subtotal: 1500}},
		Discount:     10,
		DiscountType: entities.DiscountPercentage,
		Subtotal:     1500,
		Total:        1350,
	}

	res := FromQuote(q)
	if res.DiscountAmount != 150 || res.DateDisplay != "09/03/2025" || res.TotalDisplay != "R$ 1.350,00" {
		t.Fatalf("unexpected display fields %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["quote"].(map[string]any); !ok || decoded["totalDisplay"] != "R$ 1.350,00" {
		t.Fatalf("unexpected json %s", raw)
	}
}

func TestFromQuote_UsesStoredTotals(t *testing.T) {
	q := entities.Quote{
		ID:           "q-2",
		Date:         "2024-11-02",
		Items:        []entities.LineItem{{ServiceName: "Carga de gás", Qty: 1, UnitPrice: 120, Subtotal: 100}},
		Discount:     10,
		DiscountType: entities.DiscountPercentage,
		Subtotal:     100,
		Total:        90,
	}

	res := FromQuote(q)
	if res.DiscountAmount != 10 || res.TotalDisplay != "R$ 90,00" {
		t.Fatalf("expected display from stored totals, got %+v", res)
	}
	if res.Quote.Subtotal != 100 || res.Quote.Items[0].Subtotal != 100 {
		t.Fatalf("stored quote was modified: %+v", res.Quote)
	}
}

func TestFromDashboard(t *testing.T) {
	d := usecase.Dashboard{
		TotalQuotes:     2,
		FinalizedQuotes: 1,
		DraftQuotes:     1,
		Revenue:         1234.5,
		Recent:          []entities.Quote{{ID: "a"}, {ID: "b"}},
	}

	res := FromDashboard(d)
	if res.RevenueDisplay != "R$ 1.234,50" || len(res.Recent) != 2 || res.Recent[0].Quote.ID != "a" {
		t.Fatalf("unexpected response %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["totalQuotes"] != float64(2) {
		t.Fatalf("embedded counters missing: %s", raw)
	}
	recent, ok := decoded["recent"].([]any)
	if !ok || len(recent) != 2 {
		t.Fatalf("recent not replaced: %s", raw)
	}
	if _, ok := recent[0].(map[string]any)["quote"]; !ok {
		t.Fatalf("recent entries must be quote responses: %s", raw)
	}
}
