package spreadsheet

import (
	"bytes"
	"testing"

	"arclean_orcamentos/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func readCells(t *testing.T, raw []byte, cells map[string]string) {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	raws := excelize.Options{RawCellValue: true}
	for cell, want := range cells {
		got, err := f.GetCellValue(SheetName, cell, raws)
		if err != nil {
			t.Fatalf("%s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("%s: expected %q, got %q", cell, want, got)
		}
	}
}

func TestQuoteWorkbook(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		q := entities.Quote{
			OSNumber: "OS-2025-0003",
			Date:     "2025-06-15",
			Client:   entities.Client{Name: "Maria", Phone: "(11) 99999-0000"},
			Items: []entities.LineItem{
				{ServiceName: "Limpeza de split", Category: "Manutenção", Unit: "unidade", Qty: 2, UnitPrice: 50, Subtotal: 100},
			},
			Subtotal:     100,
			Discount:     10,
			DiscountType: entities.DiscountPercentage,
			TravelFee:    30,
			Total:        120,
			Observations: "Pagamento na entrega",
			Validity:     7,
		}

		raw, err := QuoteWorkbook(entities.DefaultCompany(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		readCells(t, raw, map[string]string{
			"A1":  "ArClean",
			"B5":  "OS-2025-0003",
			"E5":  "15/06/2025",
			"B7":  "Maria",
			"A11": "Serviço",
			"A12": "Limpeza de split",
			"C12": "2",
			"F12": "100",
			"E14": "Subtotal",
			"F14": "100",
			"F15": "10",
			"F17": "30",
			"E18": "Total",
			"F18": "120",
			"B20": "Pagamento na entrega",
			"B21": "7 dias",
		})
	})

	t.Run("prints stored totals", func(t *testing.T) {
		// Restored from a backup: stored values disagree with the items.
		q := entities.Quote{
			OSNumber:     "OS-2024-0090",
			Date:         "2024-11-02",
			Client:       entities.Client{Name: "João"},
			Items:        []entities.LineItem{{ServiceName: "Carga de gás", Qty: 1, UnitPrice: 120, Subtotal: 100}},
			Subtotal:     100,
			Discount:     10,
			DiscountType: entities.DiscountAbsolute,
			Total:        90,
			Validity:     7,
		}

		raw, err := QuoteWorkbook(entities.DefaultCompany(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		readCells(t, raw, map[string]string{
			"E12": "120",
			"F12": "100",
			"F14": "100",
			"F15": "10",
			"F18": "90",
		})
	})
}
