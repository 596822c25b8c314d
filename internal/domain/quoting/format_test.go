package quoting

import (
	"strings"
	"testing"
	"time"

	"arclean_orcamentos/internal/domain/entities"
)

func TestOSNumber(t *testing.T) {
	if got := FormatOSNumber(1, 2025); got != "OS-2025-0001" {
		t.Fatalf("expected OS-2025-0001, got %s", got)
	}
	if got := FormatOSNumber(432, 2026); got != "OS-2026-0432" {
		t.Fatalf("expected OS-2026-0432, got %s", got)
	}

	year, seq, ok := ParseOSNumber("OS-2025-0042")
	if !ok || year != 2025 || seq != 42 {
		t.Fatalf("unexpected parse: %d %d %v", year, seq, ok)
	}

	for _, bad := range []string{"", "OS-2025-42", "os-2025-0042", "OS-2025-00042", " OS-2025-0042", "OS-25-0042", "OS-2025-0042x"} {
		if _, _, ok := ParseOSNumber(bad); ok {
			t.Fatalf("expected no match for %q", bad)
		}
	}

	if _, _, ok := ParseOSNumber(FormatOSNumber(10000, 2025)); ok {
		t.Fatalf("five digit sequence must not parse")
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:           "R$ 0,00",
		90:          "R$ 90,00",
		1234.5:      "R$ 1.234,50",
		1234567.891: "R$ 1.234.567,89",
		-15:         "-R$ 15,00",
		2.675:       "R$ 2,68",
		999.999:     "R$ 1.000,00",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(entities.Quote{Date: "2025-03-09"}); got != "09/03/2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatDate(entities.Quote{Date: "2025-03-09T14:00:00.000Z"}); got != "09/03/2025" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatDate(entities.Quote{Date: "ontem"}); got != "ontem" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := Today(time.Date(2025, 1, 2, 23, 0, 0, 0, time.UTC)); got != "2025-01-02" {
		t.Fatalf("unexpected today %q", got)
	}
}

func TestShare(t *testing.T) {
	q := entities.Quote{
		OSNumber:     "OS-2025-0007",
		Date:         "2025-05-20",
		Client:       entities.Client{Name: "João"},
		Items:        []entities.LineItem{{}, {}},
		Total:        350.5,
		Observations: "Pagamento na entrega",
	}

	msg := ShareMessage("ArClean", q)
	for _, want := range []string{"*ArClean - Orçamento OS-2025-0007*", "Cliente: João", "Data: 20/05/2025", "2 serviço(s)", "Total: R$ 350,50", "Obs: Pagamento na entrega"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	q.Observations = ""
	if strings.Contains(ShareMessage("ArClean", q), "Obs:") {
		t.Fatalf("empty observations must be omitted")
	}

	link := WhatsAppLink("(11) 98765-4321", "oi tudo bem")
	if link != "https://api.whatsapp.com/send?phone=11987654321&text=oi+tudo+bem" {
		t.Fatalf("unexpected link %s", link)
	}
	if link := WhatsAppLink("", "x"); link != "https://api.whatsapp.com/send?text=x" {
		t.Fatalf("unexpected link %s", link)
	}

	if got := QuoteFileName("ArClean", q, "xlsx"); got != "Orcamento-ArClean-OS-2025-0007.xlsx" {
		t.Fatalf("unexpected file name %s", got)
	}
}
