package quoting

import (
	"fmt"
	"net/url"
	"strings"

	"arclean_orcamentos/internal/domain/entities"
)

const whatsAppSendURL = "https://api.whatsapp.com/send"

// ShareMessage is the plain-text summary sent alongside an exported quote.
func ShareMessage(brand string, q entities.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s - Orçamento %s*\n\n", brand, q.OSNumber)
	fmt.Fprintf(&b, "Cliente: %s\n", q.Client.Name)
	fmt.Fprintf(&b, "Data: %s\n\n", FormatDate(q))
	fmt.Fprintf(&b, "%d serviço(s)\n", len(q.Items))
	fmt.Fprintf(&b, "Total: %s", FormatCurrency(q.Total))
	if obs := strings.TrimSpace(q.Observations); obs != "" {
		fmt.Fprintf(&b, "\n\nObs: %s", obs)
	}
	return b.String()
}

// WhatsAppLink builds a click-to-chat link. An empty phone lets the user pick
// the contact; otherwise only its digits are kept.
func WhatsAppLink(phone, message string) string {
	v := url.Values{}
	if digits := onlyDigits(phone); digits != "" {
		v.Set("phone", digits)
	}
	v.Set("text", message)
	return whatsAppSendURL + "?" + v.Encode()
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// QuoteFileName names a per-quote export, e.g. Orcamento-ArClean-OS-2025-0001.xlsx.
func QuoteFileName(brand string, q entities.Quote, ext string) string {
	return fmt.Sprintf("Orcamento-%s-%s.%s", brand, q.OSNumber, ext)
}
