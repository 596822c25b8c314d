package response

import (
	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
)

// QuoteResponse is a stored quote plus the display values the UI prints.
type QuoteResponse struct {
	Quote          entities.Quote `json:"quote"`
	DiscountAmount float64        `json:"discountAmount"`
	DateDisplay    string         `json:"dateDisplay"`
	TotalDisplay   string         `json:"totalDisplay"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		Quote:          q,
		DiscountAmount: quoting.DiscountAmount(q.Subtotal, q.Discount, q.DiscountType),
		DateDisplay:    quoting.FormatDate(q),
		TotalDisplay:   quoting.FormatCurrency(q.Total),
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type ShareResponse struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}
