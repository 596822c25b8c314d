package request

import (
	"strings"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
)

type ClientRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
}

// LineItemRequest is one quote row. A row carrying only serviceId is filled
// from the catalog entry it points to.
type LineItemRequest struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Unit        string  `json:"unit"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
}

// QuoteRequest is the editable part of a quote. Subtotals and total are
// always recomputed server-side and therefore not accepted.
type QuoteRequest struct {
	ID           string                `json:"id"`
	OSNumber     string                `json:"osNumber"`
	Date         string                `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Client       ClientRequest         `json:"client"`
	Items        []LineItemRequest     `json:"items"`
	Observations string                `json:"observations"`
	Validity     int                   `json:"validity" binding:"gte=0"`
	Discount     float64               `json:"discount"`
	DiscountType entities.DiscountType `json:"discountType"`
	Taxes        float64               `json:"taxes"`
	TravelFee    float64               `json:"travelFee"`
	Status       entities.QuoteStatus  `json:"status" binding:"omitempty,oneof=draft finalized"`
}

// CatalogLookup resolves a catalog entry id; false when the entry does not exist.
type CatalogLookup func(id string) (entities.CatalogEntry, bool)

func (r QuoteRequest) ToEntity(id string, lookup CatalogLookup) entities.Quote {
	if strings.TrimSpace(id) == "" {
		id = r.ID
	}
	q := entities.Quote{
		ID:           strings.TrimSpace(id),
		OSNumber:     r.OSNumber,
		Date:         r.Date,
		Client:       entities.Client(r.Client),
		Items:        make([]entities.LineItem, 0, len(r.Items)),
		Observations: r.Observations,
		Validity:     r.Validity,
		Discount:     r.Discount,
		DiscountType: r.DiscountType,
		Taxes:        r.Taxes,
		TravelFee:    r.TravelFee,
		Status:       r.Status,
	}
	for _, it := range r.Items {
		q.Items = append(q.Items, it.toEntity(lookup))
	}
	quoting.Recalculate(&q)
	return q
}

func (r LineItemRequest) toEntity(lookup CatalogLookup) entities.LineItem {
	item := entities.LineItem{
		ServiceID:   strings.TrimSpace(r.ServiceID),
		ServiceName: r.ServiceName,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Unit:        r.Unit,
		Qty:         r.Qty,
		UnitPrice:   r.UnitPrice,
	}
	if lookup == nil || strings.TrimSpace(item.ServiceName) != "" {
		return item
	}
	entry, ok := quoting.LookupCatalogEntry(item, lookup)
	if !ok {
		return item
	}
	snap := quoting.ItemFromCatalog(entry, item.Qty)
	if item.UnitPrice != 0 {
		snap.UnitPrice = item.UnitPrice
	}
	return snap
}
