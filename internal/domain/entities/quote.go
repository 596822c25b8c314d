package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// QuoteStatus represents the lifecycle of a quote (orçamento / ordem de serviço).
//
// Transitions are one-way: draft -> finalized.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusFinalized QuoteStatus = "finalized"
)

// DiscountType selects how Quote.Discount is interpreted.
//
// Wire values are the ones written by earlier backups ("value" / "percent").
// "absolute" and "percentage" are accepted on input as aliases; an empty value
// reads as absolute.
type DiscountType string

const (
	DiscountAbsolute   DiscountType = "value"
	DiscountPercentage DiscountType = "percent"
)

func (d *DiscountType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "value", "absolute":
		*d = DiscountAbsolute
	case "percent", "percentage":
		*d = DiscountPercentage
	default:
		return fmt.Errorf("unknown discountType %q", s)
	}
	return nil
}

// DateLayout is the calendar-date layout used by Quote.Date.
const DateLayout = "2006-01-02"

type Client struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
	Address  string `json:"address"`
}

// LineItem is one row of a quote.
//
// ServiceID is a weak back-reference to a CatalogEntry (empty when typed by hand).
// The descriptive fields are snapshots taken when the entry was selected and do not
// follow later catalog edits.
type LineItem struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Unit        string  `json:"unit"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// HasCatalogEntry reports whether the item was picked from the catalog.
func (li LineItem) HasCatalogEntry() bool {
	return li.ServiceID != ""
}

// Quote is a client-facing document with ordered line items and stored totals.
//
// Storage model:
//   - PK: id
//   - secondary indexes: date, status
//
// Subtotal and Total are derived by the quoting engine and persisted as computed.
type Quote struct {
	ID           string       `json:"id" validate:"required"`
	OSNumber     string       `json:"osNumber"`
	Date         string       `json:"date"`
	Client       Client       `json:"client"`
	Items        []LineItem   `json:"items" validate:"required"`
	Observations string       `json:"observations"`
	Validity     int          `json:"validity"`
	Discount     float64      `json:"discount"`
	DiscountType DiscountType `json:"discountType"`
	Taxes        float64      `json:"taxes"`
	TravelFee    float64      `json:"travelFee"`
	Subtotal     float64      `json:"subtotal"`
	Total        float64      `json:"total"`
	Status       QuoteStatus  `json:"status"`
}

// Time parses Date. Full ISO timestamps written by older builds are accepted too.
func (q Quote) Time() (time.Time, bool) {
	if t, err := time.Parse(DateLayout, q.Date); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, q.Date); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsFinalized reports whether the quote left the draft state.
func (q Quote) IsFinalized() bool {
	return q.Status == QuoteStatusFinalized
}

// Clone returns a copy that shares no item storage with q.
func (q Quote) Clone() Quote {
	out := q
	if q.Items != nil {
		out.Items = append(make([]LineItem, 0, len(q.Items)), q.Items...)
	}
	return out
}

// MarshalJSON keeps "items" as an array even for a nil slice so the
// backup document always carries the field.
func (q Quote) MarshalJSON() ([]byte, error) {
	type plain Quote
	p := plain(q)
	if p.Items == nil {
		p.Items = []LineItem{}
	}
	return json.Marshal(p)
}
