package entities

// CatalogEntry is a reusable, priced service offering that can be picked into a quote.
//
// Storage model:
//   - PK: id
//   - secondary index: category
//
// The JSON field names are part of the backup document and must not change.
type CatalogEntry struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Unit         string  `json:"unit"`
	DefaultPrice float64 `json:"defaultPrice" validate:"gte=0"`
	Description  string  `json:"description"`
}
