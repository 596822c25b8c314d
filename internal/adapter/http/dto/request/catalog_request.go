package request

import (
	"strings"

	"arclean_orcamentos/internal/domain/entities"
)

type CatalogEntryRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory"`
	Unit         string  `json:"unit"`
	DefaultPrice float64 `json:"defaultPrice" binding:"gte=0"`
	Description  string  `json:"description"`
}

// ToEntity builds the catalog entry; a non-empty id (from the path) wins over the body.
func (r CatalogEntryRequest) ToEntity(id string) entities.CatalogEntry {
	if strings.TrimSpace(id) == "" {
		id = r.ID
	}
	return entities.CatalogEntry{
		ID:           strings.TrimSpace(id),
		Name:         r.Name,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Unit:         r.Unit,
		DefaultPrice: r.DefaultPrice,
		Description:  r.Description,
	}
}
