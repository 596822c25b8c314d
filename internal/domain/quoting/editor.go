package quoting

import (
	"errors"

	"arclean_orcamentos/internal/domain/entities"
)

var ErrItemIndex = errors.New("line item index out of range")

// DefaultItemUnit is the unit given to a blank line item.
const DefaultItemUnit = "unidade"

// Direction moves a line item one slot up or down.
type Direction int

const (
	Up Direction = iota
	Down
)

// The functions below are the only mutation paths for items and adjustment
// fields. Each one recalculates the quote before returning.

func AddItem(q *entities.Quote, item entities.LineItem) Totals {
	q.Items = append(q.Items, item)
	return Recalculate(q)
}

// AddBlankItem appends a hand-typed row with qty 1 and no price.
func AddBlankItem(q *entities.Quote) Totals {
	return AddItem(q, entities.LineItem{Unit: DefaultItemUnit, Qty: 1})
}

// ItemFromCatalog snapshots the descriptive fields and default price of entry.
func ItemFromCatalog(entry entities.CatalogEntry, qty float64) entities.LineItem {
	return entities.LineItem{
		ServiceID:   entry.ID,
		ServiceName: entry.Name,
		Category:    entry.Category,
		Subcategory: entry.Subcategory,
		Unit:        entry.Unit,
		Qty:         qty,
		UnitPrice:   entry.DefaultPrice,
	}
}

// SelectCatalogEntry replaces the descriptive fields of item i with a snapshot
// of entry, keeping the quantity already typed.
func SelectCatalogEntry(q *entities.Quote, i int, entry entities.CatalogEntry) (Totals, error) {
	if i < 0 || i >= len(q.Items) {
		return Totals{}, ErrItemIndex
	}
	q.Items[i] = ItemFromCatalog(entry, q.Items[i].Qty)
	return Recalculate(q), nil
}

// UpdateItem applies fn to item i.
func UpdateItem(q *entities.Quote, i int, fn func(item *entities.LineItem)) (Totals, error) {
	if i < 0 || i >= len(q.Items) {
		return Totals{}, ErrItemIndex
	}
	fn(&q.Items[i])
	return Recalculate(q), nil
}

func SetQty(q *entities.Quote, i int, qty float64) (Totals, error) {
	return UpdateItem(q, i, func(item *entities.LineItem) { item.Qty = qty })
}

func SetUnitPrice(q *entities.Quote, i int, price float64) (Totals, error) {
	return UpdateItem(q, i, func(item *entities.LineItem) { item.UnitPrice = price })
}

func RemoveItem(q *entities.Quote, i int) (Totals, error) {
	if i < 0 || i >= len(q.Items) {
		return Totals{}, ErrItemIndex
	}
	q.Items = append(q.Items[:i:i], q.Items[i+1:]...)
	return Recalculate(q), nil
}

// MoveItem swaps item i with its neighbour. Moving past either end is a no-op.
func MoveItem(q *entities.Quote, i int, dir Direction) (Totals, error) {
	if i < 0 || i >= len(q.Items) {
		return Totals{}, ErrItemIndex
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j >= 0 && j < len(q.Items) {
		q.Items[i], q.Items[j] = q.Items[j], q.Items[i]
	}
	return Recalculate(q), nil
}

func SetDiscount(q *entities.Quote, discount float64, kind entities.DiscountType) Totals {
	q.Discount = discount
	q.DiscountType = kind
	return Recalculate(q)
}

func SetTaxes(q *entities.Quote, taxes float64) Totals {
	q.Taxes = taxes
	return Recalculate(q)
}

func SetTravelFee(q *entities.Quote, fee float64) Totals {
	q.TravelFee = fee
	return Recalculate(q)
}

// LookupCatalogEntry follows the weak reference of item through lookup.
// Hand-typed items and entries deleted since selection report false.
func LookupCatalogEntry(item entities.LineItem, lookup func(id string) (entities.CatalogEntry, bool)) (entities.CatalogEntry, bool) {
	if !item.HasCatalogEntry() {
		return entities.CatalogEntry{}, false
	}
	return lookup(item.ServiceID)
}
