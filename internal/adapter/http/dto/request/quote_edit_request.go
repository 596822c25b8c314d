package request

import (
	"errors"
	"fmt"
	"strings"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase"
)

// ErrUnknownCatalogEntry is returned when an edit names a serviceId that is
// not in the catalog.
var ErrUnknownCatalogEntry = errors.New("unknown catalog entry")

type EditOp string

const (
	EditAddItem       EditOp = "add"
	EditSelectService EditOp = "select"
	EditSetQty        EditOp = "qty"
	EditSetUnitPrice  EditOp = "price"
	EditRemoveItem    EditOp = "remove"
	EditMoveItem      EditOp = "move"
	EditSetDiscount   EditOp = "discount"
	EditSetTaxes      EditOp = "taxes"
	EditSetTravelFee  EditOp = "travelFee"
)

// QuoteEditRequest is one editor step. Index addresses a line item; Value is
// the new qty, price, discount, taxes or travel fee. "add" with a serviceId
// appends a catalog snapshot (qty Value, default 1), without one a blank row.
type QuoteEditRequest struct {
	Op           EditOp                `json:"op" binding:"required,oneof=add select qty price remove move discount taxes travelFee"`
	Index        int                   `json:"index" binding:"gte=0"`
	ServiceID    string                `json:"serviceId" binding:"required_if=Op select"`
	Value        float64               `json:"value"`
	Direction    string                `json:"direction" binding:"omitempty,oneof=up down"`
	DiscountType entities.DiscountType `json:"discountType"`
}

// QuoteEditsRequest is applied in order; one failing step discards them all.
type QuoteEditsRequest struct {
	Edits []QuoteEditRequest `json:"edits" binding:"required,min=1,dive"`
}

func (r QuoteEditsRequest) ToEdit(lookup CatalogLookup) (usecase.QuoteEdit, error) {
	steps := make([]usecase.QuoteEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		step, err := e.toStep(lookup)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return func(q *entities.Quote) error {
		for _, step := range steps {
			if err := step(q); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

func (e QuoteEditRequest) toStep(lookup CatalogLookup) (usecase.QuoteEdit, error) {
	var entry entities.CatalogEntry
	if id := strings.TrimSpace(e.ServiceID); id != "" {
		found, ok := entities.CatalogEntry{}, false
		if lookup != nil {
			found, ok = lookup(id)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCatalogEntry, id)
		}
		entry = found
	}

	switch e.Op {
	case EditAddItem:
		if entry.ID == "" {
			return func(q *entities.Quote) error {
				quoting.AddBlankItem(q)
				return nil
			}, nil
		}
		qty := e.Value
		if qty == 0 {
			qty = 1
		}
		return func(q *entities.Quote) error {
			quoting.AddItem(q, quoting.ItemFromCatalog(entry, qty))
			return nil
		}, nil
	case EditSelectService:
		if entry.ID == "" {
			return nil, ErrUnknownCatalogEntry
		}
		return func(q *entities.Quote) error {
			_, err := quoting.SelectCatalogEntry(q, e.Index, entry)
			return err
		}, nil
	case EditSetQty:
		return func(q *entities.Quote) error {
			_, err := quoting.SetQty(q, e.Index, e.Value)
			return err
		}, nil
	case EditSetUnitPrice:
		return func(q *entities.Quote) error {
			_, err := quoting.SetUnitPrice(q, e.Index, e.Value)
			return err
		}, nil
	case EditRemoveItem:
		return func(q *entities.Quote) error {
			_, err := quoting.RemoveItem(q, e.Index)
			return err
		}, nil
	case EditMoveItem:
		dir := quoting.Up
		if e.Direction == "down" {
			dir = quoting.Down
		}
		return func(q *entities.Quote) error {
			_, err := quoting.MoveItem(q, e.Index, dir)
			return err
		}, nil
	case EditSetDiscount:
		return func(q *entities.Quote) error {
			kind := e.DiscountType
			if kind == "" {
				kind = q.DiscountType
			}
			quoting.SetDiscount(q, e.Value, kind)
			return nil
		}, nil
	case EditSetTaxes:
		return func(q *entities.Quote) error {
			quoting.SetTaxes(q, e.Value)
			return nil
		}, nil
	case EditSetTravelFee:
		return func(q *entities.Quote) error {
			quoting.SetTravelFee(q, e.Value)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported edit %q", e.Op)
}
