package quoting

import (
	"errors"
	"fmt"
	"strings"

	"arclean_orcamentos/internal/domain/entities"
)

var ErrQuoteInvalid = errors.New("quote invalid")

// ValidationError names the first field that blocks finalization.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote invalid: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrQuoteInvalid
}

// ValidateForFinalize checks the rules a quote must satisfy before it can move
// to finalized. Drafts are saved without these checks.
func ValidateForFinalize(q entities.Quote) error {
	if strings.TrimSpace(q.Client.Name) == "" {
		return &ValidationError{Field: "client.name", Reason: "is required"}
	}
	if len(q.Items) == 0 {
		return &ValidationError{Field: "items", Reason: "must contain at least one item"}
	}
	for i, item := range q.Items {
		switch {
		case strings.TrimSpace(item.ServiceName) == "":
			return &ValidationError{Field: fmt.Sprintf("items[%d].serviceName", i), Reason: "is required"}
		case item.Qty <= 0:
			return &ValidationError{Field: fmt.Sprintf("items[%d].qty", i), Reason: "must be greater than zero"}
		case item.UnitPrice < 0:
			return &ValidationError{Field: fmt.Sprintf("items[%d].unitPrice", i), Reason: "must not be negative"}
		}
	}
	return nil
}
