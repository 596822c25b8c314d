package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
		body := e.ToHTTPError()
		if body.Status != "error" || body.StatusCode != 404 || body.Code != "QUOTE_NOT_FOUND" {
			t.Fatalf("unexpected envelope %+v", body)
		}
		if e.Error() != "QUOTE_NOT_FOUND: Quote not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("disk full")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("cause leaked into envelope: %+v", body)
		}
	})
}
