package handlers

import (
	"errors"
	"net/http"

	"arclean_orcamentos/internal/adapter/http/dto/request"
	"arclean_orcamentos/internal/domain/quoting"
	"arclean_orcamentos/internal/usecase"
	"arclean_orcamentos/internal/usecase/interfaces"
	"arclean_orcamentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown quote status", http.StatusBadRequest)
)

func mapAppStateError(err error) *pkg.AppError {
	var verr *quoting.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("QUOTE_INVALID", verr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, quoting.ErrQuoteInvalid):
		return pkg.NewDomainError("QUOTE_INVALID", "Quote cannot be finalized", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrImportMalformed):
		return pkg.NewDomainError("IMPORT_MALFORMED", "Backup document is malformed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidCatalogEntry), errors.Is(err, usecase.ErrInvalidSettings):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, quoting.ErrItemIndex):
		return pkg.NewDomainError("INVALID_REQUEST", "Line item index out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound), errors.Is(err, request.ErrUnknownCatalogEntry):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrDuplicateKey):
		return pkg.NewDomainError("DUPLICATE_KEY", "A record with this id already exists", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrStoreUnavailable), errors.Is(err, usecase.ErrStateNotReady):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Storage is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapAppStateError(err)
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
