package interfaces

//go:generate mockgen -source=record_store_interface.go -destination=mocks/mock_record_store.go -package=mock_interfaces

import (
	"context"
	"errors"

	"arclean_orcamentos/internal/domain/entities"
)

var (
	// ErrStoreUnavailable means the persistence medium could not be opened or reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrDuplicateKey is returned by Insert* when the id already exists.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ICatalogRepository abstracts the catalogEntries collection.
//
// Get* returns the zero value (ID == "") for a missing key; Remove* on a missing
// key is not an error.
type ICatalogRepository interface {
	ListCatalog(ctx context.Context) ([]entities.CatalogEntry, error)
	ListCatalogByCategory(ctx context.Context, category string) ([]entities.CatalogEntry, error)
	GetCatalogEntry(ctx context.Context, id string) (entities.CatalogEntry, error)
	InsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error
	UpsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error
	RemoveCatalogEntry(ctx context.Context, id string) error
}

// IQuoteRepository abstracts the quotes collection. List order is unspecified.
type IQuoteRepository interface {
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	ListQuotesByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	InsertQuote(ctx context.Context, q entities.Quote) error
	UpsertQuote(ctx context.Context, q entities.Quote) error
	RemoveQuote(ctx context.Context, id string) error
}

// ISettingsRepository abstracts the singleton table. Getters return def when the
// row is absent.
type ISettingsRepository interface {
	GetCompany(ctx context.Context, def entities.Company) (entities.Company, error)
	PutCompany(ctx context.Context, c entities.Company) error
	GetSettings(ctx context.Context, def entities.Settings) (entities.Settings, error)
	PutSettings(ctx context.Context, s entities.Settings) error
}

// IRecordStore is the durable owner of every collection.
//
//   - SeedIfEmpty writes seed when the catalog is empty, all-or-nothing, and reports
//     whether it did.
//   - ReplaceAll clears catalog and quotes, writes data and both singletons. Readers
//     never observe a mix of old and new rows; on error nothing changes.
type IRecordStore interface {
	ICatalogRepository
	IQuoteRepository
	ISettingsRepository

	SeedIfEmpty(ctx context.Context, seed entities.AppData) (bool, error)
	ReplaceAll(ctx context.Context, data entities.AppData) error
	Close() error
}
