package repository

import (
	"context"
	"sync"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/usecase/interfaces"
)

// MemoryRecordStore keeps every collection in process memory.
//
// It is the non-persistent fallback used when the durable store cannot be opened,
// and the store behind most tests. ReplaceAll and SeedIfEmpty build the new state
// aside and swap it in under the lock.
type MemoryRecordStore struct {
	mu       sync.RWMutex
	catalog  map[string]entities.CatalogEntry
	quotes   map[string]entities.Quote
	settings map[string]any
}

var _ interfaces.IRecordStore = (*MemoryRecordStore)(nil)

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		catalog:  map[string]entities.CatalogEntry{},
		quotes:   map[string]entities.Quote{},
		settings: map[string]any{},
	}
}

/* Catalog */

func (s *MemoryRecordStore) ListCatalog(_ context.Context) ([]entities.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.CatalogEntry, 0, len(s.catalog))
	for _, e := range s.catalog {
		out = append(out, e)
	}
	return out, nil
}

func (s *MemoryRecordStore) ListCatalogByCategory(_ context.Context, category string) ([]entities.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.CatalogEntry
	for _, e := range s.catalog {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryRecordStore) GetCatalogEntry(_ context.Context, id string) (entities.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog[id], nil
}

func (s *MemoryRecordStore) InsertCatalogEntry(_ context.Context, e entities.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog[e.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	s.catalog[e.ID] = e
	return nil
}

func (s *MemoryRecordStore) UpsertCatalogEntry(_ context.Context, e entities.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog[e.ID] = e
	return nil
}

func (s *MemoryRecordStore) RemoveCatalogEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.catalog, id)
	return nil
}

/* Quotes */

func (s *MemoryRecordStore) ListQuotes(_ context.Context) ([]entities.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		out = append(out, q.Clone())
	}
	return out, nil
}

func (s *MemoryRecordStore) ListQuotesByStatus(_ context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Quote
	for _, q := range s.quotes {
		if q.Status == status {
			out = append(out, q.Clone())
		}
	}
	return out, nil
}

func (s *MemoryRecordStore) GetQuote(_ context.Context, id string) (entities.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	if !ok {
		return entities.Quote{}, nil
	}
	return q.Clone(), nil
}

func (s *MemoryRecordStore) InsertQuote(_ context.Context, q entities.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[q.ID]; ok {
		return interfaces.ErrDuplicateKey
	}
	s.quotes[q.ID] = q.Clone()
	return nil
}

func (s *MemoryRecordStore) UpsertQuote(_ context.Context, q entities.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID] = q.Clone()
	return nil
}

func (s *MemoryRecordStore) RemoveQuote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotes, id)
	return nil
}

/* Singletons */

func (s *MemoryRecordStore) GetCompany(_ context.Context, def entities.Company) (entities.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.settings[entities.CompanyKey].(entities.Company); ok {
		return c, nil
	}
	return def, nil
}

func (s *MemoryRecordStore) PutCompany(_ context.Context, c entities.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[entities.CompanyKey] = c
	return nil
}

func (s *MemoryRecordStore) GetSettings(_ context.Context, def entities.Settings) (entities.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.settings[entities.SettingsKey].(entities.Settings); ok {
		return v, nil
	}
	return def, nil
}

func (s *MemoryRecordStore) PutSettings(_ context.Context, v entities.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[entities.SettingsKey] = v
	return nil
}

/* Whole-store operations */

func (s *MemoryRecordStore) SeedIfEmpty(_ context.Context, seed entities.AppData) (bool, error) {
	catalog, err := indexCatalog(seed.Services)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.catalog) > 0 {
		return false, nil
	}
	s.catalog = catalog
	// An emptied catalog must not reset the company or the OS counter.
	if _, ok := s.settings[entities.CompanyKey]; !ok {
		s.settings[entities.CompanyKey] = seed.Company
	}
	if _, ok := s.settings[entities.SettingsKey]; !ok {
		s.settings[entities.SettingsKey] = seed.Settings
	}
	return true, nil
}

func (s *MemoryRecordStore) ReplaceAll(_ context.Context, data entities.AppData) error {
	catalog, err := indexCatalog(data.Services)
	if err != nil {
		return err
	}
	quotes := make(map[string]entities.Quote, len(data.Quotes))
	for _, q := range data.Quotes {
		if _, dup := quotes[q.ID]; dup {
			return interfaces.ErrDuplicateKey
		}
		quotes[q.ID] = q.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.quotes = quotes
	s.settings = map[string]any{
		entities.CompanyKey:  data.Company,
		entities.SettingsKey: data.Settings,
	}
	return nil
}

func (s *MemoryRecordStore) Close() error { return nil }

func indexCatalog(entries []entities.CatalogEntry) (map[string]entities.CatalogEntry, error) {
	out := make(map[string]entities.CatalogEntry, len(entries))
	for _, e := range entries {
		if _, dup := out[e.ID]; dup {
			return nil, interfaces.ErrDuplicateKey
		}
		out[e.ID] = e
	}
	return out, nil
}
