package repository

import (
	"os"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// checkUniqueIDs rejects an import carrying the same catalog or quote id twice.
func checkUniqueIDs(services []entities.CatalogEntry, quotes []entities.Quote) error {
	seen := make(map[string]struct{}, len(services))
	for _, e := range services {
		if _, dup := seen[e.ID]; dup {
			return interfaces.ErrDuplicateKey
		}
		seen[e.ID] = struct{}{}
	}
	seen = make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		if _, dup := seen[q.ID]; dup {
			return interfaces.ErrDuplicateKey
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}
