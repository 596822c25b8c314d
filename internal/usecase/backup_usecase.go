package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

// ErrImportMalformed means a backup document does not have the AppData shape.
var ErrImportMalformed = errors.New("backup document malformed")

var backupSections = []string{"company", "settings", "services", "quotes"}

// BackupUseCase exports the whole store as one AppData document and restores it.
type BackupUseCase struct {
	store    interfaces.IRecordStore
	validate *validator.Validate
	now      func() time.Time
}

func NewBackupUseCase(store interfaces.IRecordStore, now func() time.Time) *BackupUseCase {
	if now == nil {
		now = time.Now
	}
	return &BackupUseCase{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}
}

// Export reads every collection straight from the store.
func (u *BackupUseCase) Export(ctx context.Context) (entities.AppData, error) {
	services, err := u.store.ListCatalog(ctx)
	if err != nil {
		return entities.AppData{}, err
	}
	quotes, err := u.store.ListQuotes(ctx)
	if err != nil {
		return entities.AppData{}, err
	}
	company, err := u.store.GetCompany(ctx, entities.DefaultCompany())
	if err != nil {
		return entities.AppData{}, err
	}
	settings, err := u.store.GetSettings(ctx, entities.DefaultSettings())
	if err != nil {
		return entities.AppData{}, err
	}
	return entities.AppData{
		Company:  company,
		Settings: settings,
		Services: services,
		Quotes:   sortQuotes(quotes),
	}, nil
}

// Import validates data and replaces the store contents with it. A malformed
// document fails with ErrImportMalformed before anything is written.
func (u *BackupUseCase) Import(ctx context.Context, data entities.AppData) error {
	if err := u.Validate(data); err != nil {
		return err
	}
	if err := u.store.ReplaceAll(ctx, data); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return fmt.Errorf("%w: %v", ErrImportMalformed, err)
		}
		return err
	}
	return nil
}

// Validate checks the AppData shape: both arrays present, every catalog entry
// and quote carrying a unique id, quotes carrying an items array, a positive
// counter.
func (u *BackupUseCase) Validate(data entities.AppData) error {
	if err := u.validate.Struct(data); err != nil {
		return fmt.Errorf("%w: %v", ErrImportMalformed, err)
	}
	return nil
}

// EncodeBackup renders data as the indented JSON backup document.
func EncodeBackup(data entities.AppData) ([]byte, error) {
	if data.Services == nil {
		data.Services = []entities.CatalogEntry{}
	}
	if data.Quotes == nil {
		data.Quotes = []entities.Quote{}
	}
	return json.MarshalIndent(data, "", "  ")
}

// DecodeBackup parses a backup document. Every top-level section must be
// present and non-null; unknown fields are ignored.
func DecodeBackup(raw []byte) (entities.AppData, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrImportMalformed, err)
	}
	for _, key := range backupSections {
		v, ok := sections[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return entities.AppData{}, fmt.Errorf("%w: missing %q", ErrImportMalformed, key)
		}
	}

	var data entities.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return entities.AppData{}, fmt.Errorf("%w: %v", ErrImportMalformed, err)
	}
	return data, nil
}

// BackupFileName names a backup taken at now: arclean-backup-YYYY-MM-DD.json.
func (u *BackupUseCase) BackupFileName() string {
	return "arclean-backup-" + u.now().Format(entities.DateLayout) + ".json"
}
