package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const sqliteBatchSize = 100

type catalogEntryRow struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name"`
	Category     string  `gorm:"column:category"`
	Subcategory  string  `gorm:"column:subcategory"`
	Unit         string  `gorm:"column:unit"`
	DefaultPrice float64 `gorm:"column:default_price"`
	Description  string  `gorm:"column:description"`
}

func (catalogEntryRow) TableName() string { return "catalog_entries" }

type quoteRow struct {
	ID             string  `gorm:"column:id;primaryKey"`
	OSNumber       string  `gorm:"column:os_number"`
	Date           string  `gorm:"column:date"`
	ClientName     string  `gorm:"column:client_name"`
	ClientPhone    string  `gorm:"column:client_phone"`
	ClientDocument string  `gorm:"column:client_document"`
	ClientAddress  string  `gorm:"column:client_address"`
	Observations   string  `gorm:"column:observations"`
	Validity       int     `gorm:"column:validity"`
	Discount       float64 `gorm:"column:discount"`
	DiscountType   string  `gorm:"column:discount_type"`
	Taxes          float64 `gorm:"column:taxes"`
	TravelFee      float64 `gorm:"column:travel_fee"`
	Subtotal       float64 `gorm:"column:subtotal"`
	Total          float64 `gorm:"column:total"`
	Status         string  `gorm:"column:status"`
}

func (quoteRow) TableName() string { return "quotes" }

type quoteItemRow struct {
	QuoteID     string  `gorm:"column:quote_id;primaryKey"`
	Position    int     `gorm:"column:position;primaryKey;autoIncrement:false"`
	ServiceID   string  `gorm:"column:service_id"`
	ServiceName string  `gorm:"column:service_name"`
	Category    string  `gorm:"column:category"`
	Subcategory string  `gorm:"column:subcategory"`
	Unit        string  `gorm:"column:unit"`
	Qty         float64 `gorm:"column:qty"`
	UnitPrice   float64 `gorm:"column:unit_price"`
	Subtotal    float64 `gorm:"column:subtotal"`
}

func (quoteItemRow) TableName() string { return "quote_items" }

type settingRow struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value"`
}

func (settingRow) TableName() string { return "settings" }

// SQLiteRecordStore persists every collection in a local SQLite file through gorm.
//
// Quotes are split into a header row and ordered item rows; the two singletons
// are stored as JSON documents in the settings table. Multi-row writes run in a
// single transaction.
type SQLiteRecordStore struct {
	db *gorm.DB
}

var _ interfaces.IRecordStore = (*SQLiteRecordStore)(nil)

// NewSQLiteRecordStore wraps a database already opened and migrated by
// database.OpenSQLite.
func NewSQLiteRecordStore(db *gorm.DB) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: db}
}

/* Catalog */

func (s *SQLiteRecordStore) ListCatalog(ctx context.Context) ([]entities.CatalogEntry, error) {
	var rows []catalogEntryRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromCatalogRows(rows), nil
}

func (s *SQLiteRecordStore) ListCatalogByCategory(ctx context.Context, category string) ([]entities.CatalogEntry, error) {
	var rows []catalogEntryRow
	if err := s.db.WithContext(ctx).Where("category = ?", category).Find(&rows).Error; err != nil {
		return nil, err
	}
	return fromCatalogRows(rows), nil
}

func (s *SQLiteRecordStore) GetCatalogEntry(ctx context.Context, id string) (entities.CatalogEntry, error) {
	var rows []catalogEntryRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(rows) == 0 {
		return entities.CatalogEntry{}, nil
	}
	return fromCatalogRow(rows[0]), nil
}

func (s *SQLiteRecordStore) InsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error {
	row := toCatalogRow(e)
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrDuplicateKey
	}
	return nil
}

func (s *SQLiteRecordStore) UpsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error {
	row := toCatalogRow(e)
	return s.db.WithContext(ctx).Clauses(upsertOn("id")).Create(&row).Error
}

func (s *SQLiteRecordStore) RemoveCatalogEntry(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&catalogEntryRow{}).Error
}

/* Quotes */

func (s *SQLiteRecordStore) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	var rows []quoteRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.attachItems(ctx, rows)
}

func (s *SQLiteRecordStore) ListQuotesByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	var rows []quoteRow
	if err := s.db.WithContext(ctx).Where("status = ?", string(status)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.attachItems(ctx, rows)
}

func (s *SQLiteRecordStore) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	var rows []quoteRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return entities.Quote{}, err
	}
	if len(rows) == 0 {
		return entities.Quote{}, nil
	}
	quotes, err := s.attachItems(ctx, rows)
	if err != nil {
		return entities.Quote{}, err
	}
	return quotes[0], nil
}

func (s *SQLiteRecordStore) InsertQuote(ctx context.Context, q entities.Quote) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toQuoteRow(q)
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrDuplicateKey
		}
		return createItems(tx, toItemRows(q))
	})
}

func (s *SQLiteRecordStore) UpsertQuote(ctx context.Context, q entities.Quote) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := toQuoteRow(q)
		if err := tx.Clauses(upsertOn("id")).Create(&row).Error; err != nil {
			return err
		}
		if err := tx.Where("quote_id = ?", q.ID).Delete(&quoteItemRow{}).Error; err != nil {
			return err
		}
		return createItems(tx, toItemRows(q))
	})
}

func (s *SQLiteRecordStore) RemoveQuote(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&quoteItemRow{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&quoteRow{}).Error
	})
}

func (s *SQLiteRecordStore) attachItems(ctx context.Context, rows []quoteRow) ([]entities.Quote, error) {
	out := make([]entities.Quote, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}

	var items []quoteItemRow
	err := s.db.WithContext(ctx).
		Where("quote_id IN ?", ids).
		Order("quote_id, position").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	byQuote := make(map[string][]entities.LineItem, len(rows))
	for _, it := range items {
		byQuote[it.QuoteID] = append(byQuote[it.QuoteID], fromItemRow(it))
	}
	for _, r := range rows {
		out = append(out, fromQuoteRow(r, byQuote[r.ID]))
	}
	return out, nil
}

/* Singletons */

func (s *SQLiteRecordStore) GetCompany(ctx context.Context, def entities.Company) (entities.Company, error) {
	out := def
	found, err := s.getSetting(ctx, entities.CompanyKey, &out)
	if err != nil || !found {
		return def, err
	}
	return out, nil
}

func (s *SQLiteRecordStore) PutCompany(ctx context.Context, c entities.Company) error {
	return putSetting(s.db.WithContext(ctx), entities.CompanyKey, c, false)
}

func (s *SQLiteRecordStore) GetSettings(ctx context.Context, def entities.Settings) (entities.Settings, error) {
	out := def
	found, err := s.getSetting(ctx, entities.SettingsKey, &out)
	if err != nil || !found {
		return def, err
	}
	return out, nil
}

func (s *SQLiteRecordStore) PutSettings(ctx context.Context, v entities.Settings) error {
	return putSetting(s.db.WithContext(ctx), entities.SettingsKey, v, false)
}

func (s *SQLiteRecordStore) getSetting(ctx context.Context, key string, dst any) (bool, error) {
	var rows []settingRow
	if err := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&rows).Error; err != nil {
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}
	if err := json.Unmarshal([]byte(rows[0].Value), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// putSetting writes key; with keepExisting an existing row is left untouched.
func putSetting(tx *gorm.DB, key string, v any, keepExisting bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	row := settingRow{Key: key, Value: string(raw)}
	onConflict := upsertOn("key")
	if keepExisting {
		onConflict = clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}
	}
	return tx.Clauses(onConflict).Create(&row).Error
}

/* Whole-store operations */

func (s *SQLiteRecordStore) SeedIfEmpty(ctx context.Context, seed entities.AppData) (bool, error) {
	seeded := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogEntryRow{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := insertCatalog(tx, seed.Services); err != nil {
			return err
		}
		// An emptied catalog must not reset the company or the OS counter.
		if err := putSetting(tx, entities.CompanyKey, seed.Company, true); err != nil {
			return err
		}
		if err := putSetting(tx, entities.SettingsKey, seed.Settings, true); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}

func (s *SQLiteRecordStore) ReplaceAll(ctx context.Context, data entities.AppData) error {
	if err := checkUniqueIDs(data.Services, data.Quotes); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []any{&quoteItemRow{}, &quoteRow{}, &catalogEntryRow{}} {
			if err := all.Delete(model).Error; err != nil {
				return err
			}
		}

		if err := insertCatalog(tx, data.Services); err != nil {
			return err
		}

		if len(data.Quotes) > 0 {
			rows := make([]quoteRow, 0, len(data.Quotes))
			var items []quoteItemRow
			for _, q := range data.Quotes {
				rows = append(rows, toQuoteRow(q))
				items = append(items, toItemRows(q)...)
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, sqliteBatchSize)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != int64(len(rows)) {
				return interfaces.ErrDuplicateKey
			}
			if err := createItems(tx, items); err != nil {
				return err
			}
		}

		if err := putSetting(tx, entities.CompanyKey, data.Company, false); err != nil {
			return err
		}
		return putSetting(tx, entities.SettingsKey, data.Settings, false)
	})
}

func (s *SQLiteRecordStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func insertCatalog(tx *gorm.DB, entries []entities.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]catalogEntryRow, len(entries))
	for i, e := range entries {
		rows[i] = toCatalogRow(e)
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, sqliteBatchSize)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(rows)) {
		return interfaces.ErrDuplicateKey
	}
	return nil
}

func createItems(tx *gorm.DB, items []quoteItemRow) error {
	if len(items) == 0 {
		return nil
	}
	return tx.CreateInBatches(items, sqliteBatchSize).Error
}

func upsertOn(key string) clause.OnConflict {
	return clause.OnConflict{Columns: []clause.Column{{Name: key}}, UpdateAll: true}
}

/* Mapping */

func toCatalogRow(e entities.CatalogEntry) catalogEntryRow {
	return catalogEntryRow{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		Subcategory:  e.Subcategory,
		Unit:         e.Unit,
		DefaultPrice: e.DefaultPrice,
		Description:  e.Description,
	}
}

func fromCatalogRow(r catalogEntryRow) entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Subcategory:  r.Subcategory,
		Unit:         r.Unit,
		DefaultPrice: r.DefaultPrice,
		Description:  r.Description,
	}
}

func fromCatalogRows(rows []catalogEntryRow) []entities.CatalogEntry {
	out := make([]entities.CatalogEntry, len(rows))
	for i, r := range rows {
		out[i] = fromCatalogRow(r)
	}
	return out
}

func toQuoteRow(q entities.Quote) quoteRow {
	return quoteRow{
		ID:             q.ID,
		OSNumber:       q.OSNumber,
		Date:           q.Date,
		ClientName:     q.Client.Name,
		ClientPhone:    q.Client.Phone,
		ClientDocument: q.Client.Document,
		ClientAddress:  q.Client.Address,
		Observations:   q.Observations,
		Validity:       q.Validity,
		Discount:       q.Discount,
		DiscountType:   string(q.DiscountType),
		Taxes:          q.Taxes,
		TravelFee:      q.TravelFee,
		Subtotal:       q.Subtotal,
		Total:          q.Total,
		Status:         string(q.Status),
	}
}

func fromQuoteRow(r quoteRow, items []entities.LineItem) entities.Quote {
	if items == nil {
		items = []entities.LineItem{}
	}
	return entities.Quote{
		ID:       r.ID,
		OSNumber: r.OSNumber,
		Date:     r.Date,
		Client: entities.Client{
			Name:     r.ClientName,
			Phone:    r.ClientPhone,
			Document: r.ClientDocument,
			Address:  r.ClientAddress,
		},
		Items:        items,
		Observations: r.Observations,
		Validity:     r.Validity,
		Discount:     r.Discount,
		DiscountType: entities.DiscountType(r.DiscountType),
		Taxes:        r.Taxes,
		TravelFee:    r.TravelFee,
		Subtotal:     r.Subtotal,
		Total:        r.Total,
		Status:       entities.QuoteStatus(r.Status),
	}
}

func toItemRows(q entities.Quote) []quoteItemRow {
	out := make([]quoteItemRow, len(q.Items))
	for i, it := range q.Items {
		out[i] = quoteItemRow{
			QuoteID:     q.ID,
			Position:    i,
			ServiceID:   it.ServiceID,
			ServiceName: it.ServiceName,
			Category:    it.Category,
			Subcategory: it.Subcategory,
			Unit:        it.Unit,
			Qty:         it.Qty,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		}
	}
	return out
}

func fromItemRow(r quoteItemRow) entities.LineItem {
	return entities.LineItem{
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Unit:        r.Unit,
		Qty:         r.Qty,
		UnitPrice:   r.UnitPrice,
		Subtotal:    r.Subtotal,
	}
}
