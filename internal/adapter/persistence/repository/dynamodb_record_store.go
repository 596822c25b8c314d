package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"arclean_orcamentos/internal/domain/entities"
	"arclean_orcamentos/internal/infrastructure/database"
	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTablePrefix = "arclean_"

	generationAttr       = "generation"
	metaKey              = "meta"
	activeGenerationAttr = "activeGeneration"

	dynamoBatchSize     = 25
	dynamoTransactLimit = 100
	batchRetries        = 5
)

// DynamoRecordStore persists every collection in DynamoDB.
//
// Catalog and quote rows are keyed by (id, generation). Reads only see the
// active generation, recorded in the "meta" row of the settings table. An import
// writes a complete new generation first and then flips the pointer together with
// both singletons in one transaction, so readers never see a mix of old and new rows.
//
// Attribute names match the backup document field names.
type DynamoRecordStore struct {
	ddb    *dynamodb.Client
	tables database.DynamoTables
	gen    atomic.Int64
}

var _ interfaces.IRecordStore = (*DynamoRecordStore)(nil)

// NewDynamoRecordStore makes sure the tables exist and loads the active generation.
// An empty prefix falls back to DYNAMODB_TABLE_PREFIX, then "arclean_".
func NewDynamoRecordStore(ctx context.Context, ddb *dynamodb.Client, prefix string) (*DynamoRecordStore, error) {
	if prefix == "" {
		prefix = getenvDefault("DYNAMODB_TABLE_PREFIX", defaultTablePrefix)
	}
	s := &DynamoRecordStore{ddb: ddb, tables: database.NewDynamoTables(prefix)}

	if err := database.EnsureDynamoTables(ctx, ddb, s.tables); err != nil {
		return nil, err
	}
	gen, err := s.loadGeneration(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrStoreUnavailable, err)
	}
	s.gen.Store(gen)

	// Rows left behind by an interrupted import are invisible to reads; drop them.
	_ = s.purgeStale(ctx)
	return s, nil
}

/* Catalog */

func (s *DynamoRecordStore) ListCatalog(ctx context.Context) ([]entities.CatalogEntry, error) {
	items, err := s.scanGeneration(ctx, s.tables.Catalog, "#g = :g", s.gen.Load())
	if err != nil {
		return nil, err
	}
	return decodeCatalog(items)
}

func (s *DynamoRecordStore) ListCatalogByCategory(ctx context.Context, category string) ([]entities.CatalogEntry, error) {
	if category == "" {
		return []entities.CatalogEntry{}, nil
	}
	items, err := s.queryIndex(ctx, s.tables.Catalog, database.CatalogCategoryIndex, "category", category)
	if err != nil {
		return nil, err
	}
	return decodeCatalog(items)
}

func (s *DynamoRecordStore) GetCatalogEntry(ctx context.Context, id string) (entities.CatalogEntry, error) {
	var it catalogItem
	found, err := s.getRow(ctx, s.tables.Catalog, id, &it)
	if err != nil || !found {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

func (s *DynamoRecordStore) InsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error {
	av, err := catalogAttrs(e, s.gen.Load())
	if err != nil {
		return err
	}
	return s.putNew(ctx, s.tables.Catalog, av)
}

func (s *DynamoRecordStore) UpsertCatalogEntry(ctx context.Context, e entities.CatalogEntry) error {
	av, err := catalogAttrs(e, s.gen.Load())
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(s.tables.Catalog), Item: av})
	return err
}

func (s *DynamoRecordStore) RemoveCatalogEntry(ctx context.Context, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.Catalog),
		Key:       rowKey(id, s.gen.Load()),
	})
	return err
}

/* Quotes */

func (s *DynamoRecordStore) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	items, err := s.scanGeneration(ctx, s.tables.Quotes, "#g = :g", s.gen.Load())
	if err != nil {
		return nil, err
	}
	return decodeQuotes(items)
}

func (s *DynamoRecordStore) ListQuotesByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error) {
	if status == "" {
		return []entities.Quote{}, nil
	}
	items, err := s.queryIndex(ctx, s.tables.Quotes, database.QuoteStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return decodeQuotes(items)
}

func (s *DynamoRecordStore) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := s.getRow(ctx, s.tables.Quotes, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (s *DynamoRecordStore) InsertQuote(ctx context.Context, q entities.Quote) error {
	av, err := quoteAttrs(q, s.gen.Load())
	if err != nil {
		return err
	}
	return s.putNew(ctx, s.tables.Quotes, av)
}

func (s *DynamoRecordStore) UpsertQuote(ctx context.Context, q entities.Quote) error {
	av, err := quoteAttrs(q, s.gen.Load())
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(s.tables.Quotes), Item: av})
	return err
}

func (s *DynamoRecordStore) RemoveQuote(ctx context.Context, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.Quotes),
		Key:       rowKey(id, s.gen.Load()),
	})
	return err
}

/* Singletons */

func (s *DynamoRecordStore) GetCompany(ctx context.Context, def entities.Company) (entities.Company, error) {
	var it companyItem
	found, err := s.getSetting(ctx, entities.CompanyKey, &it)
	if err != nil || !found {
		return def, err
	}
	return entities.Company{
		Name:        it.Name,
		Owner:       it.Owner,
		Phone:       it.Phone,
		Email:       it.Email,
		Address:     it.Address,
		LogoDataURL: it.LogoDataURL,
	}, nil
}

func (s *DynamoRecordStore) PutCompany(ctx context.Context, c entities.Company) error {
	av, err := companyAttrs(c)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(s.tables.Settings), Item: av})
	return err
}

func (s *DynamoRecordStore) GetSettings(ctx context.Context, def entities.Settings) (entities.Settings, error) {
	var it settingsItem
	found, err := s.getSetting(ctx, entities.SettingsKey, &it)
	if err != nil || !found {
		return def, err
	}
	return entities.Settings{
		Currency:       it.Currency,
		NextOsSequence: it.NextOsSequence,
		PDFTemplate:    it.PDFTemplate,
	}, nil
}

func (s *DynamoRecordStore) PutSettings(ctx context.Context, v entities.Settings) error {
	av, err := settingsAttrs(v)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(s.tables.Settings), Item: av})
	return err
}

/* Whole-store operations */

func (s *DynamoRecordStore) SeedIfEmpty(ctx context.Context, seed entities.AppData) (bool, error) {
	current, err := s.ListCatalog(ctx)
	if err != nil {
		return false, err
	}
	if len(current) > 0 {
		return false, nil
	}
	if err := checkUniqueIDs(seed.Services, nil); err != nil {
		return false, err
	}

	gen := s.gen.Load()
	writes := make([]types.TransactWriteItem, 0, len(seed.Services)+2)
	for _, e := range seed.Services {
		av, err := catalogAttrs(e, gen)
		if err != nil {
			return false, err
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(s.tables.Catalog),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	}

	// An emptied catalog must not reset the company or the OS counter.
	company, err := companyAttrs(seed.Company)
	if err != nil {
		return false, err
	}
	settings, err := settingsAttrs(seed.Settings)
	if err != nil {
		return false, err
	}
	for key, av := range map[string]map[string]types.AttributeValue{
		entities.CompanyKey:  company,
		entities.SettingsKey: settings,
	} {
		exists, err := s.getSetting(ctx, key, nil)
		if err != nil {
			return false, err
		}
		if exists {
			continue
		}
		writes = append(writes, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(s.tables.Settings),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#k)"),
			ExpressionAttributeNames: map[string]string{"#k": "key"},
		}})
	}

	if len(writes) > dynamoTransactLimit {
		return false, fmt.Errorf("seed of %d rows exceeds one transaction", len(writes))
	}
	if _, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *DynamoRecordStore) ReplaceAll(ctx context.Context, data entities.AppData) error {
	if err := checkUniqueIDs(data.Services, data.Quotes); err != nil {
		return err
	}

	cur := s.gen.Load()
	next := cur + 1

	if err := s.writeGeneration(ctx, data, next); err != nil {
		_ = s.purgeStale(ctx)
		return err
	}

	company, err := companyAttrs(data.Company)
	if err != nil {
		_ = s.purgeStale(ctx)
		return err
	}
	settings, err := settingsAttrs(data.Settings)
	if err != nil {
		_ = s.purgeStale(ctx)
		return err
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:           aws.String(s.tables.Settings),
				Key:                 map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: metaKey}},
				UpdateExpression:    aws.String("SET #a = :next"),
				ConditionExpression: aws.String("attribute_not_exists(#a) OR #a = :cur"),
				ExpressionAttributeNames: map[string]string{
					"#a": activeGenerationAttr,
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":next": numberAttr(next),
					":cur":  numberAttr(cur),
				},
			}},
			{Put: &types.Put{TableName: aws.String(s.tables.Settings), Item: company}},
			{Put: &types.Put{TableName: aws.String(s.tables.Settings), Item: settings}},
		},
	})
	if err != nil {
		_ = s.purgeStale(ctx)
		return err
	}
	s.gen.Store(next)

	// The previous generation is unreachable now; leftovers are retried on next open.
	_ = s.purgeStale(ctx)
	return nil
}

// Close is a no-op: the SDK client holds no resources that need releasing.
func (s *DynamoRecordStore) Close() error { return nil }

/* Internals */

func (s *DynamoRecordStore) loadGeneration(ctx context.Context) (int64, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tables.Settings),
		Key:            map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: metaKey}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Item[activeGenerationAttr].(*types.AttributeValueMemberN)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (s *DynamoRecordStore) writeGeneration(ctx context.Context, data entities.AppData, gen int64) error {
	catalog := make([]types.WriteRequest, 0, len(data.Services))
	for _, e := range data.Services {
		av, err := catalogAttrs(e, gen)
		if err != nil {
			return err
		}
		catalog = append(catalog, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	if err := s.batchWrite(ctx, s.tables.Catalog, catalog); err != nil {
		return err
	}

	quotes := make([]types.WriteRequest, 0, len(data.Quotes))
	for _, q := range data.Quotes {
		av, err := quoteAttrs(q, gen)
		if err != nil {
			return err
		}
		quotes = append(quotes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return s.batchWrite(ctx, s.tables.Quotes, quotes)
}

// purgeStale deletes every catalog and quote row outside the active generation.
func (s *DynamoRecordStore) purgeStale(ctx context.Context) error {
	gen := s.gen.Load()
	for _, table := range []string{s.tables.Catalog, s.tables.Quotes} {
		items, err := s.scanGeneration(ctx, table, "#g <> :g", gen)
		if err != nil {
			return err
		}
		deletes := make([]types.WriteRequest, 0, len(items))
		for _, it := range items {
			deletes = append(deletes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{"id": it["id"], generationAttr: it[generationAttr]},
			}})
		}
		if err := s.batchWrite(ctx, table, deletes); err != nil {
			return err
		}
	}
	return nil
}

func (s *DynamoRecordStore) batchWrite(ctx context.Context, table string, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += dynamoBatchSize {
		end := min(start+dynamoBatchSize, len(reqs))
		pending := map[string][]types.WriteRequest{table: reqs[start:end]}

		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt == batchRetries {
				return fmt.Errorf("batch write %s: %d unprocessed items", table, len(pending[table]))
			}
			if attempt > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Duration(attempt*50) * time.Millisecond):
				}
			}
			out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (s *DynamoRecordStore) scanGeneration(ctx context.Context, table, filter string, gen int64) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(table),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  map[string]string{"#g": generationAttr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":g": numberAttr(gen)},
		ConsistentRead:            aws.Bool(true),
	})
	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (s *DynamoRecordStore) queryIndex(ctx context.Context, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :k AND #g = :g"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
			"#g": generationAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k": &types.AttributeValueMemberS{Value: value},
			":g": numberAttr(s.gen.Load()),
		},
	})
	var out []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Items...)
	}
	return out, nil
}

func (s *DynamoRecordStore) getRow(ctx context.Context, table, id string, dst any) (bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            rowKey(id, s.gen.Load()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(out.Item, dst)
}

// getSetting loads key into dst; a nil dst only checks for existence.
func (s *DynamoRecordStore) getSetting(ctx context.Context, key string, dst any) (bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tables.Settings),
		Key:            map[string]types.AttributeValue{"key": &types.AttributeValueMemberS{Value: key}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if dst == nil {
		return true, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *DynamoRecordStore) putNew(ctx context.Context, table string, av map[string]types.AttributeValue) error {
	_, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return interfaces.ErrDuplicateKey
	}
	return err
}

func numberAttr(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func rowKey(id string, gen int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":           &types.AttributeValueMemberS{Value: id},
		generationAttr: numberAttr(gen),
	}
}

/* Item mapping */

// Index key attributes are omitempty: DynamoDB rejects empty strings as index
// keys, so such rows simply stay off the index.
type catalogItem struct {
	ID           string  `dynamodbav:"id"`
	Generation   int64   `dynamodbav:"generation"`
	Name         string  `dynamodbav:"name"`
	Category     string  `dynamodbav:"category,omitempty"`
	Subcategory  string  `dynamodbav:"subcategory"`
	Unit         string  `dynamodbav:"unit"`
	DefaultPrice float64 `dynamodbav:"defaultPrice"`
	Description  string  `dynamodbav:"description"`
}

type lineItemItem struct {
	ServiceID   string  `dynamodbav:"serviceId"`
	ServiceName string  `dynamodbav:"serviceName"`
	Category    string  `dynamodbav:"category"`
	Subcategory string  `dynamodbav:"subcategory"`
	Unit        string  `dynamodbav:"unit"`
	Qty         float64 `dynamodbav:"qty"`
	UnitPrice   float64 `dynamodbav:"unitPrice"`
	Subtotal    float64 `dynamodbav:"subtotal"`
}

type quoteItem struct {
	ID           string         `dynamodbav:"id"`
	Generation   int64          `dynamodbav:"generation"`
	OSNumber     string         `dynamodbav:"osNumber"`
	Date         string         `dynamodbav:"date,omitempty"`
	Client       clientItem     `dynamodbav:"client"`
	Items        []lineItemItem `dynamodbav:"items"`
	Observations string         `dynamodbav:"observations"`
	Validity     int            `dynamodbav:"validity"`
	Discount     float64        `dynamodbav:"discount"`
	DiscountType string         `dynamodbav:"discountType"`
	Taxes        float64        `dynamodbav:"taxes"`
	TravelFee    float64        `dynamodbav:"travelFee"`
	Subtotal     float64        `dynamodbav:"subtotal"`
	Total        float64        `dynamodbav:"total"`
	Status       string         `dynamodbav:"status,omitempty"`
}

type clientItem struct {
	Name     string `dynamodbav:"name"`
	Phone    string `dynamodbav:"phone"`
	Document string `dynamodbav:"document"`
	Address  string `dynamodbav:"address"`
}

type companyItem struct {
	Key         string `dynamodbav:"key"`
	Name        string `dynamodbav:"name"`
	Owner       string `dynamodbav:"owner"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email"`
	Address     string `dynamodbav:"address"`
	LogoDataURL string `dynamodbav:"logoDataUrl"`
}

type settingsItem struct {
	Key            string `dynamodbav:"key"`
	Currency       string `dynamodbav:"currency"`
	NextOsSequence int    `dynamodbav:"nextOsSequence"`
	PDFTemplate    string `dynamodbav:"pdfTemplate"`
}

func catalogAttrs(e entities.CatalogEntry, gen int64) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(catalogItem{
		ID:           e.ID,
		Generation:   gen,
		Name:         e.Name,
		Category:     e.Category,
		Subcategory:  e.Subcategory,
		Unit:         e.Unit,
		DefaultPrice: e.DefaultPrice,
		Description:  e.Description,
	})
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Subcategory:  it.Subcategory,
		Unit:         it.Unit,
		DefaultPrice: it.DefaultPrice,
		Description:  it.Description,
	}
}

func quoteAttrs(q entities.Quote, gen int64) (map[string]types.AttributeValue, error) {
	items := make([]lineItemItem, len(q.Items))
	for i, li := range q.Items {
		items[i] = lineItemItem(li)
	}
	return attributevalue.MarshalMap(quoteItem{
		ID:           q.ID,
		Generation:   gen,
		OSNumber:     q.OSNumber,
		Date:         q.Date,
		Client:       clientItem(q.Client),
		Items:        items,
		Observations: q.Observations,
		Validity:     q.Validity,
		Discount:     q.Discount,
		DiscountType: string(q.DiscountType),
		Taxes:        q.Taxes,
		TravelFee:    q.TravelFee,
		Subtotal:     q.Subtotal,
		Total:        q.Total,
		Status:       string(q.Status),
	})
}

func fromQuoteItem(it quoteItem) entities.Quote {
	items := make([]entities.LineItem, len(it.Items))
	for i, li := range it.Items {
		items[i] = entities.LineItem(li)
	}
	return entities.Quote{
		ID:           it.ID,
		OSNumber:     it.OSNumber,
		Date:         it.Date,
		Client:       entities.Client(it.Client),
		Items:        items,
		Observations: it.Observations,
		Validity:     it.Validity,
		Discount:     it.Discount,
		DiscountType: entities.DiscountType(it.DiscountType),
		Taxes:        it.Taxes,
		TravelFee:    it.TravelFee,
		Subtotal:     it.Subtotal,
		Total:        it.Total,
		Status:       entities.QuoteStatus(it.Status),
	}
}

func companyAttrs(c entities.Company) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(companyItem{
		Key:         entities.CompanyKey,
		Name:        c.Name,
		Owner:       c.Owner,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		LogoDataURL: c.LogoDataURL,
	})
}

func settingsAttrs(v entities.Settings) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(settingsItem{
		Key:            entities.SettingsKey,
		Currency:       v.Currency,
		NextOsSequence: v.NextOsSequence,
		PDFTemplate:    v.PDFTemplate,
	})
}

func decodeCatalog(items []map[string]types.AttributeValue) ([]entities.CatalogEntry, error) {
	out := make([]entities.CatalogEntry, 0, len(items))
	for _, av := range items {
		var it catalogItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCatalogItem(it))
	}
	return out, nil
}

func decodeQuotes(items []map[string]types.AttributeValue) ([]entities.Quote, error) {
	out := make([]entities.Quote, 0, len(items))
	for _, av := range items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}
