package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Index names shared with the DynamoDB record store.
const (
	CatalogCategoryIndex = "category-index"
	QuoteStatusIndex     = "status-index"
	QuoteDateIndex       = "date-index"
)

// DynamoTables names the three tables of one installation.
type DynamoTables struct {
	Catalog  string
	Quotes   string
	Settings string
}

func NewDynamoTables(prefix string) DynamoTables {
	return DynamoTables{
		Catalog:  prefix + "catalog_entries",
		Quotes:   prefix + "quotes",
		Settings: prefix + "settings",
	}
}

const tableWaitTimeout = 2 * time.Minute

// EnsureDynamoTables creates any missing table (and its secondary indexes) and
// waits until it is active.
//
// Table requirements:
//   - catalog_entries: PK id (S), SK generation (N), GSI category-index (category, generation)
//   - quotes: PK id (S), SK generation (N), GSI status-index (status, generation),
//     GSI date-index (date, generation)
//   - settings: PK key (S)
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, t DynamoTables) error {
	defs := tableDefinitions(t)
	for _, def := range defs {
		if err := ensureTable(ctx, ddb, def); err != nil {
			return fmt.Errorf("%w: table %s: %v", interfaces.ErrStoreUnavailable, aws.ToString(def.TableName), err)
		}
	}
	return nil
}

func tableDefinitions(t DynamoTables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		generationalTable(t.Catalog, map[string]string{CatalogCategoryIndex: "category"}),
		generationalTable(t.Quotes, map[string]string{QuoteStatusIndex: "status", QuoteDateIndex: "date"}),
		{
			TableName:   aws.String(t.Settings),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
			},
		},
	}
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, def *dynamodb.CreateTableInput) error {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return err
	}

	if _, err := ddb.CreateTable(ctx, def); err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return err
		}
	}
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, tableWaitTimeout)
}

// generationalTable keys rows by (id, generation) and adds one GSI per entry
// of indexes (index name to hash attribute), ranged by generation.
func generationalTable(name string, indexes map[string]string) *dynamodb.CreateTableInput {
	names := make([]string, 0, len(indexes))
	for index := range indexes {
		names = append(names, index)
	}
	sort.Strings(names)

	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		{AttributeName: aws.String("generation"), AttributeType: types.ScalarAttributeTypeN},
	}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(names))
	for _, index := range names {
		key := indexes[index]
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(index),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("generation"), KeyType: types.KeyTypeRange},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: attrs,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("generation"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: gsis,
	}
}
