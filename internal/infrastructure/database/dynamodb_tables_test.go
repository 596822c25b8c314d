package database

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestTableDefinitions(t *testing.T) {
	tables := NewDynamoTables("test_")
	defs := tableDefinitions(tables)
	if len(defs) != 3 {
		t.Fatalf("expected 3 tables, got %d", len(defs))
	}

	indexes := map[string][]string{}
	for _, def := range defs {
		name := aws.ToString(def.TableName)
		indexes[name] = []string{}
		for _, gsi := range def.GlobalSecondaryIndexes {
			hash := aws.ToString(gsi.KeySchema[0].AttributeName)
			indexes[name] = append(indexes[name], aws.ToString(gsi.IndexName)+":"+hash)
		}
	}

	want := map[string][]string{
		"test_catalog_entries": {"category-index:category"},
		"test_quotes":          {"date-index:date", "status-index:status"},
		"test_settings":        {},
	}
	if !reflect.DeepEqual(indexes, want) {
		t.Fatalf("expected indexes %v, got %v", want, indexes)
	}

	t.Run("index keys are declared", func(t *testing.T) {
		quotes := defs[1]
		declared := map[string]bool{}
		for _, attr := range quotes.AttributeDefinitions {
			declared[aws.ToString(attr.AttributeName)] = true
		}
		for _, key := range []string{"id", "generation", "status", "date"} {
			if !declared[key] {
				t.Fatalf("attribute %q not declared", key)
			}
		}
	})
}
