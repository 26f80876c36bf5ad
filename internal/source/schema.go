package source

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// TableSchema maps field names to the store's field-type strings
// ("formula", "rollup", "autoNumber", ...) for one table.
type TableSchema map[string]string

// SchemaSet holds the field-type metadata for every table the client
// has seen. The zero value is usable and reports no types, which
// degrades classification gracefully rather than failing it.
type SchemaSet struct {
	mu     sync.RWMutex
	tables map[string]TableSchema
}

// FieldType returns the schema type for a field, or "" when unknown.
func (s *SchemaSet) FieldType(table, field string) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables[table][field]
}

// Add records one table's schema.
func (s *SchemaSet) Add(table string, schema TableSchema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tables == nil {
		s.tables = make(map[string]TableSchema)
	}
	s.tables[table] = schema
}

// Schema fetches field-type metadata for a table. The endpoint returns
// {"fields": [{"name": ..., "type": ...}, ...]}.
func (c *Client) Schema(ctx context.Context, table string) (TableSchema, error) {
	payload, err := c.fetch(ctx, c.baseURL+"/schema/"+table)
	if err != nil {
		return nil, fmt.Errorf("fetch schema %s: %w", table, err)
	}
	var doc struct {
		Fields []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", table, err)
	}
	schema := make(TableSchema, len(doc.Fields))
	for _, f := range doc.Fields {
		schema[f.Name] = f.Type
	}
	return schema, nil
}
