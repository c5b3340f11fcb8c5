package mysql

import (
	"context"
	"fmt"
)

// Tables lists the table names of the configured schema, for the /table
// introspection endpoint.
func (r *SchemaRepository) Tables(ctx context.Context) ([]string, error) {
	tables := []string{}
	err := r.db.SelectContext(ctx, &tables, `
SELECT table_name
  FROM information_schema.tables
 WHERE table_schema = ?
 ORDER BY table_name`,
		r.schema)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// Name returns the configured schema name.
func (r *SchemaRepository) Name() string {
	return r.schema
}
