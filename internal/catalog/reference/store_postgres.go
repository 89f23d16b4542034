// Copyright (c) 2026 GVDB. All rights reserved.

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gvdb/internal/platform/database/schema"
	"gvdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed reference store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) StudioNames(context context.Context) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s",
		schema.Studios.Name, schema.Studios.Table, schema.Studios.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_studio_names")
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dberr.Wrap(err, "scan_studio_name")
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (repository *PostgresRepository) Studios(context context.Context) ([]*StudioRef, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s",
		schema.Studios.ID, schema.Studios.Name, schema.Studios.Table, schema.Studios.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_studios")
	}
	defer rows.Close()

	studios := []*StudioRef{}
	for rows.Next() {
		studio := &StudioRef{}
		if err := rows.Scan(&studio.ID, &studio.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_studio")
		}
		studios = append(studios, studio)
	}

	return studios, rows.Err()
}

func (repository *PostgresRepository) TagsByCategory(context context.Context) (map[string][]string, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s",
		schema.Tags.Category, schema.Tags.Name, schema.Tags.Table)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := map[string][]string{}
	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags[category] = append(tags[category], name)
	}

	return tags, rows.Err()
}
