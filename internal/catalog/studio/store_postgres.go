// Copyright (c) 2026 GVDB. All rights reserved.

package studio

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gvdb/internal/platform/database/schema"
	"gvdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed studio store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Studio, error) {
	query := fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s",
		schema.Studios.ID, schema.Studios.Name, schema.Studios.Table, schema.Studios.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_studios")
	}
	defer rows.Close()

	var studios []*Studio
	for rows.Next() {
		studio := &Studio{}
		if err := rows.Scan(&studio.ID, &studio.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_studio")
		}
		studios = append(studios, studio)
	}

	return studios, rows.Err()
}

func (repository *PostgresRepository) Create(context context.Context, name string) (int, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_create_studio")
	}
	defer transaction.Rollback(context)

	insertStudio := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
		schema.Studios.Table, schema.Studios.Name, schema.Studios.ID)

	var studioID int
	if err := transaction.QueryRow(context, insertStudio, name).Scan(&studioID); err != nil {
		return 0, dberr.Wrap(err, "insert_studio")
	}

	// Seed the placeholder stage names. The pool actors are fixtures, but
	// a missing one must not block studio creation, so unmatched tags are
	// simply skipped and the insert tolerates reruns.
	seedName := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		SELECT %s, $1, $2 FROM %s WHERE %s = $3
		ON CONFLICT DO NOTHING
	`,
		schema.StageNames.Table,
		schema.StageNames.ActorID, schema.StageNames.StudioID, schema.StageNames.StageName,
		schema.Actors.ID, schema.Actors.Table, schema.Actors.ActorTag,
	)

	batch := &pgx.Batch{}
	for poolTag, stageName := range poolStageNames(name) {
		batch.Queue(seedName, studioID, stageName, poolTag)
	}
	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return 0, dberr.Wrap(err, "seed_pool_stage_names")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_create_studio")
	}

	return studioID, nil
}

func (repository *PostgresRepository) Roster(context context.Context, studioID int) ([]*RosterEntry, error) {
	query := fmt.Sprintf(`
		SELECT sn.%s, sn.%s, a.%s, a.%s
		FROM %s sn
		JOIN %s a ON sn.%s = a.%s
		WHERE sn.%s = $1
		ORDER BY
			CASE WHEN a.%s LIKE '%%POOL' THEN 0 ELSE 1 END,
			sn.%s
	`,
		schema.StageNames.ID, schema.StageNames.StageName, schema.Actors.ID, schema.Actors.ActorTag,
		schema.StageNames.Table,
		schema.Actors.Table, schema.StageNames.ActorID, schema.Actors.ID,
		schema.StageNames.StudioID,
		schema.Actors.ActorTag,
		schema.StageNames.StageName,
	)

	rows, err := repository.pool.Query(context, query, studioID)
	if err != nil {
		return nil, dberr.Wrap(err, "studio_roster")
	}
	defer rows.Close()

	var entries []*RosterEntry
	for rows.Next() {
		entry := &RosterEntry{}
		if err := rows.Scan(&entry.StageNameID, &entry.StageName, &entry.ActorID, &entry.ActorTag); err != nil {
			return nil, dberr.Wrap(err, "scan_roster_entry")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
