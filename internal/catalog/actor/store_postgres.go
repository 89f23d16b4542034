// Copyright (c) 2026 GVDB. All rights reserved.

/*
PostgreSQL implementation of the actor repository.

The aggregation queries encode the hierarchy-aware counting rule directly
in SQL: production counts collapse segments into their parent album via
COUNT(DISTINCT CASE ...), role tallies count every performance row, and an
actor's latest release comes from singles' own dates or segment parents'
dates, never a segment's null date. Per-studio breakdowns and latest codes
resolve for a whole page of actors in one query each.
*/
package actor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/database/schema"
	"gvdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed actor store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// candidateWhere builds the shared WHERE body for the listing candidate
// set. Studio-internal bookkeeping actors (STUDIO_*) are always excluded;
// the placeholder pools only when show_anonymous is off.
func candidateWhere(filter QueryFilter) (string, []any) {
	frags := []string{`a.actor_tag NOT LIKE 'STUDIO\_%'`}
	var args []any

	if !filter.ShowAnonymous {
		args = append(args, PoolTags)
		frags = append(frags, fmt.Sprintf("a.actor_tag != ALL($%d)", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		frags = append(frags, fmt.Sprintf("(a.actor_tag ILIKE $%d OR sn.stage_name ILIKE $%d)", n, n))
	}

	if len(filter.StudioIDs) > 0 {
		args = append(args, filter.StudioIDs)
		frags = append(frags, fmt.Sprintf("sn.studio_id = ANY($%d)", len(args)))
	}

	return strings.Join(frags, " AND "), args
}

// roleSums is the shared per-role tally block. The perf.id guard keeps the
// LEFT JOINs from attributing a phantom "other" role to actors with no
// performances at all.
const roleSums = `
	COALESCE(SUM(CASE WHEN perf.role = 'top' THEN 1 ELSE 0 END), 0) AS role_top,
	COALESCE(SUM(CASE WHEN perf.role = 'bottom' THEN 1 ELSE 0 END), 0) AS role_bottom,
	COALESCE(SUM(CASE WHEN perf.role = 'giver' THEN 1 ELSE 0 END), 0) AS role_giver,
	COALESCE(SUM(CASE WHEN perf.role = 'receiver' THEN 1 ELSE 0 END), 0) AS role_receiver,
	COALESCE(SUM(CASE WHEN perf.id IS NOT NULL
		AND (perf.role IS NULL OR perf.role NOT IN ('top', 'bottom', 'giver', 'receiver'))
		THEN 1 ELSE 0 END), 0) AS role_other`

// hierarchyCount collapses segments into their parent album.
const hierarchyCount = `COUNT(DISTINCT CASE
	WHEN p.type = 'single' THEN p.id
	WHEN p.type = 'segment' THEN p.parent_id
END)`

// attributedDate picks the release date a performance attributes to: a
// single's own date, or the parent album's date for segment work.
const attributedDate = `CASE
	WHEN p.type = 'single' THEN p.release_date
	WHEN p.type = 'segment' THEN album.release_date
END`

func (repository *PostgresRepository) AggregateCandidates(context context.Context, filter QueryFilter) ([]*AggregateRow, error) {
	where, args := candidateWhere(filter)

	query := fmt.Sprintf(`
		SELECT
			a.id, a.actor_tag, a.gvdb_id, a.notes,
			%s AS total_productions,
			%s,
			MAX(%s) AS latest_date,
			MAX(p.updated_at) AS latest_edit
		FROM %s a
		LEFT JOIN %s sn ON a.id = sn.actor_id
		LEFT JOIN %s perf ON sn.id = perf.stage_name_id
		LEFT JOIN %s p ON perf.production_id = p.id AND p.type IN ('single', 'segment')
		LEFT JOIN %s album ON p.parent_id = album.id
		WHERE %s
		GROUP BY a.id, a.actor_tag, a.gvdb_id, a.notes
	`,
		hierarchyCount, roleSums, attributedDate,
		schema.Actors.Table, schema.StageNames.Table, schema.Performances.Table,
		schema.Productions.Table, schema.Productions.Table,
		where,
	)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "aggregate_actors")
	}
	defer rows.Close()

	var results []*AggregateRow
	for rows.Next() {
		row := &AggregateRow{}
		err := rows.Scan(
			&row.ActorID, &row.ActorTag, &row.GvdbID, &row.Notes,
			&row.TotalProductions,
			&row.Roles.Top, &row.Roles.Bottom, &row.Roles.Giver, &row.Roles.Receiver, &row.Roles.Other,
			&row.LatestDate, &row.LatestEdit,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_actor_aggregate")
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (repository *PostgresRepository) StudioDetails(context context.Context, actorIDs []int) (map[int][]StudioDetail, error) {
	details := make(map[int][]StudioDetail, len(actorIDs))
	if len(actorIDs) == 0 {
		return details, nil
	}

	query := fmt.Sprintf(`
		SELECT
			sn.actor_id, s.id, s.name, sn.id, sn.stage_name,
			%s AS productions,
			%s,
			MAX(%s) AS latest_date
		FROM %s sn
		LEFT JOIN %s s ON sn.studio_id = s.id
		LEFT JOIN %s perf ON sn.id = perf.stage_name_id
		LEFT JOIN %s p ON perf.production_id = p.id AND p.type IN ('single', 'segment')
		LEFT JOIN %s album ON p.parent_id = album.id
		WHERE sn.actor_id = ANY($1)
		GROUP BY sn.actor_id, s.id, s.name, sn.id, sn.stage_name
		ORDER BY sn.actor_id, s.name
	`,
		hierarchyCount, roleSums, attributedDate,
		schema.StageNames.Table, schema.Studios.Table, schema.Performances.Table,
		schema.Productions.Table, schema.Productions.Table,
	)

	rows, err := repository.pool.Query(context, query, actorIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "actor_studio_details")
	}
	defer rows.Close()

	for rows.Next() {
		var actorID int
		detail := StudioDetail{}
		err := rows.Scan(
			&actorID, &detail.StudioID, &detail.StudioName, &detail.StageNameID, &detail.StageName,
			&detail.Productions,
			&detail.RoleBreakdown.Top, &detail.RoleBreakdown.Bottom, &detail.RoleBreakdown.Giver,
			&detail.RoleBreakdown.Receiver, &detail.RoleBreakdown.Other,
			&detail.LatestDate,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_studio_detail")
		}

		detail.RolePercentage = detail.RoleBreakdown.Percentages()
		details[actorID] = append(details[actorID], detail)
	}

	return details, rows.Err()
}

func (repository *PostgresRepository) LatestCodes(context context.Context, actorIDs []int) (map[int]string, error) {
	codes := make(map[int]string, len(actorIDs))
	if len(actorIDs) == 0 {
		return codes, nil
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT ON (sn.actor_id)
			sn.actor_id,
			CASE WHEN p.type = 'single' THEN p.code ELSE album.code END AS code
		FROM %s perf
		JOIN %s sn ON perf.stage_name_id = sn.id
		JOIN %s p ON perf.production_id = p.id AND p.type IN ('single', 'segment')
		LEFT JOIN %s album ON p.parent_id = album.id
		WHERE sn.actor_id = ANY($1)
		ORDER BY sn.actor_id, %s DESC NULLS LAST
	`,
		schema.Performances.Table, schema.StageNames.Table,
		schema.Productions.Table, schema.Productions.Table,
		attributedDate,
	)

	rows, err := repository.pool.Query(context, query, actorIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "actor_latest_codes")
	}
	defer rows.Close()

	for rows.Next() {
		var actorID int
		var code *string
		if err := rows.Scan(&actorID, &code); err != nil {
			return nil, dberr.Wrap(err, "scan_latest_code")
		}
		if code != nil {
			codes[actorID] = *code
		}
	}

	return codes, rows.Err()
}

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Actor, error) {
	query := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = $1",
		schema.Actors.ID, schema.Actors.ActorTag, schema.Actors.GvdbID, schema.Actors.Notes,
		schema.Actors.Table, schema.Actors.ID)

	actor := &Actor{StageNames: []StageName{}}
	err := repository.pool.QueryRow(context, query, id).Scan(&actor.ID, &actor.ActorTag, &actor.GvdbID, &actor.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Actor")
		}
		return nil, dberr.Wrap(err, "find_actor")
	}

	namesQuery := fmt.Sprintf(`
		SELECT sn.%s, sn.%s, s.%s, sn.%s
		FROM %s sn
		JOIN %s s ON sn.%s = s.%s
		WHERE sn.%s = $1
		ORDER BY s.%s
	`,
		schema.StageNames.ID, schema.StageNames.StudioID, schema.Studios.Name, schema.StageNames.StageName,
		schema.StageNames.Table,
		schema.Studios.Table, schema.StageNames.StudioID, schema.Studios.ID,
		schema.StageNames.ActorID, schema.Studios.Name,
	)

	rows, err := repository.pool.Query(context, namesQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_stage_names")
	}
	defer rows.Close()

	for rows.Next() {
		name := StageName{}
		if err := rows.Scan(&name.ID, &name.StudioID, &name.StudioName, &name.StageName); err != nil {
			return nil, dberr.Wrap(err, "scan_stage_name")
		}
		actor.StageNames = append(actor.StageNames, name)
	}

	return actor, rows.Err()
}

func (repository *PostgresRepository) TagInUse(context context.Context, tag string, excludeID int) (bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s != $2",
		schema.Actors.ID, schema.Actors.Table, schema.Actors.ActorTag, schema.Actors.ID)

	var id int
	err := repository.pool.QueryRow(context, query, tag, excludeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "check_actor_tag")
	}
	return true, nil
}

func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (int, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_create_actor")
	}
	defer transaction.Rollback(context)

	insertActor := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s",
		schema.Actors.Table,
		schema.Actors.ActorTag, schema.Actors.GvdbID, schema.Actors.Notes,
		schema.Actors.ID)

	var actorID int
	err = transaction.QueryRow(context, insertActor, input.ActorTag, nullable(input.GvdbID), nullable(input.Notes)).Scan(&actorID)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_actor")
	}

	insertName := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		schema.StageNames.Table,
		schema.StageNames.ActorID, schema.StageNames.StudioID, schema.StageNames.StageName)

	batch := &pgx.Batch{}
	for _, name := range input.StageNames {
		batch.Queue(insertName, actorID, name.StudioID, name.StageName)
	}
	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return 0, dberr.Wrap(err, "insert_stage_names")
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_create_actor")
	}

	return actorID, nil
}

func (repository *PostgresRepository) Update(context context.Context, id int, input UpdateInput) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_actor")
	}
	defer transaction.Rollback(context)

	updateActor := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2, %s = $3 WHERE %s = $4",
		schema.Actors.Table,
		schema.Actors.ActorTag, schema.Actors.GvdbID, schema.Actors.Notes, schema.Actors.ID)

	result, err := transaction.Exec(context, updateActor, input.ActorTag, nullable(input.GvdbID), nullable(input.Notes), id)
	if err != nil {
		return dberr.Wrap(err, "update_actor")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Actor")
	}

	insertName := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		schema.StageNames.Table,
		schema.StageNames.ActorID, schema.StageNames.StudioID, schema.StageNames.StageName)
	renameQuery := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2 AND %s = $3",
		schema.StageNames.Table,
		schema.StageNames.StageName, schema.StageNames.ID, schema.StageNames.ActorID)

	batch := &pgx.Batch{}
	for _, name := range input.StageNames {
		switch {
		case name.IsNew:
			batch.Queue(insertName, id, name.StudioID, name.StageName)
		case name.Modified:
			batch.Queue(renameQuery, name.StageName, name.ID, id)
		}
	}
	if batch.Len() > 0 {
		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "apply_stage_name_edits")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_actor")
	}

	return nil
}

func (repository *PostgresRepository) Search(context context.Context, query string) ([]*SearchHit, error) {
	sql := fmt.Sprintf(`
		SELECT DISTINCT
			a.%s AS actor_id,
			sn.%s AS stage_name_id,
			sn.%s,
			a.%s AS actor_name,
			s.%s AS studio_name
		FROM %s sn
		JOIN %s a ON sn.%s = a.%s
		LEFT JOIN %s s ON sn.%s = s.%s
		WHERE (sn.%s ILIKE $1 OR a.%s ILIKE $1)
		ORDER BY sn.%s
		LIMIT 20
	`,
		schema.Actors.ID, schema.StageNames.ID, schema.StageNames.StageName,
		schema.Actors.ActorTag, schema.Studios.Name,
		schema.StageNames.Table,
		schema.Actors.Table, schema.StageNames.ActorID, schema.Actors.ID,
		schema.Studios.Table, schema.StageNames.StudioID, schema.Studios.ID,
		schema.StageNames.StageName, schema.Actors.ActorTag,
		schema.StageNames.StageName,
	)

	rows, err := repository.pool.Query(context, sql, "%"+query+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_actors")
	}
	defer rows.Close()

	var results []*SearchHit
	for rows.Next() {
		hit := &SearchHit{}
		if err := rows.Scan(&hit.ActorID, &hit.StageNameID, &hit.StageName, &hit.ActorName, &hit.StudioName); err != nil {
			return nil, dberr.Wrap(err, "scan_actor_hit")
		}
		results = append(results, hit)
	}

	return results, rows.Err()
}

func (repository *PostgresRepository) Suggestions(context context.Context, query string) ([]*Suggestion, error) {
	sql := fmt.Sprintf(`
		SELECT
			a.id AS actor_id,
			a.actor_tag,
			array_agg(DISTINCT sn.stage_name) FILTER (WHERE sn.stage_name IS NOT NULL) AS stage_names,
			array_agg(DISTINCT s.name) FILTER (WHERE s.name IS NOT NULL) AS studios
		FROM %s a
		LEFT JOIN %s sn ON a.id = sn.actor_id
		LEFT JOIN %s s ON sn.studio_id = s.id
		WHERE (a.actor_tag ILIKE $1 OR sn.stage_name ILIKE $1)
			AND a.actor_tag NOT LIKE 'STUDIO\_%%'
		GROUP BY a.id, a.actor_tag
		ORDER BY
			CASE WHEN a.actor_tag ILIKE $2 THEN 0 ELSE 1 END,
			a.actor_tag
		LIMIT 10
	`,
		schema.Actors.Table, schema.StageNames.Table, schema.Studios.Table,
	)

	rows, err := repository.pool.Query(context, sql, "%"+query+"%", query+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "actor_suggestions")
	}
	defer rows.Close()

	var results []*Suggestion
	for rows.Next() {
		suggestion := &Suggestion{}
		if err := rows.Scan(&suggestion.ActorID, &suggestion.ActorTag, &suggestion.StageNames, &suggestion.Studios); err != nil {
			return nil, dberr.Wrap(err, "scan_actor_suggestion")
		}
		if suggestion.StageNames == nil {
			suggestion.StageNames = []string{}
		}
		if suggestion.Studios == nil {
			suggestion.Studios = []string{}
		}
		results = append(results, suggestion)
	}

	return results, rows.Err()
}

// nullable maps an empty trimmed string to SQL NULL.
func nullable(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
