// Copyright (c) 2026 GVDB. All rights reserved.

/*
PostgreSQL implementation of the production repository.

Search reads exclusively from production_search_view. The count query wraps
the identical predicate as the page fetch and both run on one acquired
connection. Performer names resolve in two batched queries per page (one for
album rows' stage-name ids, one for single/segment rows' production ids)
rather than per row.
*/
package production

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

// NewPostgresRepository constructs a PostgreSQL backed production store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// querier is the minimal query surface shared by the pool and an acquired
// connection, letting credit resolution run on either.
type querier interface {
	Query(context context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (repository *PostgresRepository) Search(context context.Context, filter SearchFilter, orderBy string, limit, offset int) ([]*SearchRow, int, error) {
	where, args := CompileFilter(filter)

	// One connection for count and fetch so the predicate sees one state.
	conn, err := repository.pool.Acquire(context)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "acquire_search_conn")
	}
	defer conn.Release()

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", schema.SearchView.Table, where)

	var total int
	if err := conn.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_search")
	}

	fetchQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		viewColumns(), schema.SearchView.Table, where, orderBy, len(args)+1, len(args)+2)
	fetchArgs := append(args, limit, offset)

	rows, err := conn.Query(context, fetchQuery, fetchArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "fetch_search_page")
	}

	results, err := scanSearchRows(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := repository.resolveCredits(context, conn, results); err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

func (repository *PostgresRepository) SegmentsByParent(context context.Context, parentID int) ([]*SearchRow, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s",
		viewColumns(), schema.SearchView.Table, schema.SearchView.ParentID, schema.SearchView.Code)

	rows, err := repository.pool.Query(context, query, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, "fetch_segments")
	}

	results, err := scanSearchRows(rows)
	if err != nil {
		return nil, err
	}

	if err := repository.resolveCredits(context, repository.pool, results); err != nil {
		return nil, err
	}

	return results, nil
}

// viewColumns returns the view's column list in scan order.
func viewColumns() string {
	cols := schema.SearchView.Columns()
	list := cols[0]
	for _, col := range cols[1:] {
		list += ", " + col
	}
	return list
}

// scanSearchRows drains a view result set, normalizing NULL arrays to empty
// slices so the JSON layer always emits [].
func scanSearchRows(rows pgx.Rows) ([]*SearchRow, error) {
	defer rows.Close()

	var results []*SearchRow
	for rows.Next() {
		row := &SearchRow{}
		err := rows.Scan(
			&row.ID, &row.Code, &row.Type, &row.Title, &row.ReleaseDate,
			&row.Comment, &row.Studio, &row.ParentID, &row.UpdatedAt,
			&row.SexActs, &row.Styles, &row.Scenarios, &row.BodyTypes,
			&row.Sources, &row.PerformerIDs,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_search_row")
		}

		normalizeArrays(row)
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_search_rows")
	}

	return results, nil
}

func normalizeArrays(row *SearchRow) {
	if row.SexActs == nil {
		row.SexActs = []string{}
	}
	if row.Styles == nil {
		row.Styles = []string{}
	}
	if row.Scenarios == nil {
		row.Scenarios = []string{}
	}
	if row.BodyTypes == nil {
		row.BodyTypes = []string{}
	}
	if row.Sources == nil {
		row.Sources = []string{}
	}
	if row.PerformerIDs == nil {
		row.PerformerIDs = []int{}
	}
}

/*
resolveCredits fills in the Actors display string for a batch of rows.

Album rows resolve their performer-id arrays directly against stage_names;
single and segment rows resolve through their own performance records to
recover per-performer roles. One query per shape covers the whole batch.
*/
func (repository *PostgresRepository) resolveCredits(context context.Context, q querier, results []*SearchRow) error {
	var stageNameIDs []int
	var productionIDs []int

	for _, row := range results {
		if len(row.PerformerIDs) == 0 {
			continue
		}
		if row.Type == TypeAlbum {
			stageNameIDs = append(stageNameIDs, row.PerformerIDs...)
		} else {
			productionIDs = append(productionIDs, row.ID)
		}
	}

	stageNames := make(map[int]string)
	if len(stageNameIDs) > 0 {
		query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = ANY($1)",
			schema.StageNames.ID, schema.StageNames.StageName,
			schema.StageNames.Table, schema.StageNames.ID)

		rows, err := q.Query(context, query, stageNameIDs)
		if err != nil {
			return dberr.Wrap(err, "resolve_album_names")
		}
		defer rows.Close()

		for rows.Next() {
			var id int
			var name string
			if err := rows.Scan(&id, &name); err != nil {
				return dberr.Wrap(err, "scan_album_name")
			}
			stageNames[id] = name
		}
		rows.Close()
	}

	creditsByProduction := make(map[int][]Credit)
	if len(productionIDs) > 0 {
		query := fmt.Sprintf(`
			SELECT perf.%s, sn.%s, perf.%s
			FROM %s perf
			JOIN %s sn ON sn.%s = perf.%s
			WHERE perf.%s = ANY($1)
		`,
			schema.Performances.ProductionID, schema.StageNames.StageName, schema.Performances.Role,
			schema.Performances.Table,
			schema.StageNames.Table, schema.StageNames.ID, schema.Performances.StageNameID,
			schema.Performances.ProductionID,
		)

		rows, err := q.Query(context, query, productionIDs)
		if err != nil {
			return dberr.Wrap(err, "resolve_credits")
		}
		defer rows.Close()

		for rows.Next() {
			var productionID int
			var credit Credit
			if err := rows.Scan(&productionID, &credit.Name, &credit.Role); err != nil {
				return dberr.Wrap(err, "scan_credit")
			}
			creditsByProduction[productionID] = append(creditsByProduction[productionID], credit)
		}
		rows.Close()
	}

	for _, row := range results {
		switch {
		case len(row.PerformerIDs) == 0:
			row.Actors = ""
		case row.Type == TypeAlbum:
			var names []string
			for _, id := range row.PerformerIDs {
				if name, ok := stageNames[id]; ok {
					names = append(names, name)
				}
			}
			row.Actors = JoinAlbumNames(names)
		default:
			row.Actors = JoinCredits(creditsByProduction[row.ID])
		}
	}

	return nil
}
