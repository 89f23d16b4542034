// Copyright (c) 2026 GVDB. All rights reserved.

package production

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/database/schema"
	"gvdb/internal/platform/dberr"
)

func (repository *PostgresRepository) FindByID(context context.Context, id int) (*Production, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, s.%s, p.%s
		FROM %s p
		LEFT JOIN %s s ON p.%s = s.%s
		WHERE p.%s = $1
	`,
		schema.Productions.ID, schema.Productions.Code, schema.Productions.Type,
		schema.Productions.Title, schema.Productions.ReleaseDate, schema.Productions.Comment,
		schema.Productions.StudioID, schema.Studios.Name, schema.Productions.ParentID,
		schema.Productions.Table,
		schema.Studios.Table, schema.Productions.StudioID, schema.Studios.ID,
		schema.Productions.ID,
	)

	production := &Production{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&production.ID, &production.Code, &production.Type,
		&production.Title, &production.ReleaseDate, &production.Comment,
		&production.StudioID, &production.StudioName, &production.ParentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Production")
		}
		return nil, dberr.Wrap(err, "find_production")
	}

	if production.ParentID != nil {
		parent := &ParentAlbum{}
		parentQuery := fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = $1",
			schema.Productions.ID, schema.Productions.Code, schema.Productions.StudioID,
			schema.Productions.Table, schema.Productions.ID)
		if err := repository.pool.QueryRow(context, parentQuery, *production.ParentID).Scan(&parent.ID, &parent.Code, &parent.StudioID); err != nil {
			return nil, dberr.Wrap(err, "find_parent_album")
		}
		production.ParentAlbum = parent
	}

	// Albums carry no direct performances or tags.
	production.Performers = []Performer{}
	production.Tags = []TagRef{}
	if production.Type != TypeAlbum {
		if err := repository.loadPerformers(context, production); err != nil {
			return nil, err
		}
		if err := repository.loadTags(context, production); err != nil {
			return nil, err
		}
	}

	availableTags, err := repository.loadAvailableTags(context)
	if err != nil {
		return nil, err
	}
	production.AvailableTags = availableTags

	return production, nil
}

func (repository *PostgresRepository) loadPerformers(context context.Context, production *Production) error {
	query := fmt.Sprintf(`
		SELECT perf.%s, perf.%s, perf.%s, perf.%s, sn.%s, sn.%s, s.%s
		FROM %s perf
		JOIN %s sn ON perf.%s = sn.%s
		LEFT JOIN %s s ON sn.%s = s.%s
		WHERE perf.%s = $1
		ORDER BY sn.%s
	`,
		schema.Performances.ID, schema.Performances.StageNameID, schema.Performances.Role, schema.Performances.PerformerType,
		schema.StageNames.StageName, schema.StageNames.StudioID, schema.Studios.Name,
		schema.Performances.Table,
		schema.StageNames.Table, schema.Performances.StageNameID, schema.StageNames.ID,
		schema.Studios.Table, schema.StageNames.StudioID, schema.Studios.ID,
		schema.Performances.ProductionID, schema.StageNames.StageName,
	)

	rows, err := repository.pool.Query(context, query, production.ID)
	if err != nil {
		return dberr.Wrap(err, "list_performers")
	}
	defer rows.Close()

	for rows.Next() {
		performer := Performer{}
		err := rows.Scan(&performer.ID, &performer.StageNameID, &performer.Role, &performer.PerformerType,
			&performer.StageName, &performer.StudioID, &performer.StudioName)
		if err != nil {
			return dberr.Wrap(err, "scan_performer")
		}
		production.Performers = append(production.Performers, performer)
	}

	return rows.Err()
}

func (repository *PostgresRepository) loadTags(context context.Context, production *Production) error {
	query := fmt.Sprintf(`
		SELECT pt.%s, t.%s, t.%s
		FROM %s pt
		JOIN %s t ON pt.%s = t.%s
		WHERE pt.%s = $1
		ORDER BY t.%s, t.%s
	`,
		schema.ProductionTags.TagID, schema.Tags.Category, schema.Tags.Name,
		schema.ProductionTags.Table,
		schema.Tags.Table, schema.ProductionTags.TagID, schema.Tags.ID,
		schema.ProductionTags.ProductionID,
		schema.Tags.Category, schema.Tags.Name,
	)

	rows, err := repository.pool.Query(context, query, production.ID)
	if err != nil {
		return dberr.Wrap(err, "list_production_tags")
	}
	defer rows.Close()

	for rows.Next() {
		tag := TagRef{}
		if err := rows.Scan(&tag.TagID, &tag.Category, &tag.Name); err != nil {
			return dberr.Wrap(err, "scan_production_tag")
		}
		production.Tags = append(production.Tags, tag)
	}

	return rows.Err()
}

func (repository *PostgresRepository) loadAvailableTags(context context.Context) (map[string][]Tag, error) {
	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s ORDER BY %s, %s",
		schema.Tags.ID, schema.Tags.Category, schema.Tags.Name,
		schema.Tags.Table, schema.Tags.Category, schema.Tags.Name)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	available := map[string][]Tag{
		"sex_act":   {},
		"style":     {},
		"scenario":  {},
		"body_type": {},
		"source":    {},
	}
	for rows.Next() {
		tag := Tag{}
		if err := rows.Scan(&tag.ID, &tag.Category, &tag.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		if _, ok := available[tag.Category]; ok {
			available[tag.Category] = append(available[tag.Category], tag)
		}
	}

	return available, rows.Err()
}

func (repository *PostgresRepository) GetType(context context.Context, id int) (Type, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		schema.Productions.Type, schema.Productions.Table, schema.Productions.ID)

	var productionType Type
	if err := repository.pool.QueryRow(context, query, id).Scan(&productionType); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("Production")
		}
		return "", dberr.Wrap(err, "get_production_type")
	}

	return productionType, nil
}

func (repository *PostgresRepository) Create(context context.Context, input CreateInput) (int, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_create_production")
	}
	defer transaction.Rollback(context)

	productionType := Type(input.Type)
	studioID := input.StudioID
	releaseDate := nullable(input.ReleaseDate)

	var parentID *int
	if productionType == TypeSegment {
		parentQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = $2",
			schema.Productions.ID, schema.Productions.Table,
			schema.Productions.Code, schema.Productions.Type)

		var id int
		if err := transaction.QueryRow(context, parentQuery, input.ParentCode, TypeAlbum).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, apperr.NotFound("Parent album")
			}
			return 0, dberr.Wrap(err, "find_parent_album")
		}
		parentID = &id

		// Segments inherit both from the parent at read time.
		studioID = nil
		releaseDate = nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.Productions.Table,
		schema.Productions.Code, schema.Productions.StudioID, schema.Productions.Title,
		schema.Productions.ReleaseDate, schema.Productions.Type, schema.Productions.ParentID,
		schema.Productions.Comment,
		schema.Productions.ID,
	)

	var productionID int
	err = transaction.QueryRow(context, insertQuery,
		input.Code, studioID, nullable(input.Title), releaseDate,
		productionType, parentID, nullable(input.Comment),
	).Scan(&productionID)
	if err != nil {
		return 0, dberr.Wrap(err, "insert_production")
	}

	if productionType != TypeAlbum {
		if len(input.Performers) > 0 {
			insertPerformance := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, 'named')",
				schema.Performances.Table,
				schema.Performances.ProductionID, schema.Performances.StageNameID,
				schema.Performances.Role, schema.Performances.PerformerType)

			batch := &pgx.Batch{}
			for _, performer := range input.Performers {
				batch.Queue(insertPerformance, productionID, performer.StageNameID, normalizeRole(performer.Role))
			}
			if err := transaction.SendBatch(context, batch).Close(); err != nil {
				return 0, dberr.Wrap(err, "insert_performances")
			}
		}

		if len(input.Tags) > 0 {
			if err := replaceTags(context, transaction, productionID, input.Tags, false); err != nil {
				return 0, err
			}
		}
	}

	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "commit_create_production")
	}

	return productionID, nil
}

func (repository *PostgresRepository) Update(context context.Context, id int, productionType Type, input UpdateInput) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_production")
	}
	defer transaction.Rollback(context)

	// Code uniqueness among other productions, checked inside the
	// transaction so the edit and the check see the same state.
	collisionQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s != $2",
		schema.Productions.ID, schema.Productions.Table,
		schema.Productions.Code, schema.Productions.ID)

	var collidingID int
	err = transaction.QueryRow(context, collisionQuery, input.Code, id).Scan(&collidingID)
	if err == nil {
		return apperr.Conflict(fmt.Sprintf("Production code %q already exists", input.Code))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dberr.Wrap(err, "check_code_collision")
	}

	if productionType == TypeSegment {
		// Studio and release date stay inherited from the parent album.
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = CURRENT_TIMESTAMP
			WHERE %s = $4
		`,
			schema.Productions.Table,
			schema.Productions.Code, schema.Productions.Title, schema.Productions.Comment,
			schema.Productions.UpdatedAt, schema.Productions.ID)

		if _, err := transaction.Exec(context, updateQuery, input.Code, nullable(input.Title), nullable(input.Comment), id); err != nil {
			return dberr.Wrap(err, "update_segment")
		}
	} else {
		updateQuery := fmt.Sprintf(`
			UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = CURRENT_TIMESTAMP
			WHERE %s = $6
		`,
			schema.Productions.Table,
			schema.Productions.Code, schema.Productions.Title, schema.Productions.ReleaseDate,
			schema.Productions.Comment, schema.Productions.StudioID,
			schema.Productions.UpdatedAt, schema.Productions.ID)

		if _, err := transaction.Exec(context, updateQuery, input.Code, nullable(input.Title),
			nullable(input.ReleaseDate), nullable(input.Comment), input.StudioID, id); err != nil {
			return dberr.Wrap(err, "update_production")
		}
	}

	if productionType != TypeAlbum {
		if err := applyPerformerEdits(context, transaction, id, input); err != nil {
			return err
		}
		if err := replaceTags(context, transaction, id, input.Tags, true); err != nil {
			return err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_production")
	}

	return nil
}

// applyPerformerEdits runs the payload's performer operations in order:
// listed deletions, is_new inserts, modified role updates.
func applyPerformerEdits(context context.Context, transaction pgx.Tx, productionID int, input UpdateInput) error {
	if len(input.DeletePerformers) > 0 {
		deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = ANY($2)",
			schema.Performances.Table, schema.Performances.ProductionID, schema.Performances.StageNameID)
		if _, err := transaction.Exec(context, deleteQuery, productionID, input.DeletePerformers); err != nil {
			return dberr.Wrap(err, "delete_performances")
		}
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		schema.Performances.Table,
		schema.Performances.ProductionID, schema.Performances.StageNameID,
		schema.Performances.Role, schema.Performances.PerformerType)
	updateQuery := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 AND %s = $4",
		schema.Performances.Table,
		schema.Performances.Role, schema.Performances.PerformerType,
		schema.Performances.ProductionID, schema.Performances.StageNameID)

	batch := &pgx.Batch{}
	for _, performer := range input.Performers {
		performerType := performer.PerformerType
		if performerType == "" {
			performerType = "named"
		}

		switch {
		case performer.IsNew:
			batch.Queue(insertQuery, productionID, performer.StageNameID, normalizeRole(performer.Role), performerType)
		case performer.Modified:
			batch.Queue(updateQuery, normalizeRole(performer.Role), performerType, productionID, performer.StageNameID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "apply_performer_edits")
	}
	return nil
}

// replaceTags synchronizes production_tags with a clear-and-reinsert batch.
func replaceTags(context context.Context, transaction pgx.Tx, productionID int, tagIDs []int, clear bool) error {
	if clear {
		deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
			schema.ProductionTags.Table, schema.ProductionTags.ProductionID)
		if _, err := transaction.Exec(context, deleteQuery, productionID); err != nil {
			return dberr.Wrap(err, "clear_production_tags")
		}
	}

	if len(tagIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.ProductionTags.Table, schema.ProductionTags.ProductionID, schema.ProductionTags.TagID)

	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(insertQuery, productionID, tagID)
	}
	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_production_tags")
	}
	return nil
}

func (repository *PostgresRepository) Picker(context context.Context, filter PickerFilter) ([]*PickerRow, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, s.%s, parent.%s
		FROM %s p
		LEFT JOIN %s s ON p.%s = s.%s
		LEFT JOIN %s parent ON p.%s = parent.%s
		WHERE TRUE
	`,
		schema.Productions.ID, schema.Productions.Code, schema.Productions.Title,
		schema.Productions.ReleaseDate, schema.Productions.Type, schema.Productions.StudioID,
		schema.Studios.Name, schema.Productions.Code,
		schema.Productions.Table,
		schema.Studios.Table, schema.Productions.StudioID, schema.Studios.ID,
		schema.Productions.Table, schema.Productions.ParentID, schema.Productions.ID,
	))

	if len(filter.Types) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = ANY($%d)", schema.Productions.Type, argID))
		args = append(args, filter.Types)
		argID++
	}

	if len(filter.StudioIDs) > 0 {
		// A segment matches through its parent album's studio.
		queryBuilder.WriteString(fmt.Sprintf(" AND (p.%s = ANY($%d) OR p.%s IN (SELECT %s FROM %s WHERE %s = ANY($%d)))",
			schema.Productions.StudioID, argID,
			schema.Productions.ParentID, schema.Productions.ID, schema.Productions.Table,
			schema.Productions.StudioID, argID))
		args = append(args, filter.StudioIDs)
		argID++
	}

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		queryBuilder.WriteString(fmt.Sprintf(" AND (p.%s ILIKE $%d OR p.%s ILIKE $%d OR s.%s ILIKE $%d)",
			schema.Productions.Code, argID, schema.Productions.Title, argID+1, schema.Studios.Name, argID+2))
		args = append(args, pattern, pattern, pattern)
		argID += 3
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.%s DESC LIMIT $%d", schema.Productions.ReleaseDate, argID))
	args = append(args, filter.Limit)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "picker_search")
	}
	defer rows.Close()

	var results []*PickerRow
	for rows.Next() {
		row := &PickerRow{}
		err := rows.Scan(&row.ID, &row.Code, &row.Title, &row.ReleaseDate,
			&row.Type, &row.StudioID, &row.StudioName, &row.ParentCode)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_picker_row")
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

func (repository *PostgresRepository) SearchAlbums(context context.Context, query string) ([]*AlbumSuggestion, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, s.%s
		FROM %s p
		LEFT JOIN %s s ON p.%s = s.%s
		WHERE p.%s = '%s'
	`,
		schema.Productions.ID, schema.Productions.Code, schema.Productions.Title,
		schema.Productions.ReleaseDate, schema.Studios.Name,
		schema.Productions.Table,
		schema.Studios.Table, schema.Productions.StudioID, schema.Studios.ID,
		schema.Productions.Type, TypeAlbum,
	))

	if query != "" {
		pattern := "%" + query + "%"
		queryBuilder.WriteString(fmt.Sprintf(" AND (p.%s ILIKE $1 OR p.%s ILIKE $2)",
			schema.Productions.Code, schema.Productions.Title))
		args = append(args, pattern, pattern)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY p.%s DESC LIMIT 10", schema.Productions.ReleaseDate))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_albums")
	}
	defer rows.Close()

	var results []*AlbumSuggestion
	for rows.Next() {
		suggestion := &AlbumSuggestion{}
		err := rows.Scan(&suggestion.ID, &suggestion.Code, &suggestion.Title,
			&suggestion.ReleaseDate, &suggestion.StudioName)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_album_suggestion")
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

// normalizeRole maps the form's "other" pseudo-role and empty input to NULL.
func normalizeRole(role string) *string {
	if role == "" || role == "other" {
		return nil
	}
	return &role
}
