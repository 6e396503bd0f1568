package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"culture-media/internal/database"
	"culture-media/internal/model"
)

// ErrRecordNotFound 查無此成分紀錄
var ErrRecordNotFound = errors.New("record not found")

// RecordFilter 成分紀錄的查詢條件，空欄位表示不過濾
type RecordFilter struct {
	Species    string
	Phase      string
	Ingredient string
}

const recordColumns = `id, species, phase, ingredient, quantity, unit, notes, created_by, created_at, updated_at`

// ListRecords 依條件列出成分紀錄
// Species 與 Phase 為精確比對，Ingredient 為不分大小寫的子字串比對
func ListRecords(ctx context.Context, db database.DB, f RecordFilter) ([]model.MediaRecord, error) {
	var (
		conds []string
		args  []any
	)
	if f.Species != "" {
		args = append(args, f.Species)
		conds = append(conds, fmt.Sprintf("species = $%d", len(args)))
	}
	if f.Phase != "" {
		args = append(args, f.Phase)
		conds = append(conds, fmt.Sprintf("phase = $%d", len(args)))
	}
	if f.Ingredient != "" {
		args = append(args, f.Ingredient)
		conds = append(conds, fmt.Sprintf("ingredient ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := `SELECT ` + recordColumns + ` FROM media_records`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY species, phase, ingredient, id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListRecords: %w", err)
	}
	defer rows.Close()

	var records []model.MediaRecord
	for rows.Next() {
		var r model.MediaRecord
		if err := rows.Scan(
			&r.ID,
			&r.Species,
			&r.Phase,
			&r.Ingredient,
			&r.Quantity,
			&r.Unit,
			&r.Notes,
			&r.CreatedBy,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRecords: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRecords: %w", err)
	}
	return records, nil
}

func GetRecordByID(ctx context.Context, db database.DB, id int64) (*model.MediaRecord, error) {
	row := db.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM media_records WHERE id = $1`,
		id,
	)
	r := &model.MediaRecord{}
	if err := row.Scan(
		&r.ID,
		&r.Species,
		&r.Phase,
		&r.Ingredient,
		&r.Quantity,
		&r.Unit,
		&r.Notes,
		&r.CreatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetRecordByID: %w", err)
	}
	return r, nil
}

func CreateRecord(ctx context.Context, db database.DB, r *model.MediaRecord) error {
	row := db.QueryRow(ctx,
		`INSERT INTO media_records (species, phase, ingredient, quantity, unit, notes, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		r.Species,
		r.Phase,
		r.Ingredient,
		r.Quantity,
		r.Unit,
		r.Notes,
		r.CreatedBy,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return fmt.Errorf("CreateRecord: %w", err)
	}
	return nil
}

func UpdateRecord(ctx context.Context, db database.DB, r *model.MediaRecord) error {
	tag, err := db.Exec(ctx,
		`UPDATE media_records
		 SET species = $1, phase = $2, ingredient = $3, quantity = $4, unit = $5, notes = $6, updated_at = now()
		 WHERE id = $7`,
		r.Species,
		r.Phase,
		r.Ingredient,
		r.Quantity,
		r.Unit,
		r.Notes,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRecord: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateRecord: %w", ErrRecordNotFound)
	}
	return nil
}

func DeleteRecord(ctx context.Context, db database.DB, id int64) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM media_records WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteRecord: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteRecord: %w", ErrRecordNotFound)
	}
	return nil
}

// ListSpecies 列出紀錄中出現過的物種，供過濾選單使用
func ListSpecies(ctx context.Context, db database.DB) ([]string, error) {
	return listDistinct(ctx, db, "ListSpecies",
		`SELECT DISTINCT species FROM media_records ORDER BY species`)
}

// ListPhases 列出紀錄中出現過的培養階段，供過濾選單使用
func ListPhases(ctx context.Context, db database.DB) ([]string, error) {
	return listDistinct(ctx, db, "ListPhases",
		`SELECT DISTINCT phase FROM media_records ORDER BY phase`)
}

func listDistinct(ctx context.Context, db database.DB, op, query string) ([]string, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return values, nil
}
