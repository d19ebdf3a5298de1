package codesystem

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepoPG loads and seeds catalog source rows in Postgres. The
// schema is managed by the migrations directory; one table per coding
// system, mirroring the CSV column layout.
type CatalogRepoPG struct {
	pool *pgxpool.Pool
}

func NewCatalogRepoPG(pool *pgxpool.Pool) *CatalogRepoPG {
	return &CatalogRepoPG{pool: pool}
}

func catalogTable(system System) (string, error) {
	switch system {
	case SystemLOINC:
		return "loinc_catalog", nil
	case SystemICD10PCS:
		return "icd10pcs_catalog", nil
	}
	return "", fmt.Errorf("unknown coding system %q", system)
}

// LoadRows reads every catalog row for one coding system, in a stable
// order so database builds are reproducible.
func (r *CatalogRepoPG) LoadRows(ctx context.Context, system System) ([]Row, error) {
	table, err := catalogTable(system)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT body_part, modality, laterality, contrast, code, display, component, method
		FROM `+table+`
		ORDER BY body_part, modality, laterality, contrast`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.BodyPart, &row.Modality, &row.Laterality, &row.Contrast,
			&row.Code, &row.Display, &row.Component, &row.Method); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return out, nil
}

// SeedRows upserts catalog rows for one coding system and reports how
// many rows were written. Existing keys are overwritten, so re-seeding
// with an updated builtin catalog is safe.
func (r *CatalogRepoPG) SeedRows(ctx context.Context, system System, rows []Row) (int, error) {
	table, err := catalogTable(system)
	if err != nil {
		return 0, err
	}
	batch := &pgx.Batch{}
	for _, row := range rows {
		key := normalizeKey(Key{
			BodyPart:   row.BodyPart,
			Modality:   row.Modality,
			Laterality: row.Laterality,
			Contrast:   row.Contrast,
		})
		batch.Queue(`
			INSERT INTO `+table+` (body_part, modality, laterality, contrast, code, display, component, method)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			ON CONFLICT (body_part, modality, laterality, contrast)
			DO UPDATE SET code = EXCLUDED.code, display = EXCLUDED.display,
				component = EXCLUDED.component, method = EXCLUDED.method`,
			key.BodyPart, key.Modality, string(key.Laterality), string(key.Contrast),
			row.Code, row.Display, row.Component, row.Method)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range rows {
		if _, err := results.Exec(); err != nil {
			return 0, fmt.Errorf("seed %s: %w", table, err)
		}
	}
	return len(rows), nil
}
