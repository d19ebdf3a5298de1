package terminology

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepoPG loads and seeds vocabulary rows in Postgres. Like the catalog
// tables, the vocabulary is read once at startup and never queried on
// the serving path.
type RepoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) *RepoPG {
	return &RepoPG{pool: pool}
}

// LoadEntries reads every vocabulary entry in token order.
func (r *RepoPG) LoadEntries(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT token, expansion, tag
		FROM terminology_entry
		ORDER BY token`)
	if err != nil {
		return nil, fmt.Errorf("query terminology_entry: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var tag string
		if err := rows.Scan(&e.Token, &e.Expansion, &tag); err != nil {
			return nil, fmt.Errorf("scan terminology_entry: %w", err)
		}
		e.Tag = Tag(tag)
		if err := e.validate(); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read terminology_entry: %w", err)
	}
	return out, nil
}

// LoadBlocks reads every false-positive block in token order.
func (r *RepoPG) LoadBlocks(ctx context.Context) ([]Block, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT token, contexts
		FROM terminology_block
		ORDER BY token`)
	if err != nil {
		return nil, fmt.Errorf("query terminology_block: %w", err)
	}
	defer rows.Close()

	var out []Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.Token, &b.Contexts); err != nil {
			return nil, fmt.Errorf("scan terminology_block: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read terminology_block: %w", err)
	}
	return out, nil
}

// SeedEntries upserts vocabulary entries and reports how many rows were
// written. Existing tokens are overwritten, so re-seeding with an updated
// builtin vocabulary is safe.
func (r *RepoPG) SeedEntries(ctx context.Context, entries []Entry) (int, error) {
	batch := &pgx.Batch{}
	for _, e := range entries {
		if err := e.validate(); err != nil {
			return 0, err
		}
		batch.Queue(`
			INSERT INTO terminology_entry (token, expansion, tag)
			VALUES ($1,$2,$3)
			ON CONFLICT (token)
			DO UPDATE SET expansion = EXCLUDED.expansion, tag = EXCLUDED.tag`,
			e.Token, e.Expansion, string(e.Tag))
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return 0, fmt.Errorf("seed terminology_entry: %w", err)
		}
	}
	return len(entries), nil
}

// SeedBlocks upserts false-positive blocks.
func (r *RepoPG) SeedBlocks(ctx context.Context, blocks []Block) (int, error) {
	batch := &pgx.Batch{}
	for _, b := range blocks {
		batch.Queue(`
			INSERT INTO terminology_block (token, contexts)
			VALUES ($1,$2)
			ON CONFLICT (token)
			DO UPDATE SET contexts = EXCLUDED.contexts`,
			b.Token, b.Contexts)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range blocks {
		if _, err := results.Exec(); err != nil {
			return 0, fmt.Errorf("seed terminology_block: %w", err)
		}
	}
	return len(blocks), nil
}
