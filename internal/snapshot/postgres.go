package snapshot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payflow/payflow/internal/engine"
)

// PostgresRepository stores snapshots in PostgreSQL. Amount columns are
// NUMERIC(20,0): minor units are unsigned 64-bit and do not fit BIGINT.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts all records in one transaction.
func (r *PostgresRepository) Save(ctx context.Context, records []Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO account_snapshots (client_id, available, held, locked, taken_at)
             VALUES ($1, $2, $3, $4, $5)`,
			int32(rec.Client),
			strconv.FormatUint(rec.Available, 10),
			strconv.FormatUint(rec.Held, 10),
			rec.Locked,
			rec.TakenAt.UTC(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("insert snapshot row: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close snapshot batch: %w", err)
	}

	return tx.Commit(ctx)
}

// ByClient returns all stored rows for one client, oldest first.
func (r *PostgresRepository) ByClient(ctx context.Context, client engine.ClientID) ([]Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT client_id, available::text, held::text, locked, taken_at
         FROM account_snapshots WHERE client_id = $1 ORDER BY taken_at`,
		int32(client),
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec             Record
			clientID        int32
			available, held string
		)
		if err := rows.Scan(&clientID, &available, &held, &rec.Locked, &rec.TakenAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		rec.Client = engine.ClientID(clientID)
		if rec.Available, err = strconv.ParseUint(available, 10, 64); err != nil {
			return nil, fmt.Errorf("parse available %q: %w", available, err)
		}
		if rec.Held, err = strconv.ParseUint(held, 10, 64); err != nil {
			return nil, fmt.Errorf("parse held %q: %w", held, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
