package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/plannerhub/internal/db"
)

// SQLiteStoreWriteRepo implements StoreWriteRepo using a SQLite database.
type SQLiteStoreWriteRepo struct {
	db db.DBTX
}

// NewSQLiteStoreWriteRepo creates a new SQLiteStoreWriteRepo.
func NewSQLiteStoreWriteRepo(conn db.DBTX) *SQLiteStoreWriteRepo {
	return &SQLiteStoreWriteRepo{db: conn}
}

func (r *SQLiteStoreWriteRepo) Append(ctx context.Context, w *StoreWrite) error {
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query := `INSERT INTO store_writes (key, op, revision, bytes, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		w.Key,
		string(w.Op),
		w.Revision,
		w.Bytes,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending store write: %w", err)
	}
	if w.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("appending store write: %w", err)
	}
	w.CreatedAt = createdAt
	return nil
}

// ListRecent returns the newest journal entries for key, newest first.
func (r *SQLiteStoreWriteRepo) ListRecent(ctx context.Context, key string, limit int) ([]*StoreWrite, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT id, key, op, revision, bytes, created_at
		FROM store_writes WHERE key = ?
		ORDER BY id DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, key, limit)
	if err != nil {
		return nil, fmt.Errorf("listing store writes: %w", err)
	}
	defer rows.Close()
	return r.scanWrites(rows)
}

func (r *SQLiteStoreWriteRepo) Count(ctx context.Context, key string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM store_writes WHERE key = ?`, key).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting store writes: %w", err)
	}
	return n, nil
}

func (r *SQLiteStoreWriteRepo) scanWrites(rows *sql.Rows) ([]*StoreWrite, error) {
	var out []*StoreWrite
	for rows.Next() {
		var w StoreWrite
		var op, createdAt string
		if err := rows.Scan(&w.ID, &w.Key, &op, &w.Revision, &w.Bytes, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning store write: %w", err)
		}
		w.Op = WriteOp(op)
		w.CreatedAt = parseTimeOrZero(createdAt)
		out = append(out, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating store writes: %w", err)
	}
	return out, nil
}
