package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/db"
)

// SQLiteDocumentRepo implements DocumentRepo using a SQLite database.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

// NewSQLiteDocumentRepo creates a new SQLiteDocumentRepo.
func NewSQLiteDocumentRepo(conn db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn}
}

func (r *SQLiteDocumentRepo) Get(ctx context.Context, key string) (*StoredDocument, error) {
	query := `SELECT key, body, revision, updated_at FROM documents WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var d StoredDocument
	var updatedAt string
	if err := row.Scan(&d.Key, &d.Body, &d.Revision, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document %s: %w", key, err)
	}
	d.UpdatedAt = parseTimeOrZero(updatedAt)
	return &d, nil
}

// Upsert replaces the body stored under key and returns the new revision.
func (r *SQLiteDocumentRepo) Upsert(ctx context.Context, key, body string) (int, error) {
	query := `INSERT INTO documents (key, body, revision, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(key) DO UPDATE
		SET body = excluded.body, revision = documents.revision + 1, updated_at = excluded.updated_at
		RETURNING revision`
	var revision int
	if err := r.db.QueryRowContext(ctx, query, key, body, nowUTC()).Scan(&revision); err != nil {
		return 0, fmt.Errorf("upserting document %s: %w", key, err)
	}
	return revision, nil
}

// Delete removes the row for key and reports whether one existed.
func (r *SQLiteDocumentRepo) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("deleting document %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting document %s: %w", key, err)
	}
	return n > 0, nil
}
