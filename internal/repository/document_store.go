package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/db"
)

// JournaledDocumentStore is the SQLite DocumentStore. Every write or remove
// updates the documents table and appends a store_writes row in the same
// transaction.
type JournaledDocumentStore struct {
	conn db.DBTX
	uow  db.UnitOfWork
}

var _ DocumentStore = (*JournaledDocumentStore)(nil)

// NewJournaledDocumentStore reads through conn and writes through uow.
func NewJournaledDocumentStore(conn db.DBTX, uow db.UnitOfWork) *JournaledDocumentStore {
	return &JournaledDocumentStore{conn: conn, uow: uow}
}

func (s *JournaledDocumentStore) Read(ctx context.Context, key string) (string, bool, error) {
	d, err := NewSQLiteDocumentRepo(s.conn).Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return d.Body, true, nil
}

func (s *JournaledDocumentStore) Write(ctx context.Context, key, body string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		rev, err := NewSQLiteDocumentRepo(tx).Upsert(ctx, key, body)
		if err != nil {
			return err
		}
		return NewSQLiteStoreWriteRepo(tx).Append(ctx, &StoreWrite{
			Key: key, Op: OpWrite, Revision: rev, Bytes: len(body),
		})
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Remove deletes the document. Removing an absent key is not an error and
// is not journaled.
func (s *JournaledDocumentStore) Remove(ctx context.Context, key string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existed, err := NewSQLiteDocumentRepo(tx).Delete(ctx, key)
		if err != nil || !existed {
			return err
		}
		return NewSQLiteStoreWriteRepo(tx).Append(ctx, &StoreWrite{Key: key, Op: OpRemove})
	})
	if err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Stat returns the stored row for key without decoding it.
func (s *JournaledDocumentStore) Stat(ctx context.Context, key string) (*StoredDocument, error) {
	return NewSQLiteDocumentRepo(s.conn).Get(ctx, key)
}

// History returns the newest journal entries for key.
func (s *JournaledDocumentStore) History(ctx context.Context, key string, limit int) ([]*StoreWrite, error) {
	return NewSQLiteStoreWriteRepo(s.conn).ListRecent(ctx, key, limit)
}
