package repository

import (
	"context"
	"time"
)

// DocumentKey is the single key the planner document is stored under.
const DocumentKey = "plannerHub_data"

// DocumentStore is a string key/value store holding whole serialized documents.
type DocumentStore interface {
	Read(ctx context.Context, key string) (body string, found bool, err error)
	Write(ctx context.Context, key, body string) error
	Remove(ctx context.Context, key string) error
}

// StoredDocument is a documents row.
type StoredDocument struct {
	Key       string
	Body      string
	Revision  int
	UpdatedAt time.Time
}

type WriteOp string

const (
	OpWrite  WriteOp = "write"
	OpRemove WriteOp = "remove"
)

// StoreWrite is one entry of the store journal.
type StoreWrite struct {
	ID        int64
	Key       string
	Op        WriteOp
	Revision  int
	Bytes     int
	CreatedAt time.Time
}

type DocumentRepo interface {
	Get(ctx context.Context, key string) (*StoredDocument, error)
	Upsert(ctx context.Context, key, body string) (revision int, err error)
	Delete(ctx context.Context, key string) (bool, error)
}

type StoreWriteRepo interface {
	Append(ctx context.Context, w *StoreWrite) error
	ListRecent(ctx context.Context, key string, limit int) ([]*StoreWrite, error)
	Count(ctx context.Context, key string) (int, error)
}
