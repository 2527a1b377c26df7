package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVRepository implements the key-value store on the kv_store table
type KVRepository struct {
	db *pgxpool.Pool
}

// NewKVRepository creates a new KVRepository
func NewKVRepository(db *pgxpool.Pool) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns the value stored under key
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, queryGetValue, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetValue, key, err)
	}
	return value, true, nil
}

// Set upserts value under key
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.Exec(ctx, queryUpsertValue, key, value); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetValue, key, err)
	}
	return nil
}

// Ping checks database connectivity
func (r *KVRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close closes the underlying pool
func (r *KVRepository) Close() error {
	r.db.Close()
	return nil
}
