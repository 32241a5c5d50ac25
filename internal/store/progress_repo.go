package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/versemind/internal/progress"
)

// ProgressRepo stores durable progress records as JSON blobs keyed by
// namespace. It implements progress.Repo.
type ProgressRepo struct {
	db *sqlx.DB
}

var _ progress.Repo = (*ProgressRepo)(nil)

// Load returns the record stored under namespace, or nil when none has
// been saved yet. A blob that fails to decode is reported as an error;
// the reconciler falls back to an empty record.
func (r *ProgressRepo) Load(ctx context.Context, namespace string) (*progress.Record, error) {
	var raw string
	err := r.db.GetContext(ctx, &raw,
		"SELECT data FROM progress_records WHERE namespace = ?", namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress record: %w", err)
	}

	var rec progress.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode progress record: %w", err)
	}
	return &rec, nil
}

// Save stores rec under namespace, replacing any previous record.
func (r *ProgressRepo) Save(ctx context.Context, namespace string, rec *progress.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress_records (namespace, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		namespace, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}
