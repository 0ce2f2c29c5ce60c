package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/provenart/go-art-registry/internal/logger"
)

type entryRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewEntryRepository constructs the PostgreSQL-backed [EntryRepository] for
// ledger entries.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

// GetEntry implements [EntryRepository]. Absent keys return nil, nil.
func (r *entryRepository) GetEntry(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("value").
		From("ledger_entries").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build entry select: %w", err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntry").
			Str("key", key).
			Msg("failed to query ledger entry")
		return nil, fmt.Errorf("failed to query ledger entry: %w", err)
	}

	return value, nil
}

// PutEntry implements [EntryRepository] as an upsert: the ledger offers no
// compare-and-swap, so concurrent writers race and the last write wins.
//
// Under concurrent first inserts of the same key Postgres can still surface
// a unique violation instead of taking the conflict arm. The row exists by
// then, so the statement is retried once and the retry resolves through
// ON CONFLICT.
func (r *entryRepository) PutEntry(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("ledger_entries").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build entry upsert: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, args...)
	if err != nil && r.errorClassifier != nil && r.errorClassifier.IsUniqueViolation(err) {
		log.Warn().
			Str("func", "entryRepository.PutEntry").
			Str("key", key).
			Msg("upsert lost insert race, retrying")
		_, err = r.DB.ExecContext(ctx, query, args...)
	}
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.PutEntry").
			Str("key", key).
			Msg("failed to upsert ledger entry")
		return fmt.Errorf("failed to upsert ledger entry: %w", err)
	}

	return nil
}

// Ping implements [EntryRepository].
func (r *entryRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
