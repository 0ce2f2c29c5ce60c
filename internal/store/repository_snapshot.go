package store

import (
	"context"
	"fmt"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs the SQLite-backed [SnapshotRepository]
// and ensures the artworks table exists.
func NewSnapshotRepository(db *DB, logger *logger.Logger) (SnapshotRepository, error) {
	if _, err := db.Exec(createSnapshotSchema); err != nil {
		logger.Err(err).Str("func", "NewSnapshotRepository").Msg("failed to create snapshot schema")
		return nil, fmt.Errorf("failed to create snapshot schema: %w", err)
	}

	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}, nil
}

// ReplaceSnapshot implements [SnapshotRepository]. The clear and the inserts
// run in one transaction so a crash mid-write never leaves a mixed snapshot.
func (r *snapshotRepository) ReplaceSnapshot(ctx context.Context, artworks []models.Artwork) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.ReplaceSnapshot").Msg("failed to begin snapshot transaction")
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearSnapshot); err != nil {
		log.Err(err).Str("func", "snapshotRepository.ReplaceSnapshot").Msg("failed to clear snapshot")
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	for _, a := range artworks {
		_, err = tx.ExecContext(ctx, insertSnapshotArtwork,
			a.ID,
			a.Payload,
			a.CreatedAt,
			a.Owner,
			a.Label,
			a.Status,
		)
		if err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.ReplaceSnapshot").
				Str("id", a.ID).
				Msg("failed to insert snapshot artwork")
			return fmt.Errorf("failed to insert snapshot artwork (id=%s): %w", a.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.ReplaceSnapshot").Msg("failed to commit snapshot")
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot implements [SnapshotRepository].
func (r *snapshotRepository) LoadSnapshot(ctx context.Context) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectSnapshotArtworks)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to query snapshot")
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var artworks []models.Artwork

	for rows.Next() {
		var a models.Artwork

		scanErr := rows.Scan(
			&a.ID,
			&a.Payload,
			&a.CreatedAt,
			&a.Owner,
			&a.Label,
			&a.Status,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "snapshotRepository.LoadSnapshot").Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("failed to scan snapshot row: %w", scanErr)
		}

		artworks = append(artworks, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}

	return artworks, nil
}
