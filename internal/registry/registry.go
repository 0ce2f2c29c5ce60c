// SPDX-License-Identifier: Apache-2.0

// Package registry implements the sync engine of the gallery client: the
// read path that materialises the ledger's index and records into a local
// snapshot, and the two write paths that submit artworks and record
// authenticity verdicts.
//
// The ledger offers no transactions and no compare-and-swap, so the engine
// leans on ordering instead: a record blob is written before its id enters
// the index, meaning the index never references a missing record for long,
// and readers skip ids that do not resolve yet. Concurrent writers race and
// the last write wins; verdict preconditions are checked against freshly
// fetched remote state, not the local cache, which narrows but does not
// close the race window.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/provenart/go-art-registry/internal/codec"
	"github.com/provenart/go-art-registry/internal/ledger"
	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/store"
	"github.com/provenart/go-art-registry/internal/utils"
	"github.com/provenart/go-art-registry/models"
)

// Registry is the client-side sync engine over the remote ledger.
// All reads served to the UI come from the in-memory cache; Refresh is the
// only way the cache changes.
type Registry struct {
	ledger    ledger.Ledger
	cache     *store.Cache
	snapshots store.SnapshotRepository
	codec     codec.Codec
	ids       *utils.IDGenerator
	logger    *logger.Logger

	now func() time.Time
}

// NewRegistry wires the sync engine. snapshots may be nil, in which case the
// durable local copy is disabled and warm starts are skipped.
func NewRegistry(l ledger.Ledger, cache *store.Cache, snapshots store.SnapshotRepository, c codec.Codec, log *logger.Logger) *Registry {
	return &Registry{
		ledger:    l,
		cache:     cache,
		snapshots: snapshots,
		codec:     c,
		ids:       utils.NewIDGenerator(),
		logger:    log,
		now:       time.Now,
	}
}

// WarmStart loads the last persisted snapshot into the cache so the gallery
// can render immediately, read-only, before the first refresh completes or
// while the ledger is unreachable.
func (r *Registry) WarmStart(ctx context.Context) error {
	if r.snapshots == nil {
		return nil
	}

	artworks, err := r.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load local snapshot: %w", err)
	}

	r.cache.ReplaceAll(artworks)
	return nil
}

// Refresh rebuilds the cache from the ledger.
//
// When the ledger is unavailable the cache is replaced with an empty
// snapshot and no error is returned; the gallery shows an empty list rather
// than failing. A missing or unparsable index is treated as empty. Records
// that are absent or fail to parse are skipped with a warning so that one
// bad blob never hides the rest of the collection. Overlapping refreshes
// race benignly: each performs a full atomic swap.
func (r *Registry) Refresh(ctx context.Context) error {
	log := r.logger.GetChildLogger()

	if !r.ledger.IsAvailable(ctx) {
		log.Warn().Msg("ledger unavailable, serving empty snapshot")
		r.cache.ReplaceAll(nil)
		return nil
	}

	ids, err := r.fetchIndex(ctx)
	if err != nil {
		return err
	}

	artworks := make([]models.Artwork, 0, len(ids))
	for _, id := range ids {
		artwork, ok := r.fetchRecord(ctx, id)
		if !ok {
			continue
		}
		artworks = append(artworks, artwork)
	}

	// Newest first; stable so same-timestamp records keep index order.
	sort.SliceStable(artworks, func(i, j int) bool {
		return artworks[i].CreatedAt > artworks[j].CreatedAt
	})

	r.cache.ReplaceAll(artworks)
	r.persistSnapshot(ctx, artworks)

	log.Info().Int("count", len(artworks)).Msg("refresh complete")
	return nil
}

// Create validates and submits a new artwork, returning it with its
// generated id and pending status.
//
// The record blob is written before the index is rewritten. If the record
// write fails nothing references it; if the index write fails the record is
// orphaned until a later submission rewrites the index, which readers
// tolerate. The cache is only updated by the follow-up refresh.
func (r *Registry) Create(ctx context.Context, label string, source string, owner string) (models.Artwork, error) {
	label = strings.TrimSpace(label)
	owner = strings.TrimSpace(owner)
	if label == "" {
		return models.Artwork{}, fmt.Errorf("label is required: %w", ErrValidation)
	}
	if source == "" {
		return models.Artwork{}, fmt.Errorf("artwork content is required: %w", ErrValidation)
	}
	if owner == "" {
		return models.Artwork{}, fmt.Errorf("owner identity is required: %w", ErrValidation)
	}

	payload, err := r.codec.Encode(source)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("encode payload: %w", err)
	}

	createdAt := r.now()
	artwork := models.Artwork{
		ID:        r.ids.GenerateAt(createdAt),
		Payload:   payload,
		CreatedAt: createdAt.Unix(),
		Owner:     owner,
		Label:     label,
		Status:    models.StatusPending,
	}

	if err = r.writeRecord(ctx, artwork); err != nil {
		return models.Artwork{}, err
	}

	if err = r.appendToIndex(ctx, artwork.ID); err != nil {
		return models.Artwork{}, err
	}

	r.refreshAfterWrite(ctx)
	return artwork, nil
}

// SetVerdict records the owner's authenticity verdict on an artwork.
//
// Preconditions are checked against the record as currently stored on the
// ledger, never against the cache: the record must exist, must still be
// pending, and the caller's identity must match the owner. Only the status
// field changes; every other field is written back verbatim. Two verdicts
// racing on the same pending record both pass the precondition and the last
// write wins, which the one-way status model keeps harmless in effect.
func (r *Registry) SetVerdict(ctx context.Context, id string, status models.Status, identity string) error {
	if !status.Verdict() {
		return fmt.Errorf("status %q is not a verdict: %w", status, ErrValidation)
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("artwork id is required: %w", ErrValidation)
	}

	current, err := r.getRecord(ctx, id)
	if err != nil {
		return err
	}

	if current.Status != models.StatusPending {
		return fmt.Errorf("artwork %s is %s: %w", id, current.Status, ErrNotPending)
	}
	if !current.OwnedBy(identity) {
		return fmt.Errorf("verdict on artwork %s: %w", id, ErrAuthorization)
	}

	current.Status = status
	if err = r.writeRecord(ctx, current); err != nil {
		return err
	}

	r.refreshAfterWrite(ctx)
	return nil
}

// Artworks returns the current cache snapshot, newest first.
func (r *Registry) Artworks() []models.Artwork {
	return r.cache.All()
}

// Artwork returns the cached artwork with the given id.
func (r *Registry) Artwork(id string) (models.Artwork, bool) {
	return r.cache.Get(id)
}

// Reveal decodes an artwork payload back into its source text.
func (r *Registry) Reveal(artwork models.Artwork) (string, error) {
	source, err := r.codec.Decode(artwork.Payload)
	if err != nil {
		return "", fmt.Errorf("decode payload of %s: %w", artwork.ID, err)
	}
	return source, nil
}

func (r *Registry) fetchIndex(ctx context.Context) ([]string, error) {
	raw, err := r.ledger.Get(ctx, ledger.IndexKey)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var ids []string
	if err = json.Unmarshal(raw, &ids); err != nil {
		r.logger.Warn().Err(err).Msg("index blob unparsable, treating as empty")
		return nil, nil
	}
	return ids, nil
}

func (r *Registry) fetchRecord(ctx context.Context, id string) (models.Artwork, bool) {
	raw, err := r.ledger.Get(ctx, ledger.RecordKey(id))
	if err != nil {
		r.logger.Warn().Err(err).Str("id", id).Msg("record fetch failed, skipping")
		return models.Artwork{}, false
	}
	if len(raw) == 0 {
		r.logger.Warn().Str("id", id).Msg("indexed record missing, skipping")
		return models.Artwork{}, false
	}

	var artwork models.Artwork
	if err = json.Unmarshal(raw, &artwork); err != nil {
		r.logger.Warn().Err(err).Str("id", id).Msg("record blob unparsable, skipping")
		return models.Artwork{}, false
	}

	// The index is authoritative for ids.
	artwork.ID = id
	return artwork, true
}

func (r *Registry) getRecord(ctx context.Context, id string) (models.Artwork, error) {
	raw, err := r.ledger.Get(ctx, ledger.RecordKey(id))
	if err != nil {
		return models.Artwork{}, fmt.Errorf("fetch record %s: %w", id, err)
	}
	if len(raw) == 0 {
		return models.Artwork{}, fmt.Errorf("record %s: %w", id, ErrNotFound)
	}

	var artwork models.Artwork
	if err = json.Unmarshal(raw, &artwork); err != nil {
		return models.Artwork{}, fmt.Errorf("record %s unreadable: %w", id, ErrNotFound)
	}

	artwork.ID = id
	return artwork, nil
}

func (r *Registry) writeRecord(ctx context.Context, artwork models.Artwork) error {
	blob, err := json.Marshal(artwork)
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", artwork.ID, err)
	}
	if err = r.ledger.Set(ctx, ledger.RecordKey(artwork.ID), blob); err != nil {
		return fmt.Errorf("write record %s: %w", artwork.ID, err)
	}
	return nil
}

func (r *Registry) appendToIndex(ctx context.Context, id string) error {
	ids, err := r.fetchIndex(ctx)
	if err != nil {
		return err
	}

	blob, err := json.Marshal(append(ids, id))
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err = r.ledger.Set(ctx, ledger.IndexKey, blob); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// refreshAfterWrite pulls the post-write state into the cache. A failed
// follow-up refresh does not fail the write that already landed.
func (r *Registry) refreshAfterWrite(ctx context.Context) {
	if err := r.Refresh(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("refresh after write failed")
	}
}

// persistSnapshot writes the freshly refreshed snapshot to the durable local
// copy. Best effort: a cold disk never fails a successful refresh.
func (r *Registry) persistSnapshot(ctx context.Context, artworks []models.Artwork) {
	if r.snapshots == nil {
		return
	}
	if err := r.snapshots.ReplaceSnapshot(ctx, artworks); err != nil {
		r.logger.Warn().Err(err).Msg("persist local snapshot failed")
	}
}
