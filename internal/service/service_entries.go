// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/store"
)

// entryService is the concrete implementation of EntryService.
// The gateway never interprets keys or values: the index layout and record
// encoding are a contract between clients, and the chain behind the gateway
// stores the same opaque pairs.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService over the given repository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// GetValue implements EntryService. Absent keys yield nil, not an error.
func (s *entryService) GetValue(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	value, err := s.entryRepository.GetEntry(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return value, nil
}

// PutValue implements EntryService.
func (s *entryService) PutValue(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(value) == 0 {
		return fmt.Errorf("empty value for key %s: %w", key, ErrInvalidDataProvided)
	}

	if err := s.entryRepository.PutEntry(ctx, key, value); err != nil {
		return fmt.Errorf("put ledger entry: %w", err)
	}
	return nil
}

// Ping implements EntryService.
func (s *entryService) Ping(ctx context.Context) error {
	return s.entryRepository.Ping(ctx)
}
