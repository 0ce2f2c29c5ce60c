package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/provenart/go-art-registry/internal/logger"
	"github.com/provenart/go-art-registry/internal/mock"
)

func newEntryService(t *testing.T) (EntryService, *mock.MockEntryRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockEntryRepository(ctrl)
	return NewEntryService(repo, logger.Nop()), repo
}

func TestEntryService_GetValue(t *testing.T) {
	ctx := context.Background()
	svc, repo := newEntryService(t)

	repo.EXPECT().GetEntry(ctx, "artworks:index").Return([]byte(`["1-a"]`), nil)

	value, err := svc.GetValue(ctx, "artworks:index")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["1-a"]`), value)
}

func TestEntryService_GetValue_AbsentKey(t *testing.T) {
	ctx := context.Background()
	svc, repo := newEntryService(t)

	repo.EXPECT().GetEntry(ctx, "missing").Return(nil, nil)

	value, err := svc.GetValue(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestEntryService_GetValue_EmptyKey(t *testing.T) {
	svc, _ := newEntryService(t)

	_, err := svc.GetValue(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestEntryService_PutValue(t *testing.T) {
	ctx := context.Background()
	svc, repo := newEntryService(t)

	repo.EXPECT().PutEntry(ctx, "artworks:record:1-a", []byte(`{}`)).Return(nil)

	require.NoError(t, svc.PutValue(ctx, "artworks:record:1-a", []byte(`{}`)))
}

func TestEntryService_PutValue_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("empty key", func(t *testing.T) {
		svc, _ := newEntryService(t)
		assert.ErrorIs(t, svc.PutValue(ctx, "", []byte("v")), ErrEmptyKey)
	})

	t.Run("empty value", func(t *testing.T) {
		svc, _ := newEntryService(t)
		assert.ErrorIs(t, svc.PutValue(ctx, "k", nil), ErrInvalidDataProvided)
	})
}

func TestEntryService_Ping(t *testing.T) {
	ctx := context.Background()
	svc, repo := newEntryService(t)

	repo.EXPECT().Ping(ctx).Return(assert.AnError)

	assert.ErrorIs(t, svc.Ping(ctx), assert.AnError)
}
