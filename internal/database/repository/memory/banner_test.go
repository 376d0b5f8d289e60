package memory

import (
	"context"
	"testing"

	storage "bannerweb/internal/database"
	"bannerweb/internal/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBannerRepository()

	_, err := repo.Banner(ctx)
	require.ErrorIs(t, err, storage.ErrBannerNotFound)

	id, err := repo.SaveBanner(ctx, &model.Banner{Description: "Sale", Link: "www.x.com", Timer: 5, IsVisible: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.Banner(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sale", got.Description)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repo.SaveBanner(ctx, &model.Banner{ID: id, Description: "Sale", Timer: 5})
	require.NoError(t, err)

	got, err = repo.Banner(ctx)
	require.NoError(t, err)
	assert.False(t, got.IsVisible)
	assert.Equal(t, id, got.ID)

	_, err = repo.SaveBanner(ctx, &model.Banner{ID: 42, Description: "x"})
	require.ErrorIs(t, err, storage.ErrBannerNotFound)
}
