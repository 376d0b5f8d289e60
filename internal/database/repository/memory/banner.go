package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	storage "bannerweb/internal/database"
	"bannerweb/internal/database/model"
)

// BannerRepository keeps banners in process memory.
type BannerRepository struct {
	mu      sync.RWMutex
	banners map[int64]model.Banner
	lastID  int64
	latest  int64
}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{banners: make(map[int64]model.Banner)}
}

func (b *BannerRepository) Banner(_ context.Context) (*model.Banner, error) {
	const op = "repository.memory.Banner"

	b.mu.RLock()
	defer b.mu.RUnlock()

	banner, ok := b.banners[b.latest]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
	}

	return &banner, nil
}

func (b *BannerRepository) SaveBanner(_ context.Context, banner *model.Banner) (int64, error) {
	const op = "repository.memory.SaveBanner"

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	saved := *banner
	saved.UpdatedAt = now

	if saved.ID == 0 {
		b.lastID++
		saved.ID = b.lastID
		saved.CreatedAt = now
	} else {
		prev, ok := b.banners[saved.ID]
		if !ok {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
		}
		saved.CreatedAt = prev.CreatedAt
	}

	b.banners[saved.ID] = saved
	b.latest = saved.ID

	return saved.ID, nil
}
