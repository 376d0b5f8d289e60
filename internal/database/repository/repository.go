package repository

import (
	"bannerweb/internal/database/model"
	"context"
)

type BannerRepository interface {
	// Banner returns the most recently updated banner.
	Banner(ctx context.Context) (*model.Banner, error)
	// SaveBanner inserts a banner with a zero ID, otherwise overwrites it.
	SaveBanner(ctx context.Context, banner *model.Banner) (int64, error)
}
