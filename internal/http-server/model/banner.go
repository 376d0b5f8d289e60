package model

import (
	"bannerweb/internal/banner"
	"bannerweb/internal/database/model"
)

func BannerDBtoBannerHTTP(b model.Banner) *banner.Banner {
	id := b.ID
	return &banner.Banner{
		ID:          &id,
		Description: b.Description,
		Link:        b.Link,
		Timer:       b.Timer,
		IsVisible:   b.IsVisible,
	}
}

func BannerHTTPtoBannerDB(b banner.Banner) *model.Banner {
	db := &model.Banner{
		Description: b.Description,
		Link:        b.Link,
		Timer:       b.Timer,
		IsVisible:   b.IsVisible,
	}
	if b.ID != nil {
		db.ID = *b.ID
	}
	return db
}
