package pgsql

import (
	storage "bannerweb/internal/database"
	"bannerweb/internal/database/model"
	"database/sql"
	"errors"
	"time"

	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS banner (
	id          BIGSERIAL PRIMARY KEY,
	description TEXT        NOT NULL,
	link        TEXT        NOT NULL DEFAULT '',
	timer       INTEGER     NOT NULL DEFAULT 0 CHECK (timer >= 0),
	is_visible  BOOLEAN     NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`

type BannerRepository struct {
	db *sqlx.DB
}

func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

func (b *BannerRepository) Migrate(ctx context.Context) error {
	const op = "repository.pgsql.Migrate"

	if _, err := b.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (b *BannerRepository) Banner(ctx context.Context) (*model.Banner, error) {
	const op = "repository.pgsql.Banner"

	var banner model.Banner
	err := b.db.GetContext(ctx, &banner,
		`
		SELECT id, description, link, timer, is_visible, created_at, updated_at FROM banner
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
		`,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &banner, nil
}

func (b *BannerRepository) SaveBanner(ctx context.Context, banner *model.Banner) (int64, error) {
	const op = "repository.pgsql.SaveBanner"

	now := time.Now()

	if banner.ID == 0 {
		var id int64
		err := b.db.QueryRowxContext(ctx,
			"INSERT INTO banner (description, link, timer, is_visible, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
			banner.Description, banner.Link, banner.Timer, banner.IsVisible, now, now,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		return id, nil
	}

	stmt, err := b.db.PreparexContext(ctx,
		"UPDATE banner SET description = $1, link = $2, timer = $3, is_visible = $4, updated_at = $5 WHERE id = $6",
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, banner.Description, banner.Link, banner.Timer, banner.IsVisible, now, banner.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrBannerNotFound)
	}

	return banner.ID, nil
}
