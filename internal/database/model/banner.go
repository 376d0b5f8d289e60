package model

import (
	"time"
)

type Banner struct {
	ID          int64     `db:"id"`
	Description string    `db:"description"`
	Link        string    `db:"link"`
	Timer       int       `db:"timer"`
	IsVisible   bool      `db:"is_visible"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
