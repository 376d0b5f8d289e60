package storage

import "errors"

var (
	ErrBannerNotFound = errors.New("banner not found")
)
