// Package backend talks to the remote banner API: GET /banner to read the
// current record and POST /banner to overwrite it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bannerweb/internal/banner"

	"github.com/go-chi/render"
)

var (
	ErrFetchFailed  = errors.New("fetch failed")
	ErrUpdateFailed = errors.New("update failed")
)

const bannerPath = "/banner"

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

// New builds a client for baseURL. A zero timeout means requests are bounded
// only by the caller's context.
func New(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Banner(ctx context.Context) (*banner.Banner, error) {
	const op = "client.backend.Banner"

	log := c.log.With(
		slog.String("op", op),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+bannerPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}

	b, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrFetchFailed, err)
	}

	log.Debug("banner fetched", slog.Any("banner", b))

	return b, nil
}

// SaveBanner overwrites the remote record and returns what the server persisted.
func (c *Client) SaveBanner(ctx context.Context, b banner.Banner) (*banner.Banner, error) {
	const op = "client.backend.SaveBanner"

	log := c.log.With(
		slog.String("op", op),
	)

	body, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpdateFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+bannerPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpdateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	saved, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUpdateFailed, err)
	}

	log.Debug("banner saved", slog.Any("banner", saved))

	return saved, nil
}

func (c *Client) do(req *http.Request) (*banner.Banner, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var b banner.Banner
	if err := render.DecodeJSON(resp.Body, &b); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &b, nil
}
