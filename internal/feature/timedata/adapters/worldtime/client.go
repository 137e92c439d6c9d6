package worldtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"movie_backend/internal/feature/timedata/domain"
	"movie_backend/internal/feature/timedata/domain/entity"
)

// RateLimiter は上流APIへの呼び出し頻度を制限します。
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Client はWorldTimeAPIからタイムゾーンの現在時刻を取得します。
type Client struct {
	cfg     Config
	client  *http.Client
	limiter RateLimiter
}

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// limiter が nil の場合、呼び出し頻度は制限しません。
func NewClient(cfg Config, client *http.Client, limiter RateLimiter) *Client {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Client{cfg: cfg, client: client, limiter: limiter}
}

// URL はarea/location[/region]のリクエストURLを生成します。各セグメントはパスエスケープされます。
func (c *Client) URL(area, location, region string) string {
	parts := []string{strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(area), url.PathEscape(location)}
	if region != "" {
		parts = append(parts, url.PathEscape(region))
	}
	return strings.Join(parts, "/")
}

// GetTime は指定されたタイムゾーンの時刻を取得します。
// 失敗時は固定間隔でMaxAttempts回まで試行し、すべて失敗した場合は*domain.RequestErrorを返します。
func (c *Client) GetTime(ctx context.Context, area, location, region string) (*entity.TimeData, error) {
	u := c.URL(area, location, region)

	var body timezoneResponse
	attempt := 0
	op := func() error {
		attempt++
		err := c.fetch(ctx, u, &body)
		if err != nil {
			slog.Warn("world time request failed", "url", u, "attempt", attempt, "error", err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.cfg.RetryWait), uint64(c.cfg.MaxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, &domain.RequestError{URL: u, Err: err}
	}

	return &entity.TimeData{
		Datetime:    body.Datetime,
		UTCDatetime: body.UTCDatetime,
		UTCOffset:   body.UTCOffset,
	}, nil
}

// fetch は1回分のリクエストを実行し、JSONレスポンスをデコードします。
func (c *Client) fetch(ctx context.Context, u string, out *timezoneResponse) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("worldtime http %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode worldtime response: %w", err)
	}
	return nil
}
