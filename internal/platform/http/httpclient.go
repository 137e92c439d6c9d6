// Package http は外部サービス呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions は外部API用トランスポートの調整値です。ゼロ値の項目は既定値を使います。
type ClientOptions struct {
	DialTimeout         time.Duration // TCP接続タイムアウト（既定 5s）
	KeepAlive           time.Duration // 再利用可能なTCP接続の維持期間（既定 30s）
	MaxIdleConnsPerHost int           // 同一ホストへのアイドル接続数（既定 10）
	IdleConnTimeout     time.Duration // アイドル接続の維持期間（既定 90s）
	TLSHandshakeTimeout time.Duration // HTTPSハンドシェイクの最大時間（既定 5s）
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.DialTimeout <= 0 {
		o.DialTimeout = 5 * time.Second
	}
	if o.KeepAlive <= 0 {
		o.KeepAlive = 30 * time.Second
	}
	if o.MaxIdleConnsPerHost <= 0 {
		o.MaxIdleConnsPerHost = 10
	}
	if o.IdleConnTimeout <= 0 {
		o.IdleConnTimeout = 90 * time.Second
	}
	if o.TLSHandshakeTimeout <= 0 {
		o.TLSHandshakeTimeout = 5 * time.Second
	}
	return o
}

// NewHTTPClient は1リクエストあたり timeout で打ち切る外部API用クライアントを作成します。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
//   - リトライは呼び出し側の責務（各試行にこのタイムアウトが適用される）
func NewHTTPClient(timeout time.Duration) *http.Client {
	return NewHTTPClientWithOptions(timeout, ClientOptions{})
}

// NewHTTPClientWithOptions は調整値を指定してクライアントを作成します。
// プロキシは環境変数（HTTP_PROXYなど）に従います。
func NewHTTPClientWithOptions(timeout time.Duration, opts ClientOptions) *http.Client {
	opts = opts.withDefaults()
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   opts.DialTimeout,
			KeepAlive: opts.KeepAlive,
		}).DialContext,
		MaxIdleConns:        opts.MaxIdleConnsPerHost * 10,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		TLSHandshakeTimeout: opts.TLSHandshakeTimeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
