package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market_movers/internal/platform/logger"
	"market_movers/internal/shared/ratelimiter"
)

// このサービスが使うAlpha Vantageのfunction名です。
const (
	FunctionTopGainersLosers = "TOP_GAINERS_LOSERS"
	FunctionOverview         = "OVERVIEW"
)

// HTTPDoer は1件のHTTPリクエストを送信します。テストではモックに差し替えます。
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_doer_test.go -source=client.go HTTPDoer
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Param は追加のクエリパラメータです。渡された順序のままURLに並びます。
type Param struct {
	Key   string
	Value string
}

// Client はAlpha VantageのクエリエンドポイントへGETリクエストを送り、
// 結果をすべてEnvelopeに分類して返します。
type Client struct {
	cfg     Config
	http    HTTPDoer
	limiter ratelimiter.Limiter
	metrics *Metrics
}

// Option はClientの設定を変更します。
type Option func(*Client)

// WithHTTPClient はリクエストに使うHTTPクライアントを設定します。
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithLimiter は外部API呼び出しの頻度を制限します。
func WithLimiter(l ratelimiter.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithMetrics は呼び出し結果をメトリクスに記録します。
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient は新しいAlpha Vantageクライアントを生成します。
// 設定のゼロ値は DefaultBaseURL と DefaultTimeout で補完されます。
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:  cfg.withDefaults(),
		http: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildURL はベースURL、function、apikey、params の順でリクエストURLを組み立てます。
// params 内の function と apikey は無視し、重複したキーは最初の位置に最後の値を使います。
func (c *Client) BuildURL(function string, params ...Param) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", c.cfg.BaseURL, err)
	}

	keys := []string{"function", "apikey"}
	values := map[string]string{"function": function, "apikey": c.cfg.APIKey}
	for _, p := range params {
		if p.Key == "function" || p.Key == "apikey" {
			continue
		}
		if _, seen := values[p.Key]; !seen {
			keys = append(keys, p.Key)
		}
		values[p.Key] = p.Value
	}

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(values[k]))
	}
	u.RawQuery = sb.String()
	return u.String(), nil
}

// Request は指定されたfunctionを1回呼び出します。
// Goのerrorは返さず、失敗はすべてEnvelopeで報告します。
func (c *Client) Request(ctx context.Context, function string, params ...Param) Envelope {
	start := time.Now()
	env := c.do(ctx, function, params)
	elapsed := time.Since(start)
	c.metrics.observe(function, env, elapsed)

	if env.Success {
		logger.L().Debug().
			Str("function", function).
			Int("status", env.Status).
			Int64("latency_ms", elapsed.Milliseconds()).
			Msg("alphavantage request")
	} else {
		logger.L().Warn().
			Str("function", function).
			Int("status", env.Status).
			Str("kind", env.Kind.String()).
			Str("error", env.Error).
			Int64("latency_ms", elapsed.Milliseconds()).
			Msg("alphavantage request failed")
	}
	return env
}

// do は実際の呼び出しを行います。
// 呼び出しごとのタイムアウトは頻度制限の待機も含むため、cfg.Timeout を超えることはありません。
func (c *Client) do(ctx context.Context, function string, params []Param) Envelope {
	u, err := c.BuildURL(function, params...)
	if err != nil {
		return failed(KindNetwork, 0, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.classifyTransportError(ctx, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return failed(KindNetwork, 0, fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return c.classifyTransportError(ctx, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return failed(KindNetwork, res.StatusCode, fmt.Sprintf("alphavantage http %d", res.StatusCode))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return c.classifyTransportError(ctx, err)
	}
	if !json.Valid(body) {
		return failed(KindMalformedResponse, res.StatusCode, "alphavantage: response body is not valid JSON")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err == nil {
		if raw, ok := top["Error Message"]; ok && present(raw) {
			return failed(KindProvider, res.StatusCode, text(raw))
		}
		if raw, ok := top["Note"]; ok && present(raw) {
			return failed(KindRateLimited, res.StatusCode, RateLimitMessage)
		}
	}

	return succeeded(res.StatusCode, json.RawMessage(body))
}

// classifyTransportError は通信エラーを Timeout か Network に分類します。
// ctx は期限付きの呼び出しごとのコンテキストです。
func (c *Client) classifyTransportError(ctx context.Context, err error) Envelope {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return failed(KindTimeout, 0, TimeoutMessage)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failed(KindTimeout, 0, TimeoutMessage)
	}
	if errors.Is(err, context.Canceled) {
		return failed(KindNetwork, 0, "request canceled")
	}
	// url.Error はAPIキーを含むURLを埋め込むため、中身だけを使う
	var ue *url.Error
	if errors.As(err, &ue) {
		err = ue.Err
	}
	return failed(KindNetwork, 0, fmt.Sprintf("alphavantage: %v", err))
}

// present はソフトエラー用のフィールドに値が入っているかを返します。
func present(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", `""`, "false", "0":
		return false
	}
	return true
}

// text はフィールドを文字列として返します。文字列でなければJSONのまま返します。
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
