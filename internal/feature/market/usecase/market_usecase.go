// Package usecase はマーケットデータ(値上がり/値下がり銘柄と企業概要)取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"market_movers/internal/feature/market/domain"
	"market_movers/internal/feature/market/domain/entity"
	"market_movers/internal/platform/externalapi/alphavantage"
	"market_movers/internal/platform/logger"
)

const (
	// DefaultCurrencySymbol は価格と変動額の先頭に付ける通貨記号です。
	DefaultCurrencySymbol = "$"
	// DefaultRateLimitBackoff はレート制限時に再試行するまでの待機時間です。
	DefaultRateLimitBackoff = 15 * time.Second
)

// Transport はプロバイダへの1回の呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Transport interface {
	Request(ctx context.Context, function string, params ...alphavantage.Param) alphavantage.Envelope
}

// NameLookup はティッカーから会社名を引く関数です。見つからない場合は false を返します。
type NameLookup func(ticker string) (string, bool)

// Options はMarketUsecaseの挙動を調整します。
type Options struct {
	CurrencySymbol   string        // 空の場合は "$"
	RateLimitRetries int           // レート制限時の再試行回数。0なら再試行しない
	RateLimitBackoff time.Duration // 再試行までの待機時間。0以下なら15秒
}

// MarketUsecase はマーケットデータ取得のユースケースを定義します。
// 状態もキャッシュも持たず、呼び出しごとに独立してプロバイダへ問い合わせます。
type MarketUsecase struct {
	transport Transport
	lookup    NameLookup
	opts      Options
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
// lookup が nil の場合は全銘柄が "<ticker> Corp." で表示されます。
func NewMarketUsecase(transport Transport, lookup NameLookup, opts Options) *MarketUsecase {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = DefaultCurrencySymbol
	}
	if opts.RateLimitRetries < 0 {
		opts.RateLimitRetries = 0
	}
	if opts.RateLimitBackoff <= 0 {
		opts.RateLimitBackoff = DefaultRateLimitBackoff
	}
	return &MarketUsecase{transport: transport, lookup: lookup, opts: opts}
}

// FetchMovers は当日の値上がり・値下がり・出来高上位銘柄を取得し、表示用に整形して返します。
func (u *MarketUsecase) FetchMovers(ctx context.Context) (entity.MoversSnapshot, error) {
	const op = "FetchMovers"

	env, err := u.request(ctx, op, alphavantage.FunctionTopGainersLosers)
	if err != nil {
		return entity.MoversSnapshot{}, err
	}

	snap, err := u.formatMovers(env.Data)
	if err != nil {
		return entity.MoversSnapshot{}, malformed(op, env.Status, err)
	}
	return snap, nil
}

// FetchCompanyOverview は指定銘柄の企業概要を取得し、フィールド名を変換して返します。
// 値の整形は行いません。
func (u *MarketUsecase) FetchCompanyOverview(ctx context.Context, symbol string) (entity.CompanyOverview, error) {
	const op = "FetchCompanyOverview"

	env, err := u.request(ctx, op, alphavantage.FunctionOverview, alphavantage.Param{Key: "symbol", Value: symbol})
	if err != nil {
		return entity.CompanyOverview{}, err
	}

	ov, err := formatOverview(env.Data)
	if err != nil {
		return entity.CompanyOverview{}, malformed(op, env.Status, err)
	}
	return ov, nil
}

// request はプロバイダを呼び出し、失敗時は FetchError に変換します。
// レート制限の場合のみ、設定された回数まで待機してから再試行します。
func (u *MarketUsecase) request(ctx context.Context, op, function string, params ...alphavantage.Param) (alphavantage.Envelope, error) {
	for attempt := 0; ; attempt++ {
		env := u.transport.Request(ctx, function, params...)
		if env.Success {
			return env, nil
		}

		ferr := &domain.FetchError{Op: op, Kind: kindError(env.Kind), Status: env.Status, Message: env.Error}
		if env.Kind != alphavantage.KindRateLimited || attempt >= u.opts.RateLimitRetries {
			return alphavantage.Envelope{}, ferr
		}
		// 待機後に期限が残らないなら、待たずにレート制限として返す
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= u.opts.RateLimitBackoff {
			return alphavantage.Envelope{}, ferr
		}

		logger.L().Warn().
			Str("op", op).
			Int("attempt", attempt+1).
			Dur("backoff", u.opts.RateLimitBackoff).
			Msg("provider rate limit reached, retrying")

		timer := time.NewTimer(u.opts.RateLimitBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return alphavantage.Envelope{}, ferr
		case <-timer.C:
		}
	}
}

// kindError はトランスポートの失敗種別をドメインエラーに対応付けます。
func kindError(k alphavantage.ErrorKind) error {
	switch k {
	case alphavantage.KindTimeout:
		return domain.ErrTimeout
	case alphavantage.KindProvider:
		return domain.ErrProvider
	case alphavantage.KindRateLimited:
		return domain.ErrRateLimited
	case alphavantage.KindMalformedResponse:
		return domain.ErrMalformedResponse
	default:
		return domain.ErrNetwork
	}
}

func malformed(op string, status int, err error) *domain.FetchError {
	return &domain.FetchError{
		Op:      op,
		Kind:    domain.ErrMalformedResponse,
		Status:  status,
		Message: fmt.Sprintf("%s: %v", domain.ErrMalformedResponse, err),
		Err:     err,
	}
}

// decodeObject はボディがJSONオブジェクトであることを確認してからデコードします。
func decodeObject(body json.RawMessage, v any) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if probe == nil {
		return fmt.Errorf("decode body: expected a JSON object, got null")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
