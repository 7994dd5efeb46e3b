package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"market_movers/internal/platform/logger"
)

// Limiter は外部API呼び出しの前に呼ばれ、必要なら空きができるまで待機するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は固定ウィンドウ方式でAPI呼び出しの頻度を制限します。
// 複数のgoroutineから同時に呼び出しても安全です。
// 待機はロックの外で行うため、待機中の呼び出しが他の呼び出しのキャンセルを妨げることはありません。
type RateLimiter struct {
	mu          sync.Mutex
	limit       int           // ウィンドウあたりの上限
	interval    time.Duration // ウィンドウの長さ
	count       int           // windowStart から始まるウィンドウで予約済みの枠数
	windowStart time.Time     // 予約を受け付けている最新のウィンドウの開始時刻(未来のこともある)
	now         func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit または interval が0以下の場合は制限を行わない nil を返します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Wait は枠を1つ予約し、その枠のウィンドウが始まるまで待機します。
//
// 待機が ctx の期限を超える場合は待たずに枠を返却し、context.DeadlineExceeded を
// ラップしたエラーを返します。待機中に ctx が終了した場合も枠を返却して ctx.Err() を返します。
// nil レシーバは常に即座に nil を返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now, start := rl.reserve()
	sleep := start.Sub(now)
	if sleep <= 0 {
		return nil
	}

	if deadline, ok := ctx.Deadline(); ok && deadline.Before(start) {
		rl.release(start)
		return fmt.Errorf("ratelimiter: wait of %s would exceed context deadline: %w", sleep, context.DeadlineExceeded)
	}

	logger.L().Warn().
		Int("limit", rl.limit).
		Dur("sleep", sleep).
		Msg("outbound rate limit reached, waiting")

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		rl.release(start)
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserve は次の空き枠を確保し、現在時刻とその枠のウィンドウ開始時刻を返します。
func (rl *RateLimiter) reserve() (now, start time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now = rl.now()
	if now.Sub(rl.windowStart) >= rl.interval {
		rl.windowStart = now
		rl.count = 0
	}
	if rl.count >= rl.limit {
		rl.windowStart = rl.windowStart.Add(rl.interval)
		rl.count = 0
	}
	rl.count++
	return now, rl.windowStart
}

// release は使われなかった枠を返却します。
// その後に新しいウィンドウへ予約が進んでいる場合、枠は返却されません。
func (rl *RateLimiter) release(start time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.windowStart.Equal(start) && rl.count > 0 {
		rl.count--
	}
}
