// Package router assembles the Gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	markethandler "market_movers/internal/feature/market/transport/handler"
	symbollisthandler "market_movers/internal/feature/symbollist/transport/handler"
	platformhandler "market_movers/internal/platform/http/handler"
	"market_movers/internal/platform/http/middleware"
	jwtmw "market_movers/internal/platform/jwt"
)

// Deps are the handlers and settings the router mounts.
type Deps struct {
	Market  *markethandler.MarketHandler
	Symbols *symbollisthandler.SymbolHandler
	// Health は nil の場合、依存先を確認しない /healthz になります。
	Health gin.HandlerFunc
	// Metrics は /metrics で公開されます。nil なら公開しません。
	Metrics http.Handler
	// JWTSecret が空でなければ API ルートに Bearer 認証を掛けます。
	JWTSecret string
	// RequestTimeout は API ルートのリクエストコンテキストに掛ける期限です。0なら期限なし。
	RequestTimeout time.Duration
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())

	health := d.Health
	if health == nil {
		health = platformhandler.Health
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// JWT_SECRET が設定されている場合のみ認証必須
	api := r.Group("/")
	api.Use(middleware.Deadline(d.RequestTimeout))
	if d.JWTSecret != "" {
		api.Use(jwtmw.AuthRequired(d.JWTSecret))
	}
	{
		api.GET("/movers", d.Market.GetMovers)
		api.GET("/companies/:symbol/overview", d.Market.GetOverview)
		api.GET("/companies/:symbol/summary", d.Market.GetSummary)
		api.GET("/symbols", d.Symbols.List)
	}

	return r
}
