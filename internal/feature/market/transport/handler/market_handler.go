// Package handler はmarketフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"market_movers/internal/feature/market/domain"
	"market_movers/internal/feature/market/domain/entity"
	"market_movers/internal/feature/market/transport/http/dto"
)

// MarketUsecase はマーケットデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketUsecase interface {
	FetchMovers(ctx context.Context) (entity.MoversSnapshot, error)
	FetchCompanyOverview(ctx context.Context, symbol string) (entity.CompanyOverview, error)
}

// MarketHandler はマーケットデータのHTTPリクエストを処理します。
type MarketHandler struct {
	uc MarketUsecase
}

// NewMarketHandler は指定されたusecaseでMarketHandlerの新しいインスタンスを生成します。
func NewMarketHandler(uc MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// GetMovers は値上がり・値下がり・出来高上位銘柄をJSONで返します。
//
// エンドポイント例:
// GET /movers
func (h *MarketHandler) GetMovers(c *gin.Context) {
	snap, err := h.uc.FetchMovers(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewMoversResponse(snap))
}

// GetOverview は企業概要をプロバイダの値のまま返します。
//
// エンドポイント例:
// GET /companies/:symbol/overview
func (h *MarketHandler) GetOverview(c *gin.Context) {
	ov, ok := h.fetchOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewOverviewResponse(ov))
}

// GetSummary は企業概要を画面表示用に整形して返します。
//
// エンドポイント例:
// GET /companies/:symbol/summary
func (h *MarketHandler) GetSummary(c *gin.Context) {
	ov, ok := h.fetchOverview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryResponse(ov))
}

// fetchOverview は銘柄コードを検証して企業概要を取得します。
// 失敗時はレスポンスを書き込んだうえで false を返します。
func (h *MarketHandler) fetchOverview(c *gin.Context) (entity.CompanyOverview, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "symbol is required"})
		return entity.CompanyOverview{}, false
	}

	ov, err := h.uc.FetchCompanyOverview(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(statusFor(err), dto.ErrorResponse{Error: err.Error()})
		return entity.CompanyOverview{}, false
	}
	// 未知の銘柄に対してプロバイダは空オブジェクトを返す
	if ov.IsEmpty() {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "company not found: " + symbol})
		return entity.CompanyOverview{}, false
	}
	return ov, true
}

// statusFor はドメインエラーをHTTPステータスに対応付けます。
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrProvider),
		errors.Is(err, domain.ErrNetwork),
		errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
