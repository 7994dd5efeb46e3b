package dto

import "market_movers/internal/feature/market/domain/entity"

// OverviewResponse は企業概要のレスポンスDTOです。
// プロバイダが返さなかった項目は出力しません。
type OverviewResponse struct {
	Symbol            *string `json:"symbol,omitempty"`
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	Exchange          *string `json:"exchange,omitempty"`
	Currency          *string `json:"currency,omitempty"`
	Country           *string `json:"country,omitempty"`
	Sector            *string `json:"sector,omitempty"`
	Industry          *string `json:"industry,omitempty"`
	MarketCap         *string `json:"marketCap,omitempty"`
	PERatio           *string `json:"peRatio,omitempty"`
	PEGRatio          *string `json:"pegRatio,omitempty"`
	BookValue         *string `json:"bookValue,omitempty"`
	DividendYield     *string `json:"dividendYield,omitempty"`
	EPS               *string `json:"eps,omitempty"`
	RevenuePerShare   *string `json:"revenuePerShare,omitempty"`
	ProfitMargin      *string `json:"profitMargin,omitempty"`
	OperatingMargin   *string `json:"operatingMargin,omitempty"`
	ReturnOnAssets    *string `json:"returnOnAssets,omitempty"`
	ReturnOnEquity    *string `json:"returnOnEquity,omitempty"`
	Week52High        *string `json:"week52High,omitempty"`
	Week52Low         *string `json:"week52Low,omitempty"`
	MovingAverage50   *string `json:"movingAverage50,omitempty"`
	MovingAverage200  *string `json:"movingAverage200,omitempty"`
	SharesOutstanding *string `json:"sharesOutstanding,omitempty"`
	Beta              *string `json:"beta,omitempty"`
	Address           *string `json:"address,omitempty"`
}

// NewOverviewResponse は企業概要をレスポンスDTOに変換します。
func NewOverviewResponse(o entity.CompanyOverview) OverviewResponse {
	return OverviewResponse{
		Symbol:            o.Symbol,
		Name:              o.Name,
		Description:       o.Description,
		Exchange:          o.Exchange,
		Currency:          o.Currency,
		Country:           o.Country,
		Sector:            o.Sector,
		Industry:          o.Industry,
		MarketCap:         o.MarketCap,
		PERatio:           o.PERatio,
		PEGRatio:          o.PEGRatio,
		BookValue:         o.BookValue,
		DividendYield:     o.DividendYield,
		EPS:               o.EPS,
		RevenuePerShare:   o.RevenuePerShare,
		ProfitMargin:      o.ProfitMargin,
		OperatingMargin:   o.OperatingMargin,
		ReturnOnAssets:    o.ReturnOnAssets,
		ReturnOnEquity:    o.ReturnOnEquity,
		Week52High:        o.Week52High,
		Week52Low:         o.Week52Low,
		MovingAverage50:   o.MovingAverage50,
		MovingAverage200:  o.MovingAverage200,
		SharesOutstanding: o.SharesOutstanding,
		Beta:              o.Beta,
		Address:           o.Address,
	}
}
