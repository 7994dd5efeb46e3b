package usecase

import (
	"encoding/json"

	"market_movers/internal/feature/market/domain/entity"
	"market_movers/internal/platform/externalapi/alphavantage/dto"
)

// formatOverview はプロバイダのキー名をドメインのフィールド名に付け替えます。
// 値は加工せず、欠けているキーは nil のままにします。
func formatOverview(body json.RawMessage) (entity.CompanyOverview, error) {
	var raw dto.OverviewResponse
	if err := decodeObject(body, &raw); err != nil {
		return entity.CompanyOverview{}, err
	}

	return entity.CompanyOverview{
		Symbol:            raw.Symbol,
		Name:              raw.Name,
		Description:       raw.Description,
		Exchange:          raw.Exchange,
		Currency:          raw.Currency,
		Country:           raw.Country,
		Sector:            raw.Sector,
		Industry:          raw.Industry,
		MarketCap:         raw.MarketCapitalization,
		PERatio:           raw.PERatio,
		PEGRatio:          raw.PEGRatio,
		BookValue:         raw.BookValue,
		DividendYield:     raw.DividendYield,
		EPS:               raw.EPS,
		RevenuePerShare:   raw.RevenuePerShareTTM,
		ProfitMargin:      raw.ProfitMargin,
		OperatingMargin:   raw.OperatingMarginTTM,
		ReturnOnAssets:    raw.ReturnOnAssetsTTM,
		ReturnOnEquity:    raw.ReturnOnEquityTTM,
		Week52High:        raw.Week52High,
		Week52Low:         raw.Week52Low,
		MovingAverage50:   raw.MovingAverage50Day,
		MovingAverage200:  raw.MovingAverage200Day,
		SharesOutstanding: raw.SharesOutstanding,
		Beta:              raw.Beta,
		Address:           raw.Address,
	}, nil
}
