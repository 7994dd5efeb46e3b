// Package dto はmarketフィーチャーのHTTPレスポンスDTOを定義します。
package dto

import "market_movers/internal/feature/market/domain/entity"

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MoverItem は値動きランキング1行分のレスポンスDTOです。
type MoverItem struct {
	ID           int    `json:"id"`           // リスト内の順位(1始まり)
	Ticker       string `json:"ticker"`       // ティッカー
	Name         string `json:"name"`         // 会社名
	Price        string `json:"price"`        // 現在値(通貨記号付き)
	Change       string `json:"change"`       // 騰落率
	ChangeAmount string `json:"changeAmount"` // 変動額(通貨記号付き)
	Volume       string `json:"volume"`       // 出来高
}

// MoversResponse は値上がり・値下がり・出来高上位のレスポンスDTOです。
type MoversResponse struct {
	Metadata    string      `json:"metadata"`
	LastUpdated string      `json:"lastUpdated"`
	TopGainers  []MoverItem `json:"topGainers"`
	TopLosers   []MoverItem `json:"topLosers"`
	MostActive  []MoverItem `json:"mostActive"`
}

// NewMoversResponse はスナップショットをレスポンスDTOに変換します。
// リストは空でも null ではなく [] として出力されます。
func NewMoversResponse(s entity.MoversSnapshot) MoversResponse {
	return MoversResponse{
		Metadata:    s.Metadata,
		LastUpdated: s.LastUpdated,
		TopGainers:  toMoverItems(s.TopGainers),
		TopLosers:   toMoverItems(s.TopLosers),
		MostActive:  toMoverItems(s.MostActive),
	}
}

func toMoverItems(rs []entity.MoverRecord) []MoverItem {
	out := make([]MoverItem, 0, len(rs))
	for _, r := range rs {
		out = append(out, MoverItem{
			ID:           r.ID,
			Ticker:       r.Ticker,
			Name:         r.Name,
			Price:        r.Price,
			Change:       r.Change,
			ChangeAmount: r.ChangeAmount,
			Volume:       r.Volume,
		})
	}
	return out
}
