package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"market_movers/internal/feature/market/domain/entity"
	"market_movers/internal/platform/externalapi/alphavantage/dto"
)

var (
	errMissingTicker = errors.New("missing ticker")
	errExponent      = errors.New("exponent notation is not accepted")
)

// formatMovers はプロバイダの応答を表示用のスナップショットに変換します。
// 価格や変動額が数値として解釈できない行が1つでもあれば全体をエラーにします。
func (u *MarketUsecase) formatMovers(body json.RawMessage) (entity.MoversSnapshot, error) {
	var raw dto.TopGainersLosersResponse
	if err := decodeObject(body, &raw); err != nil {
		return entity.MoversSnapshot{}, err
	}

	gainers, err := u.formatList("top_gainers", raw.TopGainers)
	if err != nil {
		return entity.MoversSnapshot{}, err
	}
	losers, err := u.formatList("top_losers", raw.TopLosers)
	if err != nil {
		return entity.MoversSnapshot{}, err
	}
	active, err := u.formatList("most_actively_traded", raw.MostActivelyTraded)
	if err != nil {
		return entity.MoversSnapshot{}, err
	}

	return entity.MoversSnapshot{
		Metadata:    raw.Metadata,
		LastUpdated: raw.LastUpdated,
		TopGainers:  gainers,
		TopLosers:   losers,
		MostActive:  active,
	}, nil
}

// formatList はリスト内の順序を保ったまま1始まりのIDを振ります。
func (u *MarketUsecase) formatList(list string, items []dto.MoverItem) ([]entity.MoverRecord, error) {
	out := make([]entity.MoverRecord, 0, len(items))
	for i, it := range items {
		if it.Ticker == nil {
			return nil, fmt.Errorf("%s[%d]: %w", list, i, errMissingTicker)
		}
		ticker := *it.Ticker

		price, err := u.formatCurrency(it.Price)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: parse price %q: %w", list, i, it.Price, err)
		}
		amount, err := u.formatCurrency(it.ChangeAmount)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: parse change_amount %q: %w", list, i, it.ChangeAmount, err)
		}

		out = append(out, entity.MoverRecord{
			ID:           i + 1,
			Ticker:       ticker,
			Name:         u.companyName(ticker),
			Price:        price,
			Change:       it.ChangePercentage,
			ChangeAmount: amount,
			Volume:       it.Volume,
		})
	}
	return out, nil
}

// formatCurrency は数値文字列を通貨記号付き・小数点以下2桁の文字列にします。
// 負の値は記号の後ろに符号が付きます（例: "$-1.23"）。
// 指数表記("1e9")は受け付けません。
func (u *MarketUsecase) formatCurrency(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "eE") {
		return "", errExponent
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	return u.opts.CurrencySymbol + d.StringFixed(2), nil
}

// companyName は名前表に登録があればその名前を、なければ "<ticker> Corp." を返します。
func (u *MarketUsecase) companyName(ticker string) string {
	if u.lookup != nil {
		if name, ok := u.lookup(ticker); ok {
			return name
		}
	}
	return ticker + " Corp."
}
