package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"market_movers/internal/feature/market/domain/entity"
)

const (
	// NotAvailable は値がない項目に表示するプレースホルダーです。
	NotAvailable = "N/A"
	// DefaultDescription は説明文がない企業に表示する文言です。
	DefaultDescription = "No description available for this company."
)

var billion = decimal.New(1, 9)

// SummaryResponse は企業概要画面にそのまま表示できる形に整形したレスポンスDTOです。
type SummaryResponse struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Exchange      string   `json:"exchange"`
	Currency      string   `json:"currency"`
	Country       string   `json:"country"`
	Sector        string   `json:"sector"`
	Industry      string   `json:"industry"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	Week52High    string   `json:"week52High"`
	Week52Low     string   `json:"week52Low"`
	MarketCap     string   `json:"marketCap"`
	PERatio       string   `json:"peRatio"`
	EPS           string   `json:"eps"`
	Beta          string   `json:"beta"`
	DividendYield string   `json:"dividendYield"`
	ProfitMargin  string   `json:"profitMargin"`
}

// NewSummaryResponse は企業概要を表示用の文字列に整形します。
//   - 値がない項目は "N/A"
//   - 時価総額は10億単位 (例: "$175.00B")
//   - 配当利回りと利益率はパーセント表記 (例: "3.50%")
//   - 52週高値・安値は "$" 付き
func NewSummaryResponse(o entity.CompanyOverview) SummaryResponse {
	desc := DefaultDescription
	if v, ok := value(o.Description); ok {
		desc = v
	}

	tags := make([]string, 0, 2)
	for _, p := range []*string{o.Industry, o.Sector} {
		if v, ok := value(p); ok {
			tags = append(tags, v)
		}
	}

	return SummaryResponse{
		Symbol:        orNA(o.Symbol),
		Name:          orNA(o.Name),
		Exchange:      orNA(o.Exchange),
		Currency:      orNA(o.Currency),
		Country:       orNA(o.Country),
		Sector:        orNA(o.Sector),
		Industry:      orNA(o.Industry),
		Tags:          tags,
		Description:   desc,
		Address:       orNA(o.Address),
		Week52High:    dollars(o.Week52High),
		Week52Low:     dollars(o.Week52Low),
		MarketCap:     billions(o.MarketCap),
		PERatio:       orNA(o.PERatio),
		EPS:           orNA(o.EPS),
		Beta:          orNA(o.Beta),
		DividendYield: percent(o.DividendYield),
		ProfitMargin:  percent(o.ProfitMargin),
	}
}

// value はプロバイダが実際に値を返したかを判定します。"None" や "-" は値なしとして扱います。
func value(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	switch v {
	case "", "None", "-":
		return "", false
	}
	return v, true
}

func orNA(p *string) string {
	if v, ok := value(p); ok {
		return v
	}
	return NotAvailable
}

func dollars(p *string) string {
	if v, ok := value(p); ok {
		return "$" + v
	}
	return NotAvailable
}

// billions は時価総額を整数に切り捨ててから10億で割り、小数点以下2桁で表示します。
func billions(p *string) string {
	v, ok := value(p)
	if !ok {
		return NotAvailable
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return NotAvailable
	}
	return "$" + d.Truncate(0).Div(billion).StringFixed(2) + "B"
}

func percent(p *string) string {
	v, ok := value(p)
	if !ok {
		return NotAvailable
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return NotAvailable
	}
	return d.Shift(2).StringFixed(2) + "%"
}
