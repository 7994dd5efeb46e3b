package adapters

import (
	"context"

	"market_movers/internal/feature/symbollist/domain/entity"
	"market_movers/internal/feature/symbollist/usecase"
)

// defaultNames は組み込みの銘柄名表です。並び順がそのまま表示順になります。
var defaultNames = []struct{ code, name string }{
	{"AAPL", "Apple Inc."},
	{"TSLA", "Tesla Inc."},
	{"MSFT", "Microsoft Corp."},
	{"AMZN", "Amazon.com Inc."},
	{"GOOGL", "Alphabet Inc."},
	{"META", "Meta Platforms Inc."},
	{"NFLX", "Netflix Inc."},
	{"NVDA", "NVIDIA Corp."},
	{"BRK.A", "Berkshire Hathaway"},
	{"BRK.B", "Berkshire Hathaway"},
	{"UNH", "UnitedHealth Group"},
	{"JNJ", "Johnson & Johnson"},
	{"JPM", "JPMorgan Chase"},
	{"V", "Visa Inc."},
	{"PG", "Procter & Gamble"},
	{"HD", "Home Depot"},
	{"MA", "Mastercard Inc."},
	{"BAC", "Bank of America"},
	{"ABBV", "AbbVie Inc."},
	{"PFE", "Pfizer Inc."},
	{"KO", "Coca-Cola"},
	{"AVGO", "Broadcom Inc."},
	{"PEP", "PepsiCo Inc."},
	{"TMO", "Thermo Fisher"},
	{"COST", "Costco Wholesale"},
	{"DIS", "Walt Disney"},
	{"ABT", "Abbott Laboratories"},
	{"ACN", "Accenture"},
	{"VZ", "Verizon"},
	{"ADBE", "Adobe Inc."},
	{"DHR", "Danaher Corp."},
	{"WMT", "Walmart Inc."},
	{"TXN", "Texas Instruments"},
	{"NEE", "NextEra Energy"},
	{"BMY", "Bristol Myers"},
	{"T", "AT&T Inc."},
	{"PM", "Philip Morris"},
	{"RTX", "Raytheon Tech."},
	{"LOW", "Lowe's Companies"},
	{"ORCL", "Oracle Corp."},
	{"QCOM", "Qualcomm Inc."},
}

// DefaultSymbols は組み込みの銘柄一覧を新しいスライスとして返します。
func DefaultSymbols() []entity.Symbol {
	out := make([]entity.Symbol, 0, len(defaultNames))
	for i, n := range defaultNames {
		out = append(out, entity.Symbol{
			ID:       uint(i + 1),
			Code:     n.code,
			Name:     n.name,
			IsActive: true,
			SortKey:  i + 1,
		})
	}
	return out
}

// symbolStatic はDBを使わないメモリ上のSymbolRepository実装です。
type symbolStatic struct {
	symbols []entity.Symbol
}

var _ usecase.SymbolRepository = (*symbolStatic)(nil)

// NewStaticSymbolRepository は与えられた銘柄一覧を返すリポジトリを生成します。
// symbols が nil の場合は組み込みの一覧を使います。
func NewStaticSymbolRepository(symbols []entity.Symbol) *symbolStatic {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &symbolStatic{symbols: symbols}
}

// ListActive はアクティブな銘柄のコピーを返します。
func (r *symbolStatic) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, 0, len(r.symbols))
	for _, s := range r.symbols {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}
