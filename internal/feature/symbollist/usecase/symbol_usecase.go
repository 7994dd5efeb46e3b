// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"strings"

	"market_movers/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// NameDirectory snapshots the active symbols into a ticker -> company name lookup.
// Tickers match case-insensitively. The returned func is safe for concurrent use.
func (u *SymbolUsecase) NameDirectory(ctx context.Context) (func(ticker string) (string, bool), error) {
	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(symbols))
	for _, s := range symbols {
		key := strings.ToUpper(s.Code)
		if _, dup := names[key]; !dup {
			names[key] = s.Name
		}
	}
	return func(ticker string) (string, bool) {
		name, ok := names[strings.ToUpper(ticker)]
		return name, ok
	}, nil
}
