package di

import (
	"context"

	"gorm.io/gorm"

	"market_movers/internal/feature/symbollist/adapters"
	"market_movers/internal/feature/symbollist/usecase"
	"market_movers/internal/platform/logger"
)

// NewSymbolRepository creates a SymbolRepository implementation.
// With a database it returns the gorm-backed repository, seeding the built-in
// tickers into an empty table. Otherwise it falls back to the static table.
func NewSymbolRepository(ctx context.Context, db *gorm.DB) (usecase.SymbolRepository, error) {
	if db == nil {
		return adapters.NewStaticSymbolRepository(nil), nil
	}

	repo := adapters.NewSymbolRepository(db)
	n, err := repo.SeedIfEmpty(ctx, adapters.DefaultSymbols())
	if err != nil {
		return nil, err
	}
	if n > 0 {
		logger.L().Info().Int64("rows", n).Msg("seeded symbols table")
	}
	return repo, nil
}
