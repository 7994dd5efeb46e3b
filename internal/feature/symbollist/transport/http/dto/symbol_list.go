// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

import "market_movers/internal/feature/symbollist/domain/entity"

// SymbolItem is one entry of the company name directory.
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewSymbolItems converts symbols to response items, never returning nil.
func NewSymbolItems(symbols []entity.Symbol) []SymbolItem {
	out := make([]SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, SymbolItem{Code: s.Code, Name: s.Name})
	}
	return out
}
