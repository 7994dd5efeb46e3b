// Package entity defines the domain models for the market feature.
package entity

// MoverRecord is one display-ready row of a movers list.
type MoverRecord struct {
	ID           int    // 1-based position within its list
	Ticker       string // Exchange ticker (e.g., "AAPL")
	Name         string // Company name from the directory, or "<ticker> Corp."
	Price        string // Currency formatted, two decimals (e.g., "$150.00")
	Change       string // Provider percentage text, verbatim (e.g., "5.2%")
	ChangeAmount string // Currency formatted, two decimals (e.g., "$7.41")
	Volume       string // Provider volume text, verbatim
}

// MoversSnapshot is the formatted result of one movers fetch.
// The three lists are never nil.
type MoversSnapshot struct {
	Metadata    string
	LastUpdated string
	TopGainers  []MoverRecord
	TopLosers   []MoverRecord
	MostActive  []MoverRecord
}
