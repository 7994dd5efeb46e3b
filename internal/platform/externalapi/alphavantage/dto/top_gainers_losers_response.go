// Package dto holds the raw Alpha Vantage payload shapes.
package dto

// TopGainersLosersResponse is the body of function=TOP_GAINERS_LOSERS.
type TopGainersLosersResponse struct {
	Metadata           string      `json:"metadata"`
	LastUpdated        string      `json:"last_updated"`
	TopGainers         []MoverItem `json:"top_gainers"`
	TopLosers          []MoverItem `json:"top_losers"`
	MostActivelyTraded []MoverItem `json:"most_actively_traded"`
}

// MoverItem is one row of a movers list. Every value is a string on the wire.
type MoverItem struct {
	Ticker           *string `json:"ticker"`
	Price            string  `json:"price"`
	ChangeAmount     string  `json:"change_amount"`
	ChangePercentage string  `json:"change_percentage"`
	Volume           string  `json:"volume"`
}
