package dto

// OverviewResponse is the body of function=OVERVIEW. Only the fields the
// service exposes are decoded; absent or null keys stay nil.
type OverviewResponse struct {
	Symbol               *string `json:"Symbol"`
	Name                 *string `json:"Name"`
	Description          *string `json:"Description"`
	Exchange             *string `json:"Exchange"`
	Currency             *string `json:"Currency"`
	Country              *string `json:"Country"`
	Sector               *string `json:"Sector"`
	Industry             *string `json:"Industry"`
	MarketCapitalization *string `json:"MarketCapitalization"`
	PERatio              *string `json:"PERatio"`
	PEGRatio             *string `json:"PEGRatio"`
	BookValue            *string `json:"BookValue"`
	DividendYield        *string `json:"DividendYield"`
	EPS                  *string `json:"EPS"`
	RevenuePerShareTTM   *string `json:"RevenuePerShareTTM"`
	ProfitMargin         *string `json:"ProfitMargin"`
	OperatingMarginTTM   *string `json:"OperatingMarginTTM"`
	ReturnOnAssetsTTM    *string `json:"ReturnOnAssetsTTM"`
	ReturnOnEquityTTM    *string `json:"ReturnOnEquityTTM"`
	Week52High           *string `json:"52WeekHigh"`
	Week52Low            *string `json:"52WeekLow"`
	MovingAverage50Day   *string `json:"50DayMovingAverage"`
	MovingAverage200Day  *string `json:"200DayMovingAverage"`
	SharesOutstanding    *string `json:"SharesOutstanding"`
	Beta                 *string `json:"Beta"`
	Address              *string `json:"Address"`
}
