package entity

// CompanyOverview holds the fundamentals of one company.
// Every field is the provider's text verbatim; nil means the provider omitted it.
type CompanyOverview struct {
	Symbol            *string
	Name              *string
	Description       *string
	Exchange          *string
	Currency          *string
	Country           *string
	Sector            *string
	Industry          *string
	MarketCap         *string
	PERatio           *string
	PEGRatio          *string
	BookValue         *string
	DividendYield     *string
	EPS               *string
	RevenuePerShare   *string
	ProfitMargin      *string
	OperatingMargin   *string
	ReturnOnAssets    *string
	ReturnOnEquity    *string
	Week52High        *string
	Week52Low         *string
	MovingAverage50   *string
	MovingAverage200  *string
	SharesOutstanding *string
	Beta              *string
	Address           *string
}

// IsEmpty reports whether no field was provided, which is how the provider answers an unknown symbol.
func (o CompanyOverview) IsEmpty() bool {
	for _, f := range []*string{
		o.Symbol, o.Name, o.Description, o.Exchange, o.Currency, o.Country,
		o.Sector, o.Industry, o.MarketCap, o.PERatio, o.PEGRatio, o.BookValue,
		o.DividendYield, o.EPS, o.RevenuePerShare, o.ProfitMargin, o.OperatingMargin,
		o.ReturnOnAssets, o.ReturnOnEquity, o.Week52High, o.Week52Low,
		o.MovingAverage50, o.MovingAverage200, o.SharesOutstanding, o.Beta, o.Address,
	} {
		if f != nil {
			return false
		}
	}
	return true
}
