package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_movers/internal/feature/market/domain/entity"
)

func strPtr(s string) *string { return &s }

// TestNewSummaryResponse_Full は全項目がそろっている場合の表示形式を検証します。
func TestNewSummaryResponse_Full(t *testing.T) {
	t.Parallel()

	got := NewSummaryResponse(entity.CompanyOverview{
		Symbol:        strPtr("IBM"),
		Name:          strPtr("International Business Machines"),
		Description:   strPtr("IBM is a technology company."),
		Exchange:      strPtr("NYSE"),
		Currency:      strPtr("USD"),
		Country:       strPtr("USA"),
		Sector:        strPtr("TECHNOLOGY"),
		Industry:      strPtr("COMPUTER & OFFICE EQUIPMENT"),
		MarketCap:     strPtr("175123456789"),
		PERatio:       strPtr("21.5"),
		EPS:           strPtr("8.82"),
		Beta:          strPtr("0.71"),
		DividendYield: strPtr("0.035"),
		ProfitMargin:  strPtr("0.12345"),
		Week52High:    strPtr("199.18"),
		Week52Low:     strPtr("135.87"),
		Address:       strPtr("1 NEW ORCHARD ROAD"),
	})

	assert.Equal(t, SummaryResponse{
		Symbol:        "IBM",
		Name:          "International Business Machines",
		Exchange:      "NYSE",
		Currency:      "USD",
		Country:       "USA",
		Sector:        "TECHNOLOGY",
		Industry:      "COMPUTER & OFFICE EQUIPMENT",
		Tags:          []string{"COMPUTER & OFFICE EQUIPMENT", "TECHNOLOGY"},
		Description:   "IBM is a technology company.",
		Address:       "1 NEW ORCHARD ROAD",
		Week52High:    "$199.18",
		Week52Low:     "$135.87",
		MarketCap:     "$175.12B",
		PERatio:       "21.5",
		EPS:           "8.82",
		Beta:          "0.71",
		DividendYield: "3.50%",
		ProfitMargin:  "12.35%",
	}, got)
}

// TestNewSummaryResponse_Empty は値がない場合にプレースホルダーが使われることを検証します。
func TestNewSummaryResponse_Empty(t *testing.T) {
	t.Parallel()

	got := NewSummaryResponse(entity.CompanyOverview{
		DividendYield: strPtr("None"),
		MarketCap:     strPtr("not-a-number"),
		Sector:        strPtr(""),
	})

	assert.Equal(t, NotAvailable, got.Symbol)
	assert.Equal(t, NotAvailable, got.Name)
	assert.Equal(t, NotAvailable, got.Sector)
	assert.Equal(t, NotAvailable, got.MarketCap)
	assert.Equal(t, NotAvailable, got.DividendYield)
	assert.Equal(t, NotAvailable, got.ProfitMargin)
	assert.Equal(t, NotAvailable, got.Week52High)
	assert.Equal(t, DefaultDescription, got.Description)
	require.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tags":[]`)
}

// TestNewMoversResponse_EmptyLists は空のリストが [] として出力されることを検証します。
func TestNewMoversResponse_EmptyLists(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewMoversResponse(entity.MoversSnapshot{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":"","lastUpdated":"","topGainers":[],"topLosers":[],"mostActive":[]}`, string(b))
}

// TestNewOverviewResponse_OmitsAbsent は欠けた項目がJSONに出力されないことを検証します。
func TestNewOverviewResponse_OmitsAbsent(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewOverviewResponse(entity.CompanyOverview{
		Symbol:     strPtr("IBM"),
		Week52High: strPtr("199.18"),
		PERatio:    strPtr("None"),
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"IBM","week52High":"199.18","peRatio":"None"}`, string(b))
}
