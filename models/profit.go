package models

import "github.com/shopspring/decimal"

type ProfitRequest struct {
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	SalesRefId int    `json:"salesRefId"`
}

// ProfitSummary is what /profit/getAllProfit returns. A missing or null figure makes it incomplete.
type ProfitSummary struct {
	SalesValue decimal.NullDecimal `json:"salesValue"`
	UnitCost   decimal.NullDecimal `json:"unitCost"`
}

func (p ProfitSummary) Profit() decimal.Decimal {
	return p.SalesValue.Decimal.Sub(p.UnitCost.Decimal)
}

// Complete reports whether both figures were present.
func (p ProfitSummary) Complete() bool {
	return p.SalesValue.Valid && p.UnitCost.Valid
}
